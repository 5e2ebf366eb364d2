// Package yamlpom reads project descriptors written in YAML (pom.yaml).
//
// Dependencies may be given as mappings or as the shorthand string
// "groupId:artifactId[:version[:scope]]":
//
//	groupId: com.example
//	artifactId: demo
//	version: 1.0.0
//	properties:
//	  java.version: "21"
//	dependencies:
//	  - com.google.guava:guava:33.0.0-jre
//	  - groupId: junit
//	    artifactId: junit
//	    scope: test
//
// Property order follows the document.
package yamlpom

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/polyglot/pkg/mapping"
	"github.com/matzehuels/polyglot/pkg/pom"
)

const (
	Extension = ".yaml"
	Priority  = 4
)

// Mapping is the YAML descriptor mapping.
type Mapping struct {
	mapping.Suffix
}

// New returns the YAML mapping.
func New() *Mapping {
	return &Mapping{Suffix: Extension}
}

func (m *Mapping) Name() string           { return "yaml" }
func (m *Mapping) Priority() int          { return Priority }
func (m *Mapping) Reader() mapping.Reader { return Reader{} }

// Reader parses YAML descriptors.
type Reader struct{}

func (Reader) ReadFile(path string, ctx mapping.Context) (*pom.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func (Reader) Read(r io.Reader, ctx mapping.Context) (*pom.Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML descriptor.
func Parse(data []byte) (*pom.Model, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse pom YAML: %w", err)
	}
	return doc.toModel()
}

type document struct {
	ModelVersion         string       `yaml:"modelVersion"`
	Parent               *parent      `yaml:"parent"`
	GroupID              string       `yaml:"groupId"`
	ArtifactID           string       `yaml:"artifactId"`
	Version              string       `yaml:"version"`
	Packaging            string       `yaml:"packaging"`
	Name                 string       `yaml:"name"`
	Description          string       `yaml:"description"`
	URL                  string       `yaml:"url"`
	Modules              []string     `yaml:"modules"`
	Properties           yaml.Node    `yaml:"properties"`
	DependencyManagement []dependency `yaml:"dependencyManagement"`
	Dependencies         []dependency `yaml:"dependencies"`
	Build                *build       `yaml:"build"`
}

type parent struct {
	GroupID      string `yaml:"groupId"`
	ArtifactID   string `yaml:"artifactId"`
	Version      string `yaml:"version"`
	RelativePath string `yaml:"relativePath"`
}

type build struct {
	FinalName       string   `yaml:"finalName"`
	SourceDirectory string   `yaml:"sourceDirectory"`
	Plugins         []plugin `yaml:"plugins"`
}

type plugin struct {
	GroupID    string `yaml:"groupId"`
	ArtifactID string `yaml:"artifactId"`
	Version    string `yaml:"version"`
}

// dependency accepts both the mapping and the shorthand string form.
type dependency struct {
	pom.Dependency
}

func (d *dependency) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		dep, err := pom.ParseDependency(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		d.Dependency = dep
		return nil
	}

	var raw struct {
		GroupID    string `yaml:"groupId"`
		ArtifactID string `yaml:"artifactId"`
		Version    string `yaml:"version"`
		Type       string `yaml:"type"`
		Classifier string `yaml:"classifier"`
		Scope      string `yaml:"scope"`
		Optional   string `yaml:"optional"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	d.Dependency = pom.Dependency(raw)
	return nil
}

func (doc *document) toModel() (*pom.Model, error) {
	props, err := properties(&doc.Properties)
	if err != nil {
		return nil, err
	}

	m := &pom.Model{
		ModelVersion:         doc.ModelVersion,
		GroupID:              doc.GroupID,
		ArtifactID:           doc.ArtifactID,
		Version:              doc.Version,
		Packaging:            doc.Packaging,
		Name:                 doc.Name,
		Description:          doc.Description,
		URL:                  doc.URL,
		Modules:              doc.Modules,
		Properties:           props,
		DependencyManagement: unwrap(doc.DependencyManagement),
		Dependencies:         unwrap(doc.Dependencies),
	}
	if doc.Parent != nil {
		p := pom.Parent(*doc.Parent)
		m.Parent = &p
	}
	if doc.Build != nil {
		m.Build = &pom.Build{
			FinalName:       doc.Build.FinalName,
			SourceDirectory: doc.Build.SourceDirectory,
		}
		for _, p := range doc.Build.Plugins {
			m.Build.Plugins = append(m.Build.Plugins, pom.Plugin(p))
		}
	}
	if m.ModelVersion == "" {
		m.ModelVersion = "4.0.0"
	}
	return m, nil
}

// properties reads a YAML mapping in document order.
func properties(node *yaml.Node) (pom.Properties, error) {
	if node.Kind == 0 || node.ShortTag() == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: properties must be a mapping", node.Line)
	}

	var props pom.Properties
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: property %q must be a scalar", val.Line, key.Value)
		}
		props.Set(key.Value, val.Value)
	}
	return props, nil
}

func unwrap(ds []dependency) []pom.Dependency {
	if len(ds) == 0 {
		return nil
	}
	out := make([]pom.Dependency, len(ds))
	for i, d := range ds {
		out[i] = d.Dependency
	}
	return out
}

var _ mapping.Mapping = (*Mapping)(nil)
