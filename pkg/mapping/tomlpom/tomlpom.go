// Package tomlpom reads project descriptors written in TOML (pom.toml).
//
//	groupId = "com.example"
//	artifactId = "demo"
//	version = "1.0.0"
//	dependencies = ["com.google.guava:guava:33.0.0-jre"]
//
//	[properties]
//	"java.version" = "21"
//
//	[[dependencyManagement]]
//	groupId = "org.slf4j"
//	artifactId = "slf4j-bom"
//
// Properties are rendered in key order.
package tomlpom

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/polyglot/pkg/mapping"
	"github.com/matzehuels/polyglot/pkg/pom"
)

const (
	Extension = ".toml"
	Priority  = 3
)

// Mapping is the TOML descriptor mapping.
type Mapping struct {
	mapping.Suffix
}

// New returns the TOML mapping.
func New() *Mapping {
	return &Mapping{Suffix: Extension}
}

func (m *Mapping) Name() string           { return "toml" }
func (m *Mapping) Priority() int          { return Priority }
func (m *Mapping) Reader() mapping.Reader { return Reader{} }

// Reader parses TOML descriptors.
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

// Parse decodes a TOML descriptor.
func Parse(data []byte) (*pom.Model, error) {
	var doc document
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse pom TOML: %w", err)
	}
	return doc.toModel(), nil
}

type document struct {
	ModelVersion         string            `toml:"modelVersion"`
	Parent               *parent           `toml:"parent"`
	GroupID              string            `toml:"groupId"`
	ArtifactID           string            `toml:"artifactId"`
	Version              string            `toml:"version"`
	Packaging            string            `toml:"packaging"`
	Name                 string            `toml:"name"`
	Description          string            `toml:"description"`
	URL                  string            `toml:"url"`
	Modules              []string          `toml:"modules"`
	Properties           map[string]string `toml:"properties"`
	DependencyManagement []dependency      `toml:"dependencyManagement"`
	Dependencies         []dependency      `toml:"dependencies"`
	Build                *build            `toml:"build"`
}

type parent struct {
	GroupID      string `toml:"groupId"`
	ArtifactID   string `toml:"artifactId"`
	Version      string `toml:"version"`
	RelativePath string `toml:"relativePath"`
}

type build struct {
	FinalName       string   `toml:"finalName"`
	SourceDirectory string   `toml:"sourceDirectory"`
	Plugins         []plugin `toml:"plugins"`
}

type plugin struct {
	GroupID    string `toml:"groupId"`
	ArtifactID string `toml:"artifactId"`
	Version    string `toml:"version"`
}

// dependency accepts both inline tables and the shorthand string form.
type dependency struct {
	pom.Dependency
}

func (d *dependency) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		dep, err := pom.ParseDependency(v)
		if err != nil {
			return err
		}
		d.Dependency = dep
		return nil
	case map[string]any:
		fields := map[string]*string{
			"groupId":    &d.GroupID,
			"artifactId": &d.ArtifactID,
			"version":    &d.Version,
			"type":       &d.Type,
			"classifier": &d.Classifier,
			"scope":      &d.Scope,
			"optional":   &d.Optional,
		}
		for key, raw := range v {
			dst, ok := fields[key]
			if !ok {
				return fmt.Errorf("unknown dependency field %q", key)
			}
			*dst = fmt.Sprint(raw)
		}
		return nil
	default:
		return fmt.Errorf("dependency must be a string or table, got %T", v)
	}
}

func (doc *document) toModel() *pom.Model {
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
		DependencyManagement: unwrap(doc.DependencyManagement),
		Dependencies:         unwrap(doc.Dependencies),
	}
	if len(doc.Properties) > 0 {
		m.Properties = pom.NewProperties(doc.Properties)
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
	return m
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
