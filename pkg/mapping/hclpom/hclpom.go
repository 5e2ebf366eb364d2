// Package hclpom reads project descriptors written in HCL (pom.hcl).
//
//	group_id    = "com.example"
//	artifact_id = "demo"
//	version     = "1.0.0"
//
//	properties = {
//	  "java.version" = "21"
//	}
//
//	dependency {
//	  group_id    = "junit"
//	  artifact_id = "junit"
//	  scope       = "test"
//	}
//
// Properties are rendered in key order. Expressions are evaluated without
// variables or functions.
package hclpom

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/matzehuels/polyglot/pkg/mapping"
	"github.com/matzehuels/polyglot/pkg/pom"
)

const (
	Extension = ".hcl"
	Priority  = 2
)

// Mapping is the HCL descriptor mapping.
type Mapping struct {
	mapping.Suffix
}

// New returns the HCL mapping.
func New() *Mapping {
	return &Mapping{Suffix: Extension}
}

func (m *Mapping) Name() string           { return "hcl" }
func (m *Mapping) Priority() int          { return Priority }
func (m *Mapping) Reader() mapping.Reader { return Reader{} }

// Reader parses HCL descriptors.
type Reader struct{}

func (Reader) ReadFile(path string, ctx mapping.Context) (*pom.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

func (Reader) Read(r io.Reader, ctx mapping.Context) (*pom.Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	name := ctx.Location()
	if name == "" {
		name = "pom" + Extension
	}
	return Parse(data, name)
}

// Parse decodes an HCL descriptor. filename is used in diagnostics.
func Parse(data []byte, filename string) (*pom.Model, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var doc document
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	return doc.toModel()
}

type document struct {
	ModelVersion string         `hcl:"model_version,optional"`
	GroupID      string         `hcl:"group_id,optional"`
	ArtifactID   string         `hcl:"artifact_id,optional"`
	Version      string         `hcl:"version,optional"`
	Packaging    string         `hcl:"packaging,optional"`
	Name         string         `hcl:"name,optional"`
	Description  string         `hcl:"description,optional"`
	URL          string         `hcl:"url,optional"`
	Modules      []string       `hcl:"modules,optional"`
	Properties   hcl.Expression `hcl:"properties,optional"`

	Parent       *parentBlock       `hcl:"parent,block"`
	Managed      []*dependencyBlock `hcl:"managed_dependency,block"`
	Dependencies []*dependencyBlock `hcl:"dependency,block"`
	Build        *buildBlock        `hcl:"build,block"`
}

type parentBlock struct {
	GroupID      string `hcl:"group_id"`
	ArtifactID   string `hcl:"artifact_id"`
	Version      string `hcl:"version"`
	RelativePath string `hcl:"relative_path,optional"`
}

type dependencyBlock struct {
	GroupID    string `hcl:"group_id"`
	ArtifactID string `hcl:"artifact_id"`
	Version    string `hcl:"version,optional"`
	Type       string `hcl:"type,optional"`
	Classifier string `hcl:"classifier,optional"`
	Scope      string `hcl:"scope,optional"`
	Optional   bool   `hcl:"optional,optional"`
}

type buildBlock struct {
	FinalName       string         `hcl:"final_name,optional"`
	SourceDirectory string         `hcl:"source_directory,optional"`
	Plugins         []*pluginBlock `hcl:"plugin,block"`
}

type pluginBlock struct {
	GroupID    string `hcl:"group_id"`
	ArtifactID string `hcl:"artifact_id"`
	Version    string `hcl:"version,optional"`
}

func (doc *document) toModel() (*pom.Model, error) {
	props, err := properties(doc.Properties)
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
		DependencyManagement: dependencies(doc.Managed),
		Dependencies:         dependencies(doc.Dependencies),
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
			m.Build.Plugins = append(m.Build.Plugins, pom.Plugin(*p))
		}
	}
	if m.ModelVersion == "" {
		m.ModelVersion = "4.0.0"
	}
	return m, nil
}

// properties evaluates the properties object. Every value must convert to a
// string.
func properties(expr hcl.Expression) (pom.Properties, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.CanIterateElements() || !(val.Type().IsObjectType() || val.Type().IsMapType()) {
		return nil, fmt.Errorf("properties must be an object, got %s", val.Type().FriendlyName())
	}

	values := make(map[string]string)
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		if v.IsNull() {
			continue
		}
		s, err := convert.Convert(v, cty.String)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", k.AsString(), err)
		}
		values[k.AsString()] = s.AsString()
	}
	return pom.NewProperties(values), nil
}

func dependencies(blocks []*dependencyBlock) []pom.Dependency {
	if len(blocks) == 0 {
		return nil
	}
	out := make([]pom.Dependency, len(blocks))
	for i, b := range blocks {
		out[i] = pom.Dependency{
			GroupID:    b.GroupID,
			ArtifactID: b.ArtifactID,
			Version:    b.Version,
			Type:       b.Type,
			Classifier: b.Classifier,
			Scope:      b.Scope,
		}
		if b.Optional {
			out[i].Optional = "true"
		}
	}
	return out
}

var _ mapping.Mapping = (*Mapping)(nil)
