// Package jsonpom reads project descriptors written in JSON (pom.json).
//
// The document mirrors the YAML layout, including the
// "groupId:artifactId[:version[:scope]]" dependency shorthand. Properties are
// rendered in key order.
package jsonpom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/polyglot/pkg/mapping"
	"github.com/matzehuels/polyglot/pkg/pom"
)

const (
	Extension = ".json"
	Priority  = 1
)

// Mapping is the JSON descriptor mapping.
type Mapping struct {
	mapping.Suffix
}

// New returns the JSON mapping.
func New() *Mapping {
	return &Mapping{Suffix: Extension}
}

func (m *Mapping) Name() string           { return "json" }
func (m *Mapping) Priority() int          { return Priority }
func (m *Mapping) Reader() mapping.Reader { return Reader{} }

// Reader parses JSON descriptors.
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

// Parse decodes a JSON descriptor. Unknown fields are rejected.
func Parse(data []byte) (*pom.Model, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse pom JSON: %w", err)
	}
	return doc.toModel(), nil
}

type document struct {
	ModelVersion         string            `json:"modelVersion"`
	Parent               *parent           `json:"parent"`
	GroupID              string            `json:"groupId"`
	ArtifactID           string            `json:"artifactId"`
	Version              string            `json:"version"`
	Packaging            string            `json:"packaging"`
	Name                 string            `json:"name"`
	Description          string            `json:"description"`
	URL                  string            `json:"url"`
	Modules              []string          `json:"modules"`
	Properties           map[string]string `json:"properties"`
	DependencyManagement []dependency      `json:"dependencyManagement"`
	Dependencies         []dependency      `json:"dependencies"`
	Build                *build            `json:"build"`
}

type parent struct {
	GroupID      string `json:"groupId"`
	ArtifactID   string `json:"artifactId"`
	Version      string `json:"version"`
	RelativePath string `json:"relativePath"`
}

type build struct {
	FinalName       string   `json:"finalName"`
	SourceDirectory string   `json:"sourceDirectory"`
	Plugins         []plugin `json:"plugins"`
}

type plugin struct {
	GroupID    string `json:"groupId"`
	ArtifactID string `json:"artifactId"`
	Version    string `json:"version"`
}

// dependency accepts both objects and the shorthand string form.
type dependency struct {
	pom.Dependency
}

func (d *dependency) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		dep, err := pom.ParseDependency(s)
		if err != nil {
			return err
		}
		d.Dependency = dep
		return nil
	}

	var raw struct {
		GroupID    string `json:"groupId"`
		ArtifactID string `json:"artifactId"`
		Version    string `json:"version"`
		Type       string `json:"type"`
		Classifier string `json:"classifier"`
		Scope      string `json:"scope"`
		Optional   bool   `json:"optional"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Dependency = pom.Dependency{
		GroupID:    raw.GroupID,
		ArtifactID: raw.ArtifactID,
		Version:    raw.Version,
		Type:       raw.Type,
		Classifier: raw.Classifier,
		Scope:      raw.Scope,
	}
	if raw.Optional {
		d.Optional = "true"
	}
	return nil
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
