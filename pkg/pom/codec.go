package pom

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Read decodes a native descriptor from r.
func Read(r io.Reader) (*Model, error) {
	var m Model
	if err := xml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode pom: %w", err)
	}
	return &m, nil
}

// ReadFile decodes the native descriptor at path and records path as its
// descriptor file.
func ReadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.DescriptorFile = path
	return m, nil
}

// Write renders m in the native format.
func Write(w io.Writer, m *Model) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	start := xml.StartElement{
		Name: xml.Name{Local: "project"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns"}, Value: Namespace}},
	}
	if err := enc.EncodeElement(toWire(m), start); err != nil {
		return fmt.Errorf("encode pom: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Marshal returns the native rendering of m.
func Marshal(m *Model) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// wireModel is the rendering shape of Model. Nested lists are pointers so
// that empty lists leave no empty container elements behind.
type wireModel struct {
	ModelVersion         string                    `xml:"modelVersion,omitempty"`
	Parent               *Parent                   `xml:"parent,omitempty"`
	GroupID              string                    `xml:"groupId,omitempty"`
	ArtifactID           string                    `xml:"artifactId,omitempty"`
	Version              string                    `xml:"version,omitempty"`
	Packaging            string                    `xml:"packaging,omitempty"`
	Name                 string                    `xml:"name,omitempty"`
	Description          string                    `xml:"description,omitempty"`
	URL                  string                    `xml:"url,omitempty"`
	Modules              *wireModules              `xml:"modules,omitempty"`
	Properties           Properties                `xml:"properties,omitempty"`
	DependencyManagement *wireDependencyManagement `xml:"dependencyManagement,omitempty"`
	Dependencies         *wireDependencies         `xml:"dependencies,omitempty"`
	Build                *wireBuild                `xml:"build,omitempty"`
}

type wireModules struct {
	Module []string `xml:"module"`
}

type wireDependencies struct {
	Dependency []Dependency `xml:"dependency"`
}

type wireDependencyManagement struct {
	Dependencies *wireDependencies `xml:"dependencies,omitempty"`
}

type wireBuild struct {
	FinalName       string       `xml:"finalName,omitempty"`
	SourceDirectory string       `xml:"sourceDirectory,omitempty"`
	Plugins         *wirePlugins `xml:"plugins,omitempty"`
}

type wirePlugins struct {
	Plugin []Plugin `xml:"plugin"`
}

func toWire(m *Model) *wireModel {
	w := &wireModel{
		ModelVersion: m.ModelVersion,
		Parent:       m.Parent,
		GroupID:      m.GroupID,
		ArtifactID:   m.ArtifactID,
		Version:      m.Version,
		Packaging:    m.Packaging,
		Name:         m.Name,
		Description:  m.Description,
		URL:          m.URL,
		Properties:   m.Properties,
		Dependencies: dependencyList(m.Dependencies),
	}
	if len(m.Modules) > 0 {
		w.Modules = &wireModules{Module: m.Modules}
	}
	if len(m.DependencyManagement) > 0 {
		w.DependencyManagement = &wireDependencyManagement{
			Dependencies: dependencyList(m.DependencyManagement),
		}
	}
	if m.Build != nil {
		w.Build = &wireBuild{
			FinalName:       m.Build.FinalName,
			SourceDirectory: m.Build.SourceDirectory,
		}
		if len(m.Build.Plugins) > 0 {
			w.Build.Plugins = &wirePlugins{Plugin: m.Build.Plugins}
		}
	}
	return w
}

func dependencyList(deps []Dependency) *wireDependencies {
	if len(deps) == 0 {
		return nil
	}
	return &wireDependencies{Dependency: deps}
}
