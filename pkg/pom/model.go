package pom

import "strings"

// DefaultFile is the name of the native descriptor inside a project directory.
const DefaultFile = "pom.xml"

// Namespace is the XML namespace of rendered descriptors.
const Namespace = "http://maven.apache.org/POM/4.0.0"

// Model is the format-independent project descriptor. Its tags describe the
// native layout for decoding; Write renders through its own shape.
type Model struct {
	ModelVersion         string       `xml:"modelVersion,omitempty"`
	Parent               *Parent      `xml:"parent,omitempty"`
	GroupID              string       `xml:"groupId,omitempty"`
	ArtifactID           string       `xml:"artifactId,omitempty"`
	Version              string       `xml:"version,omitempty"`
	Packaging            string       `xml:"packaging,omitempty"`
	Name                 string       `xml:"name,omitempty"`
	Description          string       `xml:"description,omitempty"`
	URL                  string       `xml:"url,omitempty"`
	Modules              []string     `xml:"modules>module,omitempty"`
	Properties           Properties   `xml:"properties,omitempty"`
	DependencyManagement []Dependency `xml:"dependencyManagement>dependencies>dependency,omitempty"`
	Dependencies         []Dependency `xml:"dependencies>dependency,omitempty"`
	Build                *Build       `xml:"build,omitempty"`

	// DescriptorFile is the file this model is considered to originate from.
	DescriptorFile string `xml:"-"`
}

// Parent references the parent project.
type Parent struct {
	GroupID      string `xml:"groupId,omitempty"`
	ArtifactID   string `xml:"artifactId,omitempty"`
	Version      string `xml:"version,omitempty"`
	RelativePath string `xml:"relativePath,omitempty"`
}

// Dependency is a single dependency declaration.
type Dependency struct {
	GroupID    string `xml:"groupId,omitempty"`
	ArtifactID string `xml:"artifactId,omitempty"`
	Version    string `xml:"version,omitempty"`
	Type       string `xml:"type,omitempty"`
	Classifier string `xml:"classifier,omitempty"`
	Scope      string `xml:"scope,omitempty"`
	Optional   string `xml:"optional,omitempty"`
}

// Build holds the subset of build settings carried through translation.
type Build struct {
	FinalName       string   `xml:"finalName,omitempty"`
	SourceDirectory string   `xml:"sourceDirectory,omitempty"`
	Plugins         []Plugin `xml:"plugins>plugin,omitempty"`
}

// Plugin is a build plugin reference.
type Plugin struct {
	GroupID    string `xml:"groupId,omitempty"`
	ArtifactID string `xml:"artifactId,omitempty"`
	Version    string `xml:"version,omitempty"`
}

// Coordinate returns "groupId:artifactId", the key used for dependencies.
func (d Dependency) Coordinate() string {
	return d.GroupID + ":" + d.ArtifactID
}

// EffectiveGroupID returns the group id, inherited from the parent when unset.
func (m *Model) EffectiveGroupID() string {
	if m.GroupID == "" && m.Parent != nil {
		return m.Parent.GroupID
	}
	return m.GroupID
}

// EffectiveVersion returns the version, inherited from the parent when unset.
func (m *Model) EffectiveVersion() string {
	if m.Version == "" && m.Parent != nil {
		return m.Parent.Version
	}
	return m.Version
}

// EffectivePackaging returns the packaging, defaulting to "jar".
func (m *Model) EffectivePackaging() string {
	if m.Packaging == "" {
		return "jar"
	}
	return m.Packaging
}

// ID returns the project id in the form groupId:artifactId:packaging:version.
// Unknown parts are rendered as "[inherited]" so ids of partial models stay
// readable.
func (m *Model) ID() string {
	parts := []string{
		orInherited(m.EffectiveGroupID()),
		orInherited(m.ArtifactID),
		m.EffectivePackaging(),
		orInherited(m.EffectiveVersion()),
	}
	return strings.Join(parts, ":")
}

// Property returns the value of the named property.
func (m *Model) Property(key string) (string, bool) {
	return m.Properties.Get(key)
}

func orInherited(s string) string {
	if s == "" {
		return "[inherited]"
	}
	return s
}
