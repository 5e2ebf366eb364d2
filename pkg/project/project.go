package project

import (
	"io"
	"os"
	"strings"

	"github.com/matzehuels/polyglot/pkg/mapping"
	"github.com/matzehuels/polyglot/pkg/pom"
)

// Project is a built project.
type Project struct {
	ID    string     // groupId:artifactId:packaging:version
	File  string     // Descriptor file, empty for virtual projects
	Model *pom.Model // Model read from File
}

// Severity classifies a Problem.
type Severity string

const (
	SeverityWarning Severity = "WARNING"
	SeverityError   Severity = "ERROR"
)

// Problem is an issue found while building a project.
type Problem struct {
	Severity Severity
	Message  string
}

func (p Problem) String() string {
	return string(p.Severity) + ": " + p.Message
}

// Resolution summarizes a project's direct dependencies.
type Resolution struct {
	Dependencies []string // groupId:artifactId, in declaration order
}

// Request carries the read context passed down to mapping readers.
type Request struct {
	Context mapping.Context
}

// Artifact identifies a project descriptor in a repository.
type Artifact struct {
	GroupID    string
	ArtifactID string
	Version    string
	File       string // Resolved descriptor file, empty if unresolved
}

func (a Artifact) String() string {
	return a.GroupID + ":" + a.ArtifactID + ":" + a.Version
}

// ModelSource supplies a descriptor without necessarily being a file.
type ModelSource interface {
	Location() string
	Open() (io.ReadCloser, error)
}

// FileSource is a descriptor file on disk.
type FileSource string

func (s FileSource) Location() string             { return string(s) }
func (s FileSource) Open() (io.ReadCloser, error) { return os.Open(string(s)) }

// StringSource is an in-memory descriptor. Name is used as the logical
// location and should carry the format's extension, e.g. "pom.yaml".
type StringSource struct {
	Name    string
	Content string
}

func (s StringSource) Location() string { return s.Name }
func (s StringSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.Content)), nil
}

// Result is the outcome of building one project.
type Result interface {
	// POMFile returns the descriptor file, or "" for virtual projects.
	POMFile() string
	ProjectID() string
	Project() *Project
	Problems() []Problem
	DependencyResolution() *Resolution
}

// Builder builds projects.
type Builder interface {
	Build(file string, req Request) (Result, error)
	BuildArtifact(a Artifact, req Request) (Result, error)
	BuildArtifactStub(a Artifact, allowStub bool, req Request) (Result, error)
	BuildSource(src ModelSource, req Request) (Result, error)
	BuildAll(files []string, recursive bool, req Request) ([]Result, error)
}

// ModelProcessor locates and reads descriptors.
// *processor.Processor satisfies it.
type ModelProcessor interface {
	Locate(dir string) (string, error)
	ReadFile(path string, ctx mapping.Context) (*pom.Model, error)
	Read(r io.Reader, ctx mapping.Context) (*pom.Model, error)
}
