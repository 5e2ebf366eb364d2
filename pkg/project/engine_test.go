package project

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/polyglot/pkg/companion"
	perrors "github.com/matzehuels/polyglot/pkg/errors"
	"github.com/matzehuels/polyglot/pkg/mapping"
	"github.com/matzehuels/polyglot/pkg/mapping/tomlpom"
	"github.com/matzehuels/polyglot/pkg/mapping/xmlpom"
	"github.com/matzehuels/polyglot/pkg/mapping/yamlpom"
	"github.com/matzehuels/polyglot/pkg/processor"
)

const yamlPOM = `groupId: com.example
artifactId: demo
version: 1.0.0
dependencies:
  - com.google.guava:guava:33.0.0-jre
  - org.slf4j:slf4j-api:2.0.9
  - com.google.guava:guava:33.0.0-jre
  - junit:junit:4.13:test
  - jakarta.servlet:jakarta.servlet-api:6.0.0:provided
  - groupId: com.example
    artifactId: extras
    optional: true
  - groupId: ${project.groupId}
    artifactId: sibling
`

const xmlPOM = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <groupId>com.example</groupId>
  <artifactId>native</artifactId>
  <version>2.0.0</version>
</project>
`

func newEngine(t *testing.T) *Engine {
	t.Helper()
	reg := mapping.NewRegistry(xmlpom.New(), yamlpom.New(), tomlpom.New())
	companions := companion.NewManager(nil)
	t.Cleanup(func() { _ = companions.Close() })
	return NewEngine(processor.New(reg, companions, processor.Options{}, nil), nil)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestEngineBuildsCompanion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.yaml"), yamlPOM)

	res, err := newEngine(t).Build(dir, Request{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want := filepath.Join(dir, ".polyglot.pom.yaml")
	if res.POMFile() != want {
		t.Errorf("POMFile() = %q, want %q", res.POMFile(), want)
	}
	if res.Project().Model.DescriptorFile != want {
		t.Errorf("DescriptorFile = %q, want %q", res.Project().Model.DescriptorFile, want)
	}
	if res.ProjectID() != "com.example:demo:jar:1.0.0" {
		t.Errorf("ProjectID() = %q", res.ProjectID())
	}
}

func TestEngineDependencySummary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.yaml"), yamlPOM)

	res, err := newEngine(t).Build(dir, Request{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"com.google.guava:guava", "org.slf4j:slf4j-api"}
	if got := res.DependencyResolution().Dependencies; !slices.Equal(got, want) {
		t.Errorf("Dependencies = %v, want %v", got, want)
	}
}

func TestEngineProblems(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []Problem
	}{
		{
			name: "complete",
			doc:  "groupId: g\nartifactId: a\nversion: 1\n",
		},
		{
			name: "inherited",
			doc:  "parent: {groupId: g, artifactId: p, version: 1}\nartifactId: a\n",
		},
		{
			name: "missing everything",
			doc:  "name: nothing\n",
			want: []Problem{
				{SeverityWarning, "'groupId' is missing"},
				{SeverityError, "'artifactId' is missing"},
				{SeverityWarning, "'version' is missing"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, "pom.yaml"), tt.doc)

			res, err := newEngine(t).Build(dir, Request{})
			if err != nil {
				t.Fatal(err)
			}
			if got := res.Problems(); !slices.Equal(got, tt.want) {
				t.Errorf("Problems() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngineErrors(t *testing.T) {
	t.Run("empty directory", func(t *testing.T) {
		_, err := newEngine(t).Build(t.TempDir(), Request{})
		if !perrors.Is(err, perrors.ErrCodeNotFound) {
			t.Errorf("Build() error = %v, want %s", err, perrors.ErrCodeNotFound)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := newEngine(t).Build(filepath.Join(t.TempDir(), "pom.xml"), Request{})
		if !perrors.Is(err, perrors.ErrCodeNotFound) {
			t.Errorf("Build() error = %v, want %s", err, perrors.ErrCodeNotFound)
		}
	})

	t.Run("unreadable descriptor", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "pom.yaml"), "groupId: [unclosed")

		_, err := newEngine(t).Build(dir, Request{})
		if !perrors.Is(err, perrors.ErrCodeInvalidManifest) {
			t.Errorf("Build() error = %v, want %s", err, perrors.ErrCodeInvalidManifest)
		}
	})
}

func TestEngineBuildArtifact(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "native-2.0.0.pom")
	writeFile(t, file, xmlPOM)
	e := newEngine(t)

	res, err := e.BuildArtifact(Artifact{GroupID: "com.example", ArtifactID: "native", Version: "2.0.0", File: file}, Request{})
	if err != nil {
		t.Fatalf("BuildArtifact() error: %v", err)
	}
	if res.POMFile() != file || res.ProjectID() != "com.example:native:jar:2.0.0" {
		t.Errorf("got %q from %q", res.ProjectID(), res.POMFile())
	}

	missing := Artifact{GroupID: "com.example", ArtifactID: "gone", Version: "1.0"}
	if _, err := e.BuildArtifact(missing, Request{}); !perrors.Is(err, perrors.ErrCodeNotFound) {
		t.Errorf("BuildArtifact(missing) error = %v", err)
	}

	stub, err := e.BuildArtifactStub(missing, true, Request{})
	if err != nil {
		t.Fatalf("BuildArtifactStub() error: %v", err)
	}
	if stub.POMFile() != "" {
		t.Errorf("stub POMFile() = %q, want empty", stub.POMFile())
	}
	if stub.ProjectID() != "com.example:gone:pom:1.0" {
		t.Errorf("stub ProjectID() = %q", stub.ProjectID())
	}
}

func TestEngineBuildSource(t *testing.T) {
	e := newEngine(t)

	res, err := e.BuildSource(StringSource{Name: "pom.yaml", Content: yamlPOM}, Request{})
	if err != nil {
		t.Fatalf("BuildSource() error: %v", err)
	}
	if res.POMFile() != "" {
		t.Errorf("virtual POMFile() = %q, want empty", res.POMFile())
	}
	if res.ProjectID() != "com.example:demo:jar:1.0.0" {
		t.Errorf("ProjectID() = %q", res.ProjectID())
	}

	dir := t.TempDir()
	file := filepath.Join(dir, "pom.xml")
	writeFile(t, file, xmlPOM)
	res, err = e.BuildSource(FileSource(file), Request{})
	if err != nil {
		t.Fatal(err)
	}
	if res.POMFile() != file {
		t.Errorf("POMFile() = %q, want %q", res.POMFile(), file)
	}
}

func TestEngineBuildAll(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pom.yaml"), "groupId: g\nartifactId: root\nversion: 1\nmodules: [core, web]\n")
	writeFile(t, filepath.Join(root, "core", "pom.toml"), "groupId = \"g\"\nartifactId = \"core\"\nversion = \"1\"\n")
	writeFile(t, filepath.Join(root, "web", "pom.xml"), xmlPOM)
	e := newEngine(t)

	flat, err := e.BuildAll([]string{root}, false, Request{})
	if err != nil {
		t.Fatal(err)
	}
	if len(flat) != 1 {
		t.Errorf("BuildAll(recursive=false) = %d results, want 1", len(flat))
	}

	all, err := e.BuildAll([]string{root}, true, Request{})
	if err != nil {
		t.Fatal(err)
	}
	var ids []string
	for _, r := range all {
		ids = append(ids, r.ProjectID())
	}
	want := []string{"g:root:jar:1", "g:core:jar:1", "com.example:native:jar:2.0.0"}
	if !slices.Equal(ids, want) {
		t.Errorf("BuildAll() ids = %v, want %v", ids, want)
	}
}

func TestEngineBuildAllSkipsDuplicates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pom.yaml"), "groupId: g\nartifactId: root\nversion: 1\nmodules: [\".\"]\n")

	all, err := newEngine(t).BuildAll([]string{root, root}, true, Request{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("BuildAll() = %d results, want 1", len(all))
	}
}
