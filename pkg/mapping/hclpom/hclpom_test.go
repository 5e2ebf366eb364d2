package hclpom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/polyglot/pkg/mapping"
)

const sample = `
group_id    = "com.example"
artifact_id = "demo"
version     = "1.0.0"
modules     = ["core", "web"]

properties = {
  "java.version" = 21
  encoding       = "UTF-8"
}

parent {
  group_id    = "com.example"
  artifact_id = "parent"
  version     = "2.0.0"
}

dependency {
  group_id    = "com.google.guava"
  artifact_id = "guava"
  version     = "33.0.0-jre"
}

dependency {
  group_id    = "junit"
  artifact_id = "junit"
  scope       = "test"
  optional    = true
}

managed_dependency {
  group_id    = "org.slf4j"
  artifact_id = "slf4j-bom"
  version     = "2.0.9"
}

build {
  final_name = "demo"

  plugin {
    group_id    = "org.apache.maven.plugins"
    artifact_id = "maven-compiler-plugin"
  }
}
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sample), "pom.hcl")
	require.NoError(t, err)

	assert.Equal(t, "4.0.0", m.ModelVersion)
	assert.Equal(t, "demo", m.ArtifactID)
	assert.Equal(t, []string{"core", "web"}, m.Modules)
	require.NotNil(t, m.Parent)
	assert.Equal(t, "parent", m.Parent.ArtifactID)

	require.Len(t, m.Properties, 2)
	assert.Equal(t, "encoding", m.Properties[0].Key)
	v, ok := m.Property("java.version")
	assert.True(t, ok)
	assert.Equal(t, "21", v, "numbers convert to strings")

	require.Len(t, m.Dependencies, 2)
	assert.Equal(t, "com.google.guava:guava", m.Dependencies[0].Coordinate())
	assert.Equal(t, "true", m.Dependencies[1].Optional)
	assert.Empty(t, m.Dependencies[0].Optional)

	require.Len(t, m.DependencyManagement, 1)
	require.NotNil(t, m.Build)
	require.Len(t, m.Build.Plugins, 1)
	assert.Equal(t, "demo", m.Build.FinalName)
}

func TestParseWithoutProperties(t *testing.T) {
	m, err := Parse([]byte(`artifact_id = "bare"`), "pom.hcl")
	require.NoError(t, err)
	assert.Equal(t, "bare", m.ArtifactID)
	assert.Empty(t, m.Properties)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", `artifact_id = `},
		{"unknown attribute", `colour = "blue"`},
		{"missing required", "dependency {\n  group_id = \"x\"\n}\n"},
		{"properties not object", `properties = ["a"]`},
		{"nested property", `properties = { a = { b = "c" } }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), "pom.hcl")
			assert.Error(t, err)
		})
	}
}

func TestReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pom.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	m, err := Reader{}.ReadFile(path, mapping.Context{})
	require.NoError(t, err)
	assert.Equal(t, "demo", m.ArtifactID)

	ctx := mapping.Context{}.WithSource(mapping.Source{Location: "inline.hcl"})
	m, err = Reader{}.Read(strings.NewReader(sample), ctx)
	require.NoError(t, err)
	assert.Equal(t, "com.example", m.GroupID)
}

func TestMapping(t *testing.T) {
	m := New()
	assert.Equal(t, "hcl", m.Name())
	assert.Equal(t, Priority, m.Priority())
	assert.True(t, m.Accept(mapping.Context{}.WithSource(mapping.FileSource("p/pom.hcl"))))
	assert.False(t, m.Accept(mapping.Context{}.WithSource(mapping.FileSource("p/pom.toml"))))
}
