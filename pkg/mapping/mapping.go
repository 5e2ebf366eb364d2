package mapping

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/polyglot/pkg/pom"
)

// Reader turns a descriptor into the canonical model.
type Reader interface {
	// ReadFile reads the descriptor at path.
	ReadFile(path string, ctx Context) (*pom.Model, error)
	// Read reads a descriptor from r.
	Read(r io.Reader, ctx Context) (*pom.Model, error)
}

// Mapping describes one descriptor format.
type Mapping interface {
	// Name returns the mapping identifier (e.g., "yaml", "xml").
	Name() string
	// Extension returns the file extension including the dot (e.g., ".yaml").
	Extension() string
	// Priority orders mappings; higher values are tried first.
	Priority() int
	// Locate returns the descriptor this mapping recognizes inside dir.
	Locate(dir string) (string, bool)
	// Accept reports whether this mapping handles reads in ctx.
	Accept(ctx Context) bool
	// Reader returns the reader for this format, or nil if it cannot read.
	Reader() Reader
}

// Suffix implements the extension-based parts of [Mapping].
// Embed it and supply Name, Priority and Reader.
type Suffix string

// Extension returns the file extension.
func (e Suffix) Extension() string { return string(e) }

// FileName returns the descriptor name this suffix looks for ("pom.yaml").
func (e Suffix) FileName() string { return "pom" + string(e) }

// Locate finds pom<ext> inside dir.
func (e Suffix) Locate(dir string) (string, bool) {
	path := filepath.Join(dir, e.FileName())
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, true
	}
	return "", false
}

// Accept reports whether the context's source ends with the extension.
// Contexts without a source are never accepted.
func (e Suffix) Accept(ctx Context) bool {
	loc := ctx.Location()
	return loc != "" && strings.HasSuffix(loc, string(e))
}
