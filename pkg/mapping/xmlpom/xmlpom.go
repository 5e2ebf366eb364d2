// Package xmlpom provides the native pom.xml mapping.
//
// The mapping is registered with the lowest priority and acts as the
// fallback: it accepts every read context without a source, and any source
// ending in ".xml" or in the packaged-descriptor suffix ".pom".
package xmlpom

import (
	"io"
	"strings"

	"github.com/matzehuels/polyglot/pkg/mapping"
	"github.com/matzehuels/polyglot/pkg/pom"
)

const (
	// XMLExtension is the native descriptor extension.
	XMLExtension = ".xml"
	// POMExtension is the suffix of descriptors packaged in repositories.
	POMExtension = ".pom"
	// Priority ranks the native mapping below every alternative format.
	Priority = -1
)

// Mapping is the native descriptor mapping.
type Mapping struct {
	mapping.Suffix
}

// New returns the native mapping.
func New() *Mapping {
	return &Mapping{Suffix: XMLExtension}
}

func (m *Mapping) Name() string           { return "xml" }
func (m *Mapping) Priority() int          { return Priority }
func (m *Mapping) Reader() mapping.Reader { return Reader{} }

// Accept reports whether ctx reads a native descriptor. Contexts without a
// source are always accepted.
func (m *Mapping) Accept(ctx mapping.Context) bool {
	if _, ok := ctx.Source(); !ok {
		return true
	}
	loc := ctx.Location()
	return strings.HasSuffix(loc, XMLExtension) || strings.HasSuffix(loc, POMExtension)
}

// Reader reads native descriptors.
type Reader struct{}

func (Reader) ReadFile(path string, ctx mapping.Context) (*pom.Model, error) {
	return pom.ReadFile(path)
}

func (Reader) Read(r io.Reader, ctx mapping.Context) (*pom.Model, error) {
	return pom.Read(r)
}

var _ mapping.Mapping = (*Mapping)(nil)
