package mapping

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
)

// SourceKey is the well-known key under which a context reports its source.
const SourceKey = "polyglot.source"

// Source references the descriptor a read is about.
type Source struct {
	Path     string // Backing file, empty for virtual sources
	Location string // Logical location, usually equal to Path
}

// FileSource returns a source backed by the file at path.
func FileSource(path string) Source {
	return Source{Path: path, Location: path}
}

// Name returns the base name of the source location.
func (s Source) Name() string {
	return filepath.Base(s.location())
}

// Virtual reports whether the source has no backing file.
func (s Source) Virtual() bool {
	return s.Path == ""
}

func (s Source) location() string {
	if s.Location != "" {
		return s.Location
	}
	return s.Path
}

// Context carries the source of a read plus opaque options for readers.
// The zero value is an empty context without a source.
type Context struct {
	source  *Source
	options map[string]string
}

// NewContext returns a context holding a copy of opts.
func NewContext(opts map[string]string) Context {
	return Context{options: maps.Clone(opts)}
}

// Source returns the context's source, if any.
func (c Context) Source() (Source, bool) {
	if c.source == nil {
		return Source{}, false
	}
	return *c.source, true
}

// Location returns the source location, or "" without a source.
func (c Context) Location() string {
	if c.source == nil {
		return ""
	}
	return c.source.location()
}

// WithSource returns a copy of c whose source is s.
func (c Context) WithSource(s Source) Context {
	return Context{source: &s, options: c.options}
}

// Option returns the passthrough option stored under key.
func (c Context) Option(key string) (string, bool) {
	v, ok := c.options[key]
	return v, ok
}

// WithOption returns a copy of c with key set to value.
func (c Context) WithOption(key, value string) Context {
	opts := maps.Clone(c.options)
	if opts == nil {
		opts = make(map[string]string, 1)
	}
	opts[key] = value
	return Context{source: c.source, options: opts}
}

// String renders the context for diagnostics, e.g.
// "{polyglot.source=proj/pom.toml, strict=true}".
func (c Context) String() string {
	var parts []string
	if c.source != nil {
		parts = append(parts, SourceKey+"="+c.source.location())
	}
	for _, k := range slices.Sorted(maps.Keys(c.options)) {
		parts = append(parts, fmt.Sprintf("%s=%s", k, c.options[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
