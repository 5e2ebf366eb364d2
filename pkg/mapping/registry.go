package mapping

import (
	"cmp"
	"path/filepath"
	"slices"

	perrors "github.com/matzehuels/polyglot/pkg/errors"
	"github.com/matzehuels/polyglot/pkg/pom"
)

// Registry holds mappings in resolution order.
// It is safe for concurrent use; mappings are never mutated after
// registration.
type Registry struct {
	mappings []Mapping
}

// NewRegistry orders ms by descending priority. Mappings with equal priority
// keep their registration order.
func NewRegistry(ms ...Mapping) *Registry {
	sorted := slices.Clone(ms)
	slices.SortStableFunc(sorted, func(a, b Mapping) int {
		return cmp.Compare(b.Priority(), a.Priority())
	})
	return &Registry{mappings: sorted}
}

// Mappings returns the mappings in resolution order.
func (r *Registry) Mappings() []Mapping {
	return slices.Clone(r.mappings)
}

// Lookup returns the mapping registered under name.
func (r *Registry) Lookup(name string) (Mapping, bool) {
	for _, m := range r.mappings {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// Locate returns the first descriptor found in dir by any mapping.
// If no mapping finds one, dir/pom.xml is returned; it may not exist.
func (r *Registry) Locate(dir string) string {
	for _, m := range r.mappings {
		if path, ok := m.Locate(dir); ok {
			return path
		}
	}
	return filepath.Join(dir, pom.DefaultFile)
}

// Resolve returns the reader of the first mapping accepting ctx.
// Accepting mappings without a reader are skipped.
func (r *Registry) Resolve(ctx Context) (Reader, error) {
	for _, m := range r.mappings {
		if !m.Accept(ctx) {
			continue
		}
		if rd := m.Reader(); rd != nil {
			return rd, nil
		}
	}
	return nil, perrors.New(perrors.ErrCodeNoMapping, "unable to determine model input format; context=%s", ctx)
}
