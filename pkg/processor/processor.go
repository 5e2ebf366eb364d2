// Package processor turns a directory, a descriptor file or a stream into a
// [pom.Model], translating non-XML descriptors on the way.
//
// When a directory holds a descriptor in another format, [Processor.Locate]
// hands out its companion file instead (see package companion). Reading the
// companion reads the original through the matching mapping, renders the
// result as pom.xml into the companion and returns a model whose descriptor
// file is the companion. The build engine keeps operating on that file;
// package project restores the original afterwards.
package processor

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/polyglot/pkg/companion"
	perrors "github.com/matzehuels/polyglot/pkg/errors"
	"github.com/matzehuels/polyglot/pkg/mapping"
	"github.com/matzehuels/polyglot/pkg/observability"
	"github.com/matzehuels/polyglot/pkg/pom"
)

// Model properties that request a dump of the translation.
const (
	DumpPOMProperty      = "polyglot.dump.pom"
	DumpReadOnlyProperty = "polyglot.dump.readonly"
)

// packagedExtension is the suffix of descriptors shipped inside repositories.
const packagedExtension = ".pom"

// Options is the process-wide configuration of a Processor.
type Options struct {
	// DumpPOM names a file, relative to the descriptor's directory, that
	// receives a copy of every translation. A model's polyglot.dump.pom
	// property takes precedence.
	DumpPOM string

	// DumpReadOnly marks dump files read-only after writing.
	DumpReadOnly bool
}

// Processor locates and reads project descriptors.
type Processor struct {
	registry   *mapping.Registry
	companions *companion.Manager
	opts       Options
	logger     *log.Logger
}

// New returns a Processor. A nil logger uses log.Default().
func New(reg *mapping.Registry, companions *companion.Manager, opts Options, logger *log.Logger) *Processor {
	if logger == nil {
		logger = log.Default()
	}
	return &Processor{
		registry:   reg,
		companions: companions,
		opts:       opts,
		logger:     logger,
	}
}

// Locate returns the descriptor the build should read for dir. A plain
// dir/pom.xml is returned as-is; any other located descriptor is replaced by
// its companion, which is created empty if missing.
func (p *Processor) Locate(dir string) (string, error) {
	located := p.registry.Locate(dir)
	if filepath.Base(located) == pom.DefaultFile && filepath.Dir(located) == filepath.Clean(dir) {
		observability.Translation().OnLocate(dir, located, false)
		return located, nil
	}

	path, err := p.companions.Ensure(located)
	if err != nil {
		return "", err
	}
	p.logger.Debug("located descriptor", "dir", dir, "original", located, "companion", path)
	observability.Translation().OnLocate(dir, path, true)
	return path, nil
}

// ReadFile reads the descriptor at path. Without a source in ctx the path
// itself becomes the source. The returned model's descriptor file is path.
func (p *Processor) ReadFile(path string, ctx mapping.Context) (*pom.Model, error) {
	if path == "" {
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "a file or reader should be given")
	}
	if _, ok := ctx.Source(); !ok {
		ctx = ctx.WithSource(mapping.FileSource(path))
	}
	m, err := p.read(nil, path, ctx)
	if err != nil {
		return nil, err
	}
	m.DescriptorFile = path
	return m, nil
}

// Read reads a descriptor from r. If ctx names a companion source the
// original file is read instead and r is ignored.
func (p *Processor) Read(r io.Reader, ctx mapping.Context) (*pom.Model, error) {
	if r == nil {
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "a file or reader should be given")
	}
	return p.read(r, "", ctx)
}

func (p *Processor) read(r io.Reader, path string, ctx mapping.Context) (*pom.Model, error) {
	target, ok, err := p.companionFor(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		return p.translate(target, ctx)
	}

	reader, err := p.registry.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	switch {
	case path != "":
		return reader.ReadFile(path, ctx)
	case r != nil:
		return reader.Read(r, ctx)
	default:
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "a file or reader should be given")
	}
}

// companionFor returns the companion backing the source of ctx: either the
// source itself, or the companion located for the source's directory.
// Virtual sources have no directory to look in.
func (p *Processor) companionFor(ctx mapping.Context) (string, bool, error) {
	src, ok := ctx.Source()
	if !ok || src.Virtual() {
		return "", false, nil
	}

	if companion.IsCompanion(src.Path) {
		return src.Path, true, nil
	}
	name := filepath.Base(src.Path)
	if name == pom.DefaultFile || strings.HasSuffix(name, packagedExtension) {
		return "", false, nil
	}

	located, err := p.Locate(filepath.Dir(src.Path))
	if err != nil {
		return "", false, err
	}
	return located, companion.IsCompanion(located), nil
}

func (p *Processor) translate(path string, ctx mapping.Context) (*pom.Model, error) {
	original, ok := companion.Original(path)
	if !ok {
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "not a companion file: %s", path)
	}

	start := time.Now()
	observability.Translation().OnTranslateStart(original)

	m, err := p.translateFile(path, original, ctx)
	observability.Translation().OnTranslateComplete(original, path, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (p *Processor) translateFile(path, original string, ctx mapping.Context) (*pom.Model, error) {
	ctx = ctx.WithSource(mapping.FileSource(original))
	reader, err := p.registry.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	m, err := reader.ReadFile(original, ctx)
	if err != nil {
		return nil, err
	}

	rendered, err := pom.Marshal(m)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeTranslation, err, "render %s", original)
	}
	if err := p.companions.WriteTranslation(path, rendered); err != nil {
		return nil, err
	}
	p.logger.Debug("translated descriptor", "original", original, "companion", path, "bytes", len(rendered))

	if err := p.dump(path, original, m, rendered); err != nil {
		return nil, err
	}

	m.DescriptorFile = path
	return m, nil
}

func (p *Processor) dump(path, original string, m *pom.Model, rendered []byte) error {
	name, ok := m.Property(DumpPOMProperty)
	if !ok || name == "" {
		name = p.opts.DumpPOM
	}
	if name == "" {
		return nil
	}
	if err := perrors.ValidateDumpName(name); err != nil {
		return err
	}
	if strings.EqualFold(name, filepath.Base(original)) {
		return perrors.New(perrors.ErrCodeInvalidPath, "dump file %q would overwrite the descriptor %s", name, original)
	}

	readOnly := p.opts.DumpReadOnly
	if v, ok := m.Property(DumpReadOnlyProperty); ok && v == "true" {
		readOnly = true
	}

	target := filepath.Join(filepath.Dir(path), name)
	written, err := p.companions.WriteDump(target, rendered, readOnly)
	observability.Translation().OnDump(target, written, err)
	return err
}
