package project

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/polyglot/pkg/companion"
	"github.com/matzehuels/polyglot/pkg/observability"
)

// PolyglotBuilder restores original descriptor files on the results of a
// wrapped Builder.
type PolyglotBuilder struct {
	builder Builder
	logger  *log.Logger
}

// NewPolyglotBuilder wraps b. A nil logger uses log.Default().
func NewPolyglotBuilder(b Builder, logger *log.Logger) *PolyglotBuilder {
	if logger == nil {
		logger = log.Default()
	}
	return &PolyglotBuilder{builder: b, logger: logger}
}

func (p *PolyglotBuilder) Build(file string, req Request) (Result, error) {
	return p.convert(p.builder.Build(file, req))
}

func (p *PolyglotBuilder) BuildArtifact(a Artifact, req Request) (Result, error) {
	return p.convert(p.builder.BuildArtifact(a, req))
}

func (p *PolyglotBuilder) BuildArtifactStub(a Artifact, allowStub bool, req Request) (Result, error) {
	return p.convert(p.builder.BuildArtifactStub(a, allowStub, req))
}

func (p *PolyglotBuilder) BuildSource(src ModelSource, req Request) (Result, error) {
	return p.convert(p.builder.BuildSource(src, req))
}

func (p *PolyglotBuilder) BuildAll(files []string, recursive bool, req Request) ([]Result, error) {
	results, err := p.builder.BuildAll(files, recursive, req)
	if err != nil {
		return nil, err
	}
	out := make([]Result, len(results))
	for i, r := range results {
		out[i] = p.restore(r)
	}
	return out, nil
}

func (p *PolyglotBuilder) convert(r Result, err error) (Result, error) {
	if err != nil {
		return nil, err
	}
	return p.restore(r), nil
}

// restore points the project, its model and the result at the original
// descriptor. Results without a descriptor file are returned unchanged.
func (p *PolyglotBuilder) restore(r Result) Result {
	file := r.POMFile()
	if file == "" {
		return r
	}

	original, ok := companion.Original(file)
	if !ok {
		original = file
	}
	if proj := r.Project(); proj != nil {
		proj.File = original
		if proj.Model != nil {
			proj.Model.DescriptorFile = original
		}
	}
	if original != file {
		p.logger.Debug("restored descriptor", "companion", file, "original", original)
		observability.Build().OnRestore(file, original)
	}
	return &restoredResult{result: r, pomFile: original}
}

// restoredResult reports pomFile and forwards everything else.
type restoredResult struct {
	result  Result
	pomFile string
}

func (r *restoredResult) POMFile() string                   { return r.pomFile }
func (r *restoredResult) ProjectID() string                 { return r.result.ProjectID() }
func (r *restoredResult) Project() *Project                 { return r.result.Project() }
func (r *restoredResult) Problems() []Problem               { return r.result.Problems() }
func (r *restoredResult) DependencyResolution() *Resolution { return r.result.DependencyResolution() }

var _ Builder = (*PolyglotBuilder)(nil)
