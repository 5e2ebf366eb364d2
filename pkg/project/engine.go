package project

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	perrors "github.com/matzehuels/polyglot/pkg/errors"
	"github.com/matzehuels/polyglot/pkg/mapping"
	"github.com/matzehuels/polyglot/pkg/observability"
	"github.com/matzehuels/polyglot/pkg/pom"
)

// Engine is the reference Builder.
type Engine struct {
	proc   ModelProcessor
	logger *log.Logger
}

// NewEngine returns an Engine reading descriptors through proc.
// A nil logger uses log.Default().
func NewEngine(proc ModelProcessor, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{proc: proc, logger: logger}
}

// Build builds the project described by file. A directory is located first,
// so a translated project is built from its companion.
func (e *Engine) Build(file string, req Request) (Result, error) {
	start := time.Now()
	observability.Build().OnBuildStart(file)

	res, err := e.build(file, req)
	observability.Build().OnBuildComplete(file, count(res), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// BuildArtifact builds the project of a resolved artifact.
func (e *Engine) BuildArtifact(a Artifact, req Request) (Result, error) {
	return e.BuildArtifactStub(a, false, req)
}

// BuildArtifactStub builds the project of an artifact. When the artifact's
// descriptor is missing and allowStub is set, a stub project without a
// descriptor file is returned instead of an error.
func (e *Engine) BuildArtifactStub(a Artifact, allowStub bool, req Request) (Result, error) {
	if a.File != "" {
		if _, err := os.Stat(a.File); err == nil {
			return e.Build(a.File, req)
		}
	}
	if !allowStub {
		return nil, perrors.New(perrors.ErrCodeNotFound, "descriptor for %s not found", a)
	}

	e.logger.Debug("using stub model", "artifact", a.String())
	m := &pom.Model{
		ModelVersion: "4.0.0",
		GroupID:      a.GroupID,
		ArtifactID:   a.ArtifactID,
		Version:      a.Version,
		Packaging:    "pom",
	}
	return e.result("", m), nil
}

// BuildSource builds a project from src. File sources are read like Build;
// any other source is read as a virtual descriptor without a file.
func (e *Engine) BuildSource(src ModelSource, req Request) (Result, error) {
	if fs, ok := src.(FileSource); ok {
		return e.Build(string(fs), req)
	}

	rc, err := src.Open()
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeNotFound, err, "open %s", src.Location())
	}
	defer rc.Close()

	ctx := req.Context.WithSource(mapping.Source{Location: src.Location()})
	m, err := e.proc.Read(rc, ctx)
	if err != nil {
		return nil, manifestError(err, src.Location())
	}
	return e.result("", m), nil
}

// BuildAll builds every file in order. When recursive is set, the modules
// declared by each project are located and built after it.
func (e *Engine) BuildAll(files []string, recursive bool, req Request) ([]Result, error) {
	seen := make(map[string]bool)
	var results []Result

	var visit func(file string) error
	visit = func(file string) error {
		res, err := e.Build(file, req)
		if err != nil {
			return err
		}
		key := filepath.Clean(res.POMFile())
		if seen[key] {
			return nil
		}
		seen[key] = true
		results = append(results, res)

		if !recursive {
			return nil
		}
		dir := filepath.Dir(res.POMFile())
		for _, module := range res.Project().Model.Modules {
			if err := visit(filepath.Join(dir, module)); err != nil {
				return err
			}
		}
		return nil
	}

	for _, file := range files {
		if err := visit(file); err != nil {
			return results, err
		}
	}
	return results, nil
}

func (e *Engine) build(file string, req Request) (*result, error) {
	info, err := os.Stat(file)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeNotFound, err, "descriptor %s not found", file)
	}
	if info.IsDir() {
		if file, err = e.proc.Locate(file); err != nil {
			return nil, err
		}
		if _, err := os.Stat(file); err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeNotFound, err, "no descriptor in %s", filepath.Dir(file))
		}
	}

	m, err := e.proc.ReadFile(file, req.Context)
	if err != nil {
		return nil, manifestError(err, file)
	}
	e.logger.Debug("built project", "id", m.ID(), "file", file)
	return e.result(file, m), nil
}

func (e *Engine) result(file string, m *pom.Model) *result {
	m.DescriptorFile = file
	return &result{
		pomFile: file,
		project: &Project{
			ID:    m.ID(),
			File:  file,
			Model: m,
		},
		problems:   validate(m),
		resolution: &Resolution{Dependencies: directDependencies(m)},
	}
}

// manifestError marks a read failure as an unreadable descriptor. Errors
// that already carry a code are returned as-is.
func manifestError(err error, file string) error {
	if perrors.GetCode(err) != "" {
		return err
	}
	return perrors.Wrap(perrors.ErrCodeInvalidManifest, err, "read %s", file)
}

func count(r *result) int {
	if r == nil {
		return 0
	}
	return 1
}

func validate(m *pom.Model) []Problem {
	var problems []Problem
	if m.EffectiveGroupID() == "" {
		problems = append(problems, Problem{SeverityWarning, "'groupId' is missing"})
	}
	if m.ArtifactID == "" {
		problems = append(problems, Problem{SeverityError, "'artifactId' is missing"})
	}
	if m.EffectiveVersion() == "" {
		problems = append(problems, Problem{SeverityWarning, "'version' is missing"})
	}
	return problems
}

func directDependencies(m *pom.Model) []string {
	var deps []string
	seen := make(map[string]bool)

	for _, dep := range m.Dependencies {
		// Skip test and provided scope dependencies
		if dep.Scope == "test" || dep.Scope == "provided" || dep.Optional == "true" {
			continue
		}
		// Skip dependencies with unresolved properties
		if strings.HasPrefix(dep.GroupID, "${") || strings.HasPrefix(dep.ArtifactID, "${") {
			continue
		}
		coord := dep.Coordinate()
		if !seen[coord] {
			seen[coord] = true
			deps = append(deps, coord)
		}
	}
	return deps
}

// result is the Engine's Result.
type result struct {
	pomFile    string
	project    *Project
	problems   []Problem
	resolution *Resolution
}

func (r *result) POMFile() string                   { return r.pomFile }
func (r *result) ProjectID() string                 { return r.project.ID }
func (r *result) Project() *Project                 { return r.project }
func (r *result) Problems() []Problem               { return r.problems }
func (r *result) DependencyResolution() *Resolution { return r.resolution }

var _ Builder = (*Engine)(nil)
