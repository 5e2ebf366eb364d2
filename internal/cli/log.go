// Package cli implements the polyglot command-line interface.
//
// This package provides commands for locating project descriptors, rendering
// alternative formats as pom.xml and building projects through the restoring
// builder. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - locate: Show which descriptor a directory resolves to
//   - translate: Render a descriptor as pom.xml, optionally dumping it to disk
//   - build: Build projects and report their original descriptor files
//   - mappings: List the registered descriptor formats in resolution order
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so command helpers can log without a CLI.
//
// # Example
//
//	import "github.com/matzehuels/polyglot/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/polyglot/pkg/project"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// levelFor picks the log level: --verbose wins, then a valid configured
// level, then info.
func levelFor(verbose bool, configured string) log.Level {
	if verbose {
		return log.DebugLevel
	}
	if configured == "" {
		return log.InfoLevel
	}
	lvl, err := log.ParseLevel(configured)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// buildProgress counts built projects and logs a summary when done.
type buildProgress struct {
	logger   *log.Logger
	start    time.Time
	projects int
	failed   int
}

func newBuildProgress(l *log.Logger) *buildProgress {
	return &buildProgress{logger: l, start: time.Now()}
}

// add records res. A project with at least one error problem counts as failed.
func (p *buildProgress) add(res project.Result) {
	p.projects++
	for _, problem := range res.Problems() {
		if problem.Severity == project.SeverityError {
			p.failed++
			return
		}
	}
}

// done logs e.g. "Built 3 projects, 1 with errors (12ms)".
func (p *buildProgress) done() {
	msg := fmt.Sprintf("Built %d %s", p.projects, plural(p.projects, "project", "projects"))
	if p.failed > 0 {
		msg += fmt.Sprintf(", %d with errors", p.failed)
	}
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// withLogger attaches l to ctx for the command helpers.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return log.WithContext(ctx, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	return log.FromContext(ctx)
}
