package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polyglot/pkg/project"
)

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "build [dir|file...]",
		Short: "Build projects and report their descriptors",
		Long: `Build projects with the reference engine.

Each project is reported with its id, the descriptor it was read from, the
number of direct dependencies and any problems. Translated projects report
their original descriptor, never the companion file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			logger := loggerFromContext(cmd.Context())
			prog := newBuildProgress(logger)

			p := c.newPipeline(c.processorOptions(cmd))
			defer p.release()

			engine := project.NewEngine(p.proc, logger)
			builder := project.NewPolyglotBuilder(engine, logger)

			results, err := builder.BuildAll(args, recursive, project.Request{})
			if err != nil {
				return err
			}

			for _, res := range results {
				printResult(res)
				prog.add(res)
			}
			prog.done()

			if prog.failed > 0 {
				return fmt.Errorf("%d of %d projects have errors", prog.failed, prog.projects)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "also build the modules of each project")
	addDumpFlags(cmd)

	return cmd
}

func printResult(res project.Result) {
	printSuccess("%s", StyleHighlight.Render(res.ProjectID()))
	printFile(res.POMFile())
	if r := res.DependencyResolution(); r != nil {
		printDetail("%s direct dependencies", StyleNumber.Render(fmt.Sprint(len(r.Dependencies))))
	}
	for _, problem := range res.Problems() {
		if problem.Severity == project.SeverityError {
			printError("%s", problem.Message)
		} else {
			printWarning("%s", problem.Message)
		}
	}
}
