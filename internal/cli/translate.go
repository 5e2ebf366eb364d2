package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polyglot/pkg/mapping"
	"github.com/matzehuels/polyglot/pkg/pom"
)

// translateCommand creates the translate command.
func (c *CLI) translateCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "translate [dir|file]",
		Short: "Render a project descriptor as pom.xml",
		Long: `Render a project descriptor as pom.xml.

The descriptor is read through the same pipeline a build uses. The rendering
is printed to stdout, or written to --output. --dump additionally keeps a
"do not modify" copy next to the descriptor.`,
		Example: `  polyglot translate
  polyglot translate services/api -o api.xml
  polyglot translate pom.yaml --dump pom.xml --dump-readonly`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) > 0 {
				target = args[0]
			}
			logger := loggerFromContext(cmd.Context())

			p := c.newPipeline(c.processorOptions(cmd))
			defer p.release()

			file, err := resolveDescriptor(p, target)
			if err != nil {
				return err
			}
			logger.Debug("reading descriptor", "file", file)

			m, err := p.proc.ReadFile(file, mapping.Context{})
			if err != nil {
				return err
			}
			data, err := pom.Marshal(m)
			if err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Translated %s", StyleHighlight.Render(m.ID()))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the rendering to this file")
	addDumpFlags(cmd)

	return cmd
}

// resolveDescriptor returns target itself, or the descriptor located in it
// when target is a directory.
func resolveDescriptor(p *pipeline, target string) (string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return target, nil
	}
	file, err := p.proc.Locate(target)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(file); err != nil {
		return "", fmt.Errorf("no project descriptor in %s", target)
	}
	return file, nil
}
