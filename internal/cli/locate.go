package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/polyglot/pkg/companion"
	"github.com/matzehuels/polyglot/pkg/mapping"
)

// locateCommand creates the locate command.
func (c *CLI) locateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locate [dir]",
		Short: "Show the descriptor a project directory resolves to",
		Long: `Show the descriptor a project directory resolves to.

A directory with a plain pom.xml resolves to that file. Any other descriptor
resolves to its companion file (.polyglot.<name>), which holds the pom.xml
rendering the build reads.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			p := c.newPipeline(c.cfg.ProcessorOptions())
			defer p.release()

			located, err := p.proc.Locate(dir)
			if err != nil {
				return err
			}

			printKeyValue("descriptor", located)
			original, synthetic := companion.Original(located)
			if !synthetic {
				printKeyValue("format", formatOf(p.registry, located))
				return nil
			}
			printKeyValue("original", original)
			printKeyValue("format", formatOf(p.registry, original))
			printNextStep("Render it", "polyglot translate "+dir)
			return nil
		},
	}
}

// formatOf names the mapping that reads file, or "unknown".
func formatOf(reg *mapping.Registry, file string) string {
	ctx := mapping.Context{}.WithSource(mapping.FileSource(file))
	for _, m := range reg.Mappings() {
		if m.Accept(ctx) {
			return m.Name()
		}
	}
	return "unknown"
}
