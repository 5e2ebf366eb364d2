package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/polyglot/pkg/errors"
	"github.com/matzehuels/polyglot/pkg/mapping"
)

// mappingsCommand creates the mappings command.
func (c *CLI) mappingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mappings [name]",
		Short: "List the supported descriptor formats",
		Long: `List the supported descriptor formats in resolution order.

When a directory holds descriptors in several formats, the first one listed
wins. With a name, only that mapping is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := newRegistry()

			if len(args) == 1 {
				m, ok := reg.Lookup(args[0])
				if !ok {
					return perrors.New(perrors.ErrCodeNoMapping, "unknown mapping %q", args[0])
				}
				printKeyValue("name", m.Name())
				printKeyValue("file", descriptorName(m))
				printKeyValue("priority", fmt.Sprint(m.Priority()))
				return nil
			}

			fmt.Println(StyleTitle.Render("Mappings"))
			for _, m := range reg.Mappings() {
				printRow(m.Name(), descriptorName(m), StyleDim.Render(fmt.Sprintf("priority %d", m.Priority())))
			}
			return nil
		},
	}
}

func descriptorName(m mapping.Mapping) string {
	return "pom" + m.Extension()
}
