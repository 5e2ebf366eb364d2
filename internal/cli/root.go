package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/polyglot/internal/config"
)

// prepare loads the configuration, applies the log level and attaches the
// logger to the command context. It runs before every subcommand.
//
// Log level precedence: --verbose, then log.level from config or
// POLYGLOT_LOG_LEVEL, then info.
func (c *CLI) prepare(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	for _, w := range cfg.Validate() {
		c.Logger.Warn(w)
	}

	c.SetLogLevel(levelFor(c.verbose, cfg.Log.Level))
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}
