package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polyglot/internal/config"
	"github.com/matzehuels/polyglot/pkg/buildinfo"
	"github.com/matzehuels/polyglot/pkg/companion"
	"github.com/matzehuels/polyglot/pkg/mapping"
	"github.com/matzehuels/polyglot/pkg/mapping/hclpom"
	"github.com/matzehuels/polyglot/pkg/mapping/jsonpom"
	"github.com/matzehuels/polyglot/pkg/mapping/tomlpom"
	"github.com/matzehuels/polyglot/pkg/mapping/xmlpom"
	"github.com/matzehuels/polyglot/pkg/mapping/yamlpom"
	"github.com/matzehuels/polyglot/pkg/processor"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    &config.Config{},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "polyglot",
		Short:             "Polyglot reads Maven project descriptors written in YAML, TOML, HCL or JSON",
		Long:              `Polyglot locates project descriptors in alternative formats, translates them into pom.xml companions and builds projects from them while reporting the original descriptor files.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.prepare,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (yaml, toml or json)")

	// Register all subcommands
	root.AddCommand(c.locateCommand())
	root.AddCommand(c.translateCommand())
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.mappingsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Read Pipeline
// =============================================================================

// newRegistry returns the registry of every supported descriptor format.
func newRegistry() *mapping.Registry {
	return mapping.NewRegistry(
		xmlpom.New(),
		yamlpom.New(),
		tomlpom.New(),
		hclpom.New(),
		jsonpom.New(),
	)
}

// pipeline bundles a processor with the companion manager it writes through.
// Close removes the companion placeholders created while it was in use.
type pipeline struct {
	registry   *mapping.Registry
	companions *companion.Manager
	proc       *processor.Processor
	logger     *log.Logger
}

func (c *CLI) newPipeline(opts processor.Options) *pipeline {
	reg := newRegistry()
	companions := companion.NewManager(c.Logger)
	return &pipeline{
		registry:   reg,
		companions: companions,
		proc:       processor.New(reg, companions, opts, c.Logger),
		logger:     c.Logger,
	}
}

func (p *pipeline) Close() error {
	return p.companions.Close()
}

// release closes p from a deferred call. Leftover placeholders do not fail
// the command.
func (p *pipeline) release() {
	if err := p.Close(); err != nil {
		p.logger.Debug("companion cleanup failed", "error", err)
	}
}

// processorOptions returns the configured options with the dump flags of
// cmd applied on top.
func (c *CLI) processorOptions(cmd *cobra.Command) processor.Options {
	opts := c.cfg.ProcessorOptions()
	flags := cmd.Flags()
	if flags.Changed("dump") {
		opts.DumpPOM, _ = flags.GetString("dump")
	}
	if flags.Changed("dump-readonly") {
		opts.DumpReadOnly, _ = flags.GetBool("dump-readonly")
	}
	return opts
}

// addDumpFlags registers --dump and --dump-readonly on cmd.
func addDumpFlags(cmd *cobra.Command) {
	cmd.Flags().String("dump", "", "also write the translation to this file next to the descriptor")
	cmd.Flags().Bool("dump-readonly", false, "mark dump files read-only")
}
