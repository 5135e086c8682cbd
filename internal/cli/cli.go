// Package cli implements the cloudgraph command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cloudgraph/pkg/buildinfo"
	"github.com/matzehuels/cloudgraph/pkg/config"
	"github.com/matzehuels/cloudgraph/pkg/errors"
	"github.com/matzehuels/cloudgraph/pkg/pipeline"
	"github.com/matzehuels/cloudgraph/pkg/table"
)

// appName is the application name used for directories and display.
const appName = "cloudgraph"

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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "cloudgraph maps Azure resource inventories to reference graphs",
		Long: `cloudgraph reads a CSV export of Azure resources, links every resource to the
resources whose ids appear in its fields, and marks network security groups and
storage accounts that admit traffic from the Internet.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./"+config.FileName+")")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.exposedCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// ErrorMessage formats err for the terminal.
func ErrorMessage(err error) string {
	return styleIconError.Render(iconError) + " " + errors.UserMessage(err)
}

// =============================================================================
// Shared helpers
// =============================================================================

// loadConfig resolves the config file named by --config, or a discovered one.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Resolve(c.configPath)
	if err != nil {
		return cfg, err
	}
	c.Logger.Debug("Config resolved", "data_dir", cfg.DataDir, "pattern", cfg.Pattern, "formats", cfg.Formats)
	return cfg, nil
}

// buildGraph resolves the input and runs the pipeline over it.
func (c *CLI) buildGraph(ctx context.Context, args []string, cfg config.Config, skipExposure bool) (*pipeline.Result, error) {
	input, err := resolveInput(args, cfg)
	if err != nil {
		return nil, err
	}
	printInfo("Loading CSV from: %s", input)

	opts := pipeline.Options{
		Table: table.Options{
			Delimiter: cfg.DelimiterRune(),
			TrimSpace: cfg.TrimSpace,
		},
		SkipExposure: skipExposure,
	}
	return pipeline.NewRunner(c.Logger).BuildFile(ctx, input, opts)
}
