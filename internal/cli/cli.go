package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ourjourney/iconforge/pkg/buildinfo"
	"github.com/ourjourney/iconforge/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "iconforge"

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
	Out    io.Writer // completion summaries
	Config pipeline.Config
}

// New creates a CLI that logs to logw at the given level and prints
// summaries to out. It uses the built-in render configuration.
func New(logw, out io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Out:    out,
		Config: pipeline.DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Iconforge renders the OurJourney icon family and social preview",
		Long: `Iconforge procedurally renders the OurJourney app icons, favicons and social
preview image from gradients, a parametric heart and radial glows.

Every parameter is built in; the commands take no flags or arguments.
Images are written to the public/ directory under the working directory.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.iconCommand())
	root.AddCommand(c.premiumIconCommand())
	root.AddCommand(c.ogImageCommand())
	root.AddCommand(c.allCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Config, c.Logger)
}
