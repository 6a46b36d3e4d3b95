package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// Execute builds the command tree, wires the --verbose flag to the logger
// and runs the command selected by args.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level, including per-stage timings
func (c *CLI) Execute(ctx context.Context, args []string) error {
	var verbose bool

	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		level := LogInfo
		if verbose {
			level = LogDebug
		}
		c.SetLogLevel(level)
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.SetArgs(args)
	root.SetOut(c.Out)
	return root.ExecuteContext(ctx)
}
