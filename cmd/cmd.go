package cmd

import (
	logger "github.com/movey-net/movey-cli/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Shared output state for the credential commands. Each command registers
// its own --verbose/--debug flags onto these variables and rebuilds the
// Logger in its PreRun.
var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

// registerOutputFlags wires the shared verbosity flags and logger setup onto
// a credential command.
func registerOutputFlags(c *cobra.Command) {
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	c.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	c.PreRun = func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
	}
}

// Helper functions for testing

// ResetGlobalState resets all global command state to defaults for testing.
// Cobra keeps flag values and their Changed markers between Execute calls on
// the same command objects, so tests must reset them explicitly.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	resetLoginCommandState()
	resetLogoutCommandState()

	for _, c := range []*cobra.Command{LoginCmd, LogoutCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
