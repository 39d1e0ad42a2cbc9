// cmd/root.go

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spindle-cli/spindle/cmd/spin"
	"github.com/spindle-cli/spindle/pkg/cli"
	"github.com/spindle-cli/spindle/pkg/logger"
	"github.com/spindle-cli/spindle/pkg/wheelerr"
	"github.com/spindle-cli/spindle/pkg/wheelio"
)

// RootCmd is the base command for spindle. Invoked bare it behaves like the
// spin subcommand with default settings, keeping the single-entry flow.
var RootCmd = &cobra.Command{
	Use:   "spindle",
	Short: "Interactive decision wheel",
	Long: `Spindle is a console decision wheel: it collects a short list of
options, spins, and reports the uniformly random selection.`,
	RunE: cli.Wrap(func(rc *wheelio.RuntimeContext, cmd *cobra.Command, args []string) error {
		return spin.Run(rc, spin.DefaultOptions())
	}),
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	RootCmd.AddCommand(spin.SpinCmd)
}

// Execute runs the root command and applies the exit-code policy: user-driven
// termination exits 0, internal failures exit 1.
func Execute() {
	defer func() {
		_ = logger.Sync()
	}()

	RegisterCommands()

	if err := RootCmd.Execute(); err != nil {
		if wheelerr.IsExpectedUserError(err) {
			logger.L().Warn("Session ended by user", zap.Error(err))
			os.Exit(0)
		}
		logger.L().Error("CLI execution error", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
