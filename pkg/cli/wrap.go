// pkg/cli/wrap.go

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/spindle-cli/spindle/pkg/logger"
	"github.com/spindle-cli/spindle/pkg/wheelio"
)

// Wrap adapts a RuntimeContext-aware handler to a cobra RunE, adding panic
// recovery and outcome logging around it.
func Wrap(fn func(rc *wheelio.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		logger.Initialize()

		rc := wheelio.NewContext(context.Background(), cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		return fn(rc, cmd, args)
	}
}
