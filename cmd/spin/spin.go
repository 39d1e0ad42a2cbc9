// cmd/spin/spin.go

package spin

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spindle-cli/spindle/pkg/cli"
	"github.com/spindle-cli/spindle/pkg/display"
	"github.com/spindle-cli/spindle/pkg/interaction"
	"github.com/spindle-cli/spindle/pkg/wheel"
	"github.com/spindle-cli/spindle/pkg/wheelerr"
	"github.com/spindle-cli/spindle/pkg/wheelio"
)

// Options carries the run configuration plus the I/O endpoints, so the whole
// pipeline runs against buffers under test.
type Options struct {
	Pace  time.Duration
	Seed  int64
	Color bool

	In     io.Reader
	Prompt io.Writer
	Out    io.Writer
}

// DefaultOptions matches a plain interactive run: prompts on stderr, report
// on stdout.
func DefaultOptions() Options {
	return Options{
		Pace:   display.DefaultPace,
		Color:  true,
		In:     os.Stdin,
		Prompt: os.Stderr,
		Out:    os.Stdout,
	}
}

// SpinCmd collects options interactively and spins the wheel.
var SpinCmd = &cobra.Command{
	Use:   "spin",
	Short: "Collect decision options and pick one at random",
	Long: `Spin prompts for 2-10 decision options, selects one uniformly at
random, and prints the selection report with the wheel breakdown and
probability analysis.`,
	RunE: cli.Wrap(func(rc *wheelio.RuntimeContext, cmd *cobra.Command, args []string) error {
		opts := DefaultOptions()
		opts.Pace, _ = cmd.Flags().GetDuration("pace")
		opts.Seed, _ = cmd.Flags().GetInt64("seed")
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			opts.Color = false
		}
		return Run(rc, opts)
	}),
}

func init() {
	SpinCmd.Flags().Duration("pace", display.DefaultPace, "delay between rotation phases (0 disables)")
	SpinCmd.Flags().Int64("seed", 0, "fixed random seed (0 seeds from the clock)")
	SpinCmd.Flags().Bool("no-color", false, "disable styled output")
	_ = SpinCmd.Flags().MarkHidden("seed")
}

// Run executes the collect, select, report pipeline.
func Run(rc *wheelio.RuntimeContext, opts Options) error {
	renderer := display.NewRenderer(opts.Out, display.WithPace(opts.Pace), display.WithColor(opts.Color))
	renderer.Header()
	renderer.CollectionPhase()

	reader := bufio.NewReader(opts.In)

	count, err := interaction.PromptCount(rc.Ctx, reader, opts.Prompt)
	if err != nil {
		// Closed stdin mid-prompt is the user ending the session.
		return wheelerr.NewExpectedError(err)
	}
	rc.Log.Debug("Option count accepted", zap.Int("count", count))

	options, err := interaction.PromptOptions(rc.Ctx, reader, opts.Prompt, count)
	if err != nil {
		return wheelerr.NewExpectedError(err)
	}
	renderer.CollectionSummary(len(options))

	engineOpts := []wheel.Option{}
	if opts.Seed != 0 {
		engineOpts = append(engineOpts, wheel.WithSeed(opts.Seed))
	}
	engine := wheel.NewEngine(engineOpts...)

	result, err := engine.Spin(options)
	if err != nil {
		return err
	}
	rc.Log.Info("Selection complete",
		zap.Int("position", result.Final.Index+1),
		zap.Int("total", len(options)),
		zap.String("option", result.Final.Text))

	renderer.Report(options, result)
	return nil
}
