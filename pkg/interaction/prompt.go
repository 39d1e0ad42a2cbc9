// pkg/interaction/prompt.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spindle-cli/spindle/pkg/wheel"
)

// CountLabel is the exact count prompt, minus the trailing separator that
// ReadLine appends.
const CountLabel = "Enter total number of decision options (minimum: 2, maximum: 10)"

// PromptCount asks for the option count until a value in the accepted range
// is supplied. Malformed and out-of-range input each print an error line and
// re-prompt; only a reader failure returns an error.
func PromptCount(ctx context.Context, reader *bufio.Reader, w io.Writer) (int, error) {
	for {
		line, err := ReadLine(ctx, reader, w, CountLabel)
		if err != nil {
			return 0, err
		}
		count, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || wheel.ValidCount(count) != nil {
			fmt.Fprintln(w, "ERROR: Invalid parameter range. Please specify between 2-10 options.")
			continue
		}
		return count, nil
	}
}

// PromptOptions collects count non-empty lines in order. An empty line does
// not consume its slot; the next non-empty line fills it.
func PromptOptions(ctx context.Context, reader *bufio.Reader, w io.Writer, count int) (wheel.OptionList, error) {
	fmt.Fprintln(w, "\nEnter decision options (press Enter after each option):")

	options := make(wheel.OptionList, 0, count)
	for i := 1; i <= count; i++ {
		for {
			line, err := ReadLine(ctx, reader, w, fmt.Sprintf("Option %d", i))
			if err != nil {
				return nil, err
			}
			if wheel.NonEmpty(line) != nil {
				fmt.Fprintln(w, "ERROR: Empty input detected. Please enter valid option text.")
				continue
			}
			options = append(options, line)
			break
		}
	}
	return options, nil
}
