// pkg/interaction/reader.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ReadLine prompts with a label and returns the next line verbatim, minus
// the trailing line terminator. Prompts are written to w so stdout stays
// free for the report.
func ReadLine(ctx context.Context, reader *bufio.Reader, w io.Writer, label string) (string, error) {
	logger := otelzap.Ctx(ctx)
	logger.Debug("Prompting user for input", zap.String("label", label))

	_, _ = fmt.Fprint(w, label+": ")

	text, err := reader.ReadString('\n')
	if err != nil {
		// A final unterminated line still counts as input.
		if !cerr.Is(err, io.EOF) || text == "" {
			logger.Debug("Failed to read user input", zap.Error(err))
			return "", cerr.Wrap(err, "read input")
		}
	}

	value := strings.TrimRight(text, "\r\n")
	logger.Debug("User input received", zap.String("value", value))
	return value, nil
}
