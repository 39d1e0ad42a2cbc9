// pkg/wheelio/context.go

package wheelio

import (
	"context"
	"time"

	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/spindle-cli/spindle/pkg/telemetry"
)

// RuntimeContext carries the per-command context, logger, and telemetry
// span through the collect/select/report pipeline.
type RuntimeContext struct {
	Ctx       context.Context
	Log       *zap.Logger
	Span      trace.Span
	Timestamp time.Time
	Command   string
}

// NewContext opens a span for the named command and derives a logger
// carrying the command and trace id.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	ctx, span := telemetry.Start(ctx, cmdName)
	traceID := span.SpanContext().TraceID().String()

	log := zap.L().With(
		zap.String("command", cmdName),
		zap.String("trace_id", traceID),
	).Named(cmdName)

	return &RuntimeContext{
		Ctx:       ctx,
		Log:       log,
		Span:      span,
		Timestamp: time.Now(),
		Command:   cmdName,
	}
}

// HandlePanic recovers a panic, logs it, and converts it to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("Panic recovered", zap.Any("panic", r))
	}
}

// End logs the command outcome with its duration and closes the span.
func (rc *RuntimeContext) End(errPtr *error) {
	defer rc.Span.End()

	duration := time.Since(rc.Timestamp)
	success := *errPtr == nil

	if success {
		rc.Log.Info("Command completed", zap.Duration("duration", duration))
	} else {
		rc.Log.Error("Command failed", zap.Duration("duration", duration), zap.Error(*errPtr))
	}

	rc.Span.SetAttributes(
		attribute.Bool("success", success),
		attribute.Int64("duration_ms", duration.Milliseconds()),
	)
}
