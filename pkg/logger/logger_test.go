// pkg/logger/logger_test.go

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  zapcore.Level
	}{
		{name: "debug", input: "debug", want: zapcore.DebugLevel},
		{name: "info", input: "info", want: zapcore.InfoLevel},
		{name: "warn", input: "warn", want: zapcore.WarnLevel},
		{name: "error", input: "error", want: zapcore.ErrorLevel},
		{name: "uppercase", input: "DEBUG", want: zapcore.DebugLevel},
		{name: "unset_defaults_to_warn", input: "", want: zapcore.WarnLevel},
		{name: "garbage_defaults_to_warn", input: "loud", want: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.input))
		})
	}
}

func TestLReturnsInitializedLogger(t *testing.T) {
	assert.NotNil(t, L())
	assert.NotNil(t, L().Check(zapcore.ErrorLevel, "probe"))
}
