// main.go

package main

import (
	"github.com/spindle-cli/spindle/cmd"
	"github.com/spindle-cli/spindle/pkg/logger"
	"github.com/spindle-cli/spindle/pkg/telemetry"

	"go.uber.org/zap"
)

func main() {
	logger.Initialize()

	if err := telemetry.Init("spindle"); err != nil {
		logger.L().Warn("Telemetry disabled", zap.Error(err))
	}

	cmd.Execute()
}
