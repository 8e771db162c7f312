package main

import (
	"context"
	"log/slog"

	"github.com/spacesedan/wordsentiment/config"
)

func main() {
	config.LoadEnv(config.AppEnv())

	if err := newRootCmd(config.Load()).ExecuteContext(context.Background()); err != nil {
		slog.Error("[Main] Command failed", slog.String("error", err.Error()))
	}
}
