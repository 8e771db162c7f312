package config

import (
	"log/slog"

	"github.com/subosito/gotenv"
)

func EnvFile(env string) string {
	return "config/envs/.env." + env
}

// LoadEnv loads config/envs/.env.<env> on top of the OS environment.
// Variables already set in the environment win.
func LoadEnv(env string) {
	envFile := EnvFile(env)
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment",
			slog.String("file", envFile))
	}
}
