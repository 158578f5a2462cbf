package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/cmdkit/internal/config"
	"github.com/sandevgo/cmdkit/pkg/log"
)

// initEnv loads the runtime .env file, if any, before the config is parsed.
// A missing file is fine; a broken one is worth a warning but not fatal.
func initEnv(ctx context.Context) {
	envPath := filepath.Join(config.GetRuntimePath(), ".env")
	if _, err := os.Stat(envPath); err != nil {
		return
	}
	if err := godotenv.Load(envPath); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("path", envPath).Msg("failed to load .env")
	}
}
