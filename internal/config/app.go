package config

import (
	"context"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/cmdkit/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"CMDKIT_RUNTIME_PATH" envDefault:".cmdkit"`

	// Prompt shown by the interactive shell.
	Prompt string `env:"CMDKIT_PROMPT" envDefault:"? "`

	// Separators is the token delimiter set handed to the dispatcher.
	// Empty means the scanner default (space, tab, CR, LF).
	Separators string `env:"CMDKIT_SEPARATORS"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse app config")
	}
	return c
}

// GetRuntimePath resolves the runtime directory before the full config is
// parsed, so the .env file inside it can be loaded first.
func GetRuntimePath() string {
	if p := os.Getenv("CMDKIT_RUNTIME_PATH"); p != "" {
		return p
	}
	return ".cmdkit"
}
