package main

import (
	"fmt"

	"github.com/sandevgo/cmdkit/internal/config"
	envfile "github.com/sandevgo/cmdkit/pkg/env"
	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the effective settings as .env content",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		initEnv(ctx)
		cfg := config.NewAppConfig(ctx)

		content, err := envfile.MarshalEnv(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Print(content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
