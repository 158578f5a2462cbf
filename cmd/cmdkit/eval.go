package main

import (
	"os"
	"strings"

	"github.com/sandevgo/cmdkit/internal/config"
	"github.com/sandevgo/cmdkit/internal/shell"
	"github.com/sandevgo/cmdkit/pkg/dispatch"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <line>...",
	Short: "Dispatch a single command line and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		initEnv(ctx)
		cfg := config.NewAppConfig(ctx)

		sh := shell.NewShell(os.Stdout, dispatch.WithSeparators(cfg.Separators))
		sh.Process(ctx, strings.Join(args, " "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
