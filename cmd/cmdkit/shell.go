package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sandevgo/cmdkit/internal/config"
	"github.com/sandevgo/cmdkit/internal/shell"
	"github.com/sandevgo/cmdkit/pkg/log"
	"github.com/sandevgo/cmdkit/pkg/srv"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive command shell",
	Long:  `Reads command lines from the terminal and dispatches each one against the demo command table. Type 'help' for the table, 'exit' to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting cmdkit shell")

		initEnv(ctx)
		cfg := config.NewAppConfig(ctx)

		// The shell cancels this context when the user exits, so shutdown
		// does not wait for a signal.
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		rl, err := shell.NewReadLine(cfg, cancel)
		if err != nil {
			return err
		}

		services := []srv.Service{rl}
		srv.StartServices(ctx, services)
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("cmdkit shell has been shut down")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
