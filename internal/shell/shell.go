package shell

import (
	"context"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/sandevgo/cmdkit/internal/config"
	"github.com/sandevgo/cmdkit/internal/ui"
	"github.com/sandevgo/cmdkit/pkg/dispatch"
	"github.com/sandevgo/cmdkit/pkg/log"
)

// ReadLine is the interactive front end: it reads lines and hands every one,
// blank ones included, to the dispatcher. Implements srv.Service.
type ReadLine struct {
	cfg  *config.AppConfig
	sh   *Shell
	rl   *readline.Instance
	stop context.CancelFunc
}

// NewReadLine builds the readline instance and the demo shell behind it.
// stop, when non-nil, is called as soon as the loop finishes so the rest of
// the process can shut down instead of waiting for a signal.
func NewReadLine(cfg *config.AppConfig, stop context.CancelFunc) (*ReadLine, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init readline: %w", err)
	}

	return &ReadLine{
		cfg:  cfg,
		sh:   NewShell(rl.Stdout(), dispatch.WithSeparators(cfg.Separators)),
		rl:   rl,
		stop: stop,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("command shell started, type 'help' for commands")
	if r.stop != nil {
		defer r.stop()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.sh.Done():
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		r.sh.Process(ctx, line)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// consoleNotifier styles dispatcher diagnostics for the terminal. Help and
// echo lines stay plain; only error reports get color.
type consoleNotifier struct {
	out io.Writer
}

func newConsoleNotifier(out io.Writer) dispatch.Notifier {
	return &consoleNotifier{out: out}
}

func (n *consoleNotifier) PrintLine(_ context.Context, msg string) {
	fmt.Fprintln(n.out, msg)
}

func (n *consoleNotifier) UnknownCommand(_ context.Context, line, cmd string) {
	fmt.Fprintln(n.out, ui.ErrorStyle.Render(fmt.Sprintf("unknown command %q in: %s", cmd, line)))
}
