package dispatch

import (
	"context"
	"fmt"
	"io"
)

// Notifier receives everything the dispatcher wants shown to the user:
// help lines, blank-input diagnostics and unknown-command reports.
// Injecting one at construction is the customization seam; dispatch logic
// never prints on its own.
type Notifier interface {
	PrintLine(ctx context.Context, msg string)
	UnknownCommand(ctx context.Context, line, cmd string)
}

type writerNotifier struct {
	out io.Writer
}

// NewWriterNotifier returns the default Notifier writing plain lines to out.
func NewWriterNotifier(out io.Writer) Notifier {
	return &writerNotifier{out: out}
}

func (n *writerNotifier) PrintLine(_ context.Context, msg string) {
	fmt.Fprintln(n.out, msg)
}

func (n *writerNotifier) UnknownCommand(_ context.Context, line, cmd string) {
	fmt.Fprintf(n.out, "unknown command %q in: %s\n", cmd, line)
}
