package dispatch

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sandevgo/cmdkit/pkg/log"
	"github.com/sandevgo/cmdkit/pkg/scan"
)

// Handler is invoked for a matched command. The Invocation carries the
// scanner positioned just past the command word, so the handler pulls its
// own arguments from the same line.
type Handler func(ctx context.Context, inv *Invocation)

// Invocation is everything a handler gets for one dispatched line.
type Invocation struct {
	// ID and Arg come straight from the matched table entry. Neither is
	// interpreted by dispatch; Arg lets one handler serve several entries.
	ID  int
	Arg any

	// Line is the full original input. Rest is the part after the command
	// word, leading separators included.
	Line string
	Rest string

	// Scanner continues where the command word ended.
	Scanner *scan.Scanner

	// Dispatcher allows re-entry, e.g. a handler dispatching into a nested
	// table held in Arg.
	Dispatcher *Dispatcher
}

// Command is one row of a dispatch table.
type Command struct {
	ID      int
	Name    string
	Help    string
	Handler Handler
	Arg     any
}

// Table is an ordered command list. An entry with an empty Name is a
// sentinel: scanning stops there and never reads past it. Tables without a
// sentinel simply end at the slice boundary.
type Table []Command

type Dispatcher struct {
	notifier Notifier
	seps     string
}

type Option func(*Dispatcher)

// WithNotifier injects the error/help presentation sink.
func WithNotifier(n Notifier) Option {
	return func(d *Dispatcher) {
		d.notifier = n
	}
}

// WithSeparators overrides the token delimiter set for every Process call.
// An empty set keeps the default.
func WithSeparators(seps string) Option {
	return func(d *Dispatcher) {
		if seps != "" {
			d.seps = seps
		}
	}
}

// WithOutput is shorthand for WithNotifier over a plain writer.
func WithOutput(out io.Writer) Option {
	return func(d *Dispatcher) {
		d.notifier = NewWriterNotifier(out)
	}
}

func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		seps: scan.DefaultSeparators,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.notifier == nil {
		d.notifier = NewWriterNotifier(os.Stdout)
	}
	return d
}

// Process extracts the first token of line, looks it up in table and invokes
// the matching handler. A blank line is reported through the notifier's
// PrintLine; an unmatched command through UnknownCommand. Exactly one of
// handler, PrintLine or UnknownCommand runs per call. The dispatcher itself
// holds no per-line state, so one Dispatcher may serve many tables.
func (d *Dispatcher) Process(ctx context.Context, table Table, line string) {
	sc := scan.New(line, scan.WithSeparators(d.seps))

	word, ok := sc.Token()
	if !ok {
		log.FromCtx(ctx).Debug().Str("line", line).Msg("blank input")
		d.notifier.PrintLine(ctx, "unknown error:")
		d.notifier.PrintLine(ctx, line)
		return
	}

	for i := 0; i < len(table) && table[i].Name != ""; i++ {
		if table[i].Name != word {
			continue
		}
		log.FromCtx(ctx).Debug().Str("command", word).Int("id", table[i].ID).Msg("dispatching")
		inv := &Invocation{
			ID:         table[i].ID,
			Arg:        table[i].Arg,
			Line:       line,
			Rest:       sc.Rest(),
			Scanner:    sc,
			Dispatcher: d,
		}
		table[i].Handler(ctx, inv)
		return
	}

	log.FromCtx(ctx).Debug().Str("command", word).Msg("command not found")
	d.notifier.UnknownCommand(ctx, line, word)
}

// Help prints every entry's name and help text through the notifier, in
// table order, stopping at the sentinel. Parser state is untouched.
func (d *Dispatcher) Help(ctx context.Context, table Table) {
	for i := 0; i < len(table) && table[i].Name != ""; i++ {
		d.notifier.PrintLine(ctx, fmt.Sprintf("%-12s %s", table[i].Name, table[i].Help))
	}
}
