package shell

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/sandevgo/cmdkit/pkg/dispatch"
)

// Shell bundles the demo command table with the mutable values the commands
// act on. One handler (cmdVal) serves two table entries, told apart by the
// Arg pointer; the menu command carries the table itself as its Arg.
type Shell struct {
	disp  *dispatch.Dispatcher
	table dispatch.Table
	out   io.Writer

	quit     chan struct{}
	quitOnce sync.Once

	valueA, valueB        float64
	listFirst, listSecond float64
}

func NewShell(out io.Writer, opts ...dispatch.Option) *Shell {
	s := &Shell{
		out:  out,
		quit: make(chan struct{}),
	}
	s.disp = dispatch.New(append([]dispatch.Option{
		dispatch.WithNotifier(newConsoleNotifier(out)),
	}, opts...)...)

	s.table = dispatch.Table{
		{ID: 1, Name: "help", Help: "Get help", Handler: s.cmdHelp},
		{ID: 2, Name: "list", Help: "Show the list values, optionally setting them first", Handler: s.cmdList},
		{ID: 3, Name: "exit", Help: "Quit the shell", Handler: s.cmdExit},
		{ID: 4, Name: "A", Help: "View/set value A", Handler: s.cmdVal, Arg: &s.valueA},
		{ID: 5, Name: "B", Help: "View/set value B", Handler: s.cmdVal, Arg: &s.valueB},
		{ID: 6, Name: "menu", Help: "Print help for the table held in the entry's context", Handler: s.cmdMenu},
		{},
	}
	// menu demonstrates dispatching on a table carried as opaque context.
	s.table[5].Arg = s.table
	return s
}

// Process feeds one input line through the dispatcher.
func (s *Shell) Process(ctx context.Context, line string) {
	s.disp.Process(ctx, s.table, line)
}

// Done is closed once the exit command ran.
func (s *Shell) Done() <-chan struct{} {
	return s.quit
}

func (s *Shell) Table() dispatch.Table {
	return s.table
}

// cmdHelp prints the command listing. A trailing argument has no dedicated
// help pages, so it is called out before the full listing.
func (s *Shell) cmdHelp(ctx context.Context, inv *dispatch.Invocation) {
	if topic, ok := inv.Scanner.Token(); ok {
		fmt.Fprintf(s.out, "no help for %s\n", topic)
	}
	inv.Dispatcher.Help(ctx, s.table)
}

// cmdList keeps two values of its own: each present float argument replaces
// the corresponding value, then both are printed.
func (s *Shell) cmdList(_ context.Context, inv *dispatch.Invocation) {
	if f, ok := inv.Scanner.Float(); ok {
		s.listFirst = f
	}
	if f, ok := inv.Scanner.Float(); ok {
		s.listSecond = f
	}
	fmt.Fprintf(s.out, "%f %f\n", s.listFirst, s.listSecond)
}

func (s *Shell) cmdExit(_ context.Context, _ *dispatch.Invocation) {
	s.quitOnce.Do(func() {
		close(s.quit)
	})
}

// cmdVal serves every value entry: Arg points at the float to show or set.
func (s *Shell) cmdVal(_ context.Context, inv *dispatch.Invocation) {
	vp, ok := inv.Arg.(*float64)
	if !ok {
		fmt.Fprintf(s.out, "%s has no value bound\n", inv.Line)
		return
	}
	if f, present := inv.Scanner.Float(); present {
		*vp = f
	}
	fmt.Fprintf(s.out, "%f\n", *vp)
}

// cmdMenu prints help for whatever table its context holds.
func (s *Shell) cmdMenu(ctx context.Context, inv *dispatch.Invocation) {
	table, ok := inv.Arg.(dispatch.Table)
	if !ok {
		fmt.Fprintln(s.out, "menu has no table bound")
		return
	}
	inv.Dispatcher.Help(ctx, table)
}
