package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dshills/reckon/internal/engine"
)

// Logger receives REPL diagnostics.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// REPL reads commands line by line and drives the calculator.
type REPL struct {
	calc   *engine.Calculator
	in     *bufio.Scanner
	out    io.Writer
	logger Logger

	mu        sync.Mutex
	precision int
}

// Option configures a REPL during creation.
type Option func(*REPL)

// WithInput sets the command source. Defaults to stdin.
func WithInput(r io.Reader) Option {
	return func(rp *REPL) {
		if r != nil {
			rp.in = bufio.NewScanner(r)
		}
	}
}

// WithOutput sets the output writer. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(rp *REPL) {
		if w != nil {
			rp.out = w
		}
	}
}

// WithPrecision sets the number of decimal places used to display
// results.
func WithPrecision(n int) Option {
	return func(rp *REPL) {
		if n > 0 {
			rp.precision = n
		}
	}
}

// WithLogger sets the diagnostics logger. The REPL works without one.
func WithLogger(l Logger) Option {
	return func(rp *REPL) {
		rp.logger = l
	}
}

// New creates a REPL bound to the given calculator.
func New(calc *engine.Calculator, opts ...Option) *REPL {
	r := &REPL{
		calc:      calc,
		out:       os.Stdout,
		precision: 10,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.in == nil {
		r.in = bufio.NewScanner(os.Stdin)
	}
	return r
}

// SetPrecision changes the display precision. Safe to call while the
// loop is running; a settings reload uses this.
func (r *REPL) SetPrecision(n int) {
	if n <= 0 {
		return
	}
	r.mu.Lock()
	r.precision = n
	r.mu.Unlock()
}

func (r *REPL) getPrecision() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.precision
}

// Run reads commands until exit or end of input. The history is saved
// on the way out.
func (r *REPL) Run() error {
	fmt.Fprintln(r.out, headingStyle.Render("reckon"))
	fmt.Fprintln(r.out, infoStyle.Render("interactive calculator, type help for commands"))

	for {
		fmt.Fprint(r.out, promptStyle.Render("reckon>")+" ")
		line, ok := r.readLine()
		if !ok {
			fmt.Fprintln(r.out)
			r.exit()
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if done := r.dispatch(line); done {
			return nil
		}
	}
}

func (r *REPL) readLine() (string, bool) {
	if !r.in.Scan() {
		return "", false
	}
	return r.in.Text(), true
}

// dispatch runs one command. It returns true when the session should
// end.
func (r *REPL) dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "help":
		r.help()
	case "history":
		r.history()
	case "clear":
		r.calc.ClearHistory()
		r.info("history cleared")
	case "undo":
		if r.calc.Undo() {
			r.info("undone")
		} else {
			r.info("nothing to undo")
		}
	case "redo":
		if r.calc.Redo() {
			r.info("redone")
		} else {
			r.info("nothing to redo")
		}
	case "save":
		if err := r.calc.SaveHistory(); err != nil {
			r.error(err)
		} else {
			r.info("history saved")
		}
	case "load":
		if err := r.calc.LoadHistory(); err != nil {
			r.error(err)
		} else {
			r.info(fmt.Sprintf("history loaded (%d calculations)", r.calc.Len()))
		}
	case "exit", "quit":
		r.exit()
		return true
	default:
		if r.calc.Registry().Has(cmd) {
			r.operate(cmd, fields[1:])
		} else {
			r.error(fmt.Errorf("unknown command %q, type help for commands", cmd))
		}
	}
	return false
}

// operate runs one calculation. Operands come inline or are prompted
// for; "cancel" at a prompt aborts.
func (r *REPL) operate(name string, args []string) {
	var a, b string
	switch len(args) {
	case 2:
		a, b = args[0], args[1]
	case 0:
		var ok bool
		if a, ok = r.promptOperand("operand 1"); !ok {
			r.info("cancelled")
			return
		}
		if b, ok = r.promptOperand("operand 2"); !ok {
			r.info("cancelled")
			return
		}
	default:
		r.error(fmt.Errorf("usage: %s, or %s <operand1> <operand2>", name, name))
		return
	}

	if err := r.calc.SetOperation(name); err != nil {
		r.error(err)
		return
	}
	rec, err := r.calc.PerformOperation(a, b)
	if err != nil {
		r.error(err)
		if r.logger != nil {
			r.logger.Warn("operation failed", "operation", name, "error", err.Error())
		}
		return
	}
	fmt.Fprintln(r.out, resultStyle.Render("= "+rec.FormatResult(r.getPrecision())))
}

func (r *REPL) promptOperand(label string) (string, bool) {
	fmt.Fprint(r.out, promptStyle.Render(label+">")+" ")
	line, ok := r.readLine()
	if !ok {
		return "", false
	}
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "cancel") {
		return "", false
	}
	return line, true
}

func (r *REPL) history() {
	lines := r.calc.ShowHistory()
	if len(lines) == 0 {
		r.info("history is empty")
		return
	}
	for _, line := range lines {
		fmt.Fprintln(r.out, line)
	}
}

func (r *REPL) help() {
	fmt.Fprintln(r.out, headingStyle.Render("Commands"))
	commands := []struct{ name, desc string }{
		{"help", "show this help"},
		{"history", "show the calculation history"},
		{"clear", "clear the history"},
		{"undo", "undo the last change"},
		{"redo", "redo the last undone change"},
		{"save", "save the history"},
		{"load", "load the saved history"},
		{"exit", "save and quit"},
	}
	for _, c := range commands {
		fmt.Fprintf(r.out, "  %-14s %s\n", c.name, c.desc)
	}

	fmt.Fprintln(r.out, headingStyle.Render("Operations"))
	reg := r.calc.Registry()
	for _, name := range reg.List() {
		desc := ""
		if op, err := reg.Create(name); err == nil {
			desc = op.Description()
		}
		fmt.Fprintf(r.out, "  %-14s %s\n", name, desc)
	}
}

// exit saves the history and says goodbye. A save failure is a
// warning, not a reason to stay.
func (r *REPL) exit() {
	if err := r.calc.SaveHistory(); err != nil {
		r.error(fmt.Errorf("saving history: %w", err))
		if r.logger != nil {
			r.logger.Warn("save on exit failed", "error", err.Error())
		}
	}
	fmt.Fprintln(r.out, infoStyle.Render("goodbye"))
}

func (r *REPL) info(msg string) {
	fmt.Fprintln(r.out, infoStyle.Render(msg))
}

func (r *REPL) error(err error) {
	fmt.Fprintln(r.out, errorStyle.Render("error: "+err.Error()))
}
