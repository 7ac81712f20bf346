package calc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"github.com/peterh/liner"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"fic/common"
	"fic/config"
	"fic/fraction"
	"fic/state"
)

var commands = []string{"a", "b", "op", "precision", "calc", "show", "clear", "reset", "log", "help", "exit", "quit"}

// lineReader is satisfied by *liner.State.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Interactive is "interactive" subcommand: a form-like session where values
// are entered one by one and calculation is repeated on request. Command
// history is never saved.
func Interactive(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("interactive")

	s, err := newSession(&env.Cfg.Interactive, &env.Cfg.Calculator, output(cmd), log)
	if err != nil {
		return err
	}
	if err := s.applyFlags(cmd.String("op"), cmd.String("precision")); err != nil {
		return err
	}

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(complete)

	log.Debug("Session started", zap.String("a", s.a), zap.String("b", s.b), zap.Stringer("operation", s.op), zap.Stringer("precision", s.precision))
	defer func() {
		log.Debug("Session ended", zap.Int("calculations", s.journal.Len()))
		env.StoreCalculations(JournalReportName, &s.journal)
	}()

	fmt.Fprintln(s.out, "Type 'help' for the list of commands, 'exit' or Ctrl+D to quit")
	s.show()
	return s.loop(ctx, line, env.Cfg.Interactive.Prompt)
}

type session struct {
	a, b      string
	op        common.Operation
	precision fraction.Denominator
	journal   Journal

	out io.Writer
	log *zap.Logger
}

func newSession(icfg *config.InteractiveConfig, ccfg *config.CalculatorConfig, out io.Writer, log *zap.Logger) (*session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if !ccfg.Operation.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOperation, ccfg.Operation)
	}
	if !ccfg.Precision.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrecision, int(ccfg.Precision))
	}
	return &session{
		a:         icfg.ValueA,
		b:         icfg.ValueB,
		op:        ccfg.Operation,
		precision: ccfg.Precision,
		out:       out,
		log:       log,
	}, nil
}

func (s *session) applyFlags(opFlag, precisionFlag string) error {
	if len(opFlag) > 0 {
		op, err := common.ParseOperationSymbol(opFlag)
		if err != nil {
			return err
		}
		s.op = op
	}
	if len(precisionFlag) > 0 {
		d, err := fraction.ParseDenominator(precisionFlag)
		if err != nil {
			return err
		}
		s.precision = d
	}
	return nil
}

func (s *session) loop(ctx context.Context, lr lineReader, prompt string) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		input, err := lr.Prompt(prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			// Ctrl+C - drop current line
			fmt.Fprintln(s.out, "^C")
			continue
		case errors.Is(err, io.EOF):
			// Ctrl+D
			fmt.Fprintln(s.out)
			return nil
		case err != nil:
			return fmt.Errorf("unable to read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if len(input) == 0 {
			continue
		}
		lr.AppendHistory(input)

		if !s.exec(input) {
			return nil
		}
	}
}

// exec runs a single command and reports if session should go on.
func (s *session) exec(input string) bool {
	name, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "exit", "quit":
		return false
	case "help", "?":
		s.help()
	case "a":
		if len(arg) > 0 {
			s.a = arg
		}
		fmt.Fprintf(s.out, "Value A: %s\n", s.a)
	case "b":
		if len(arg) > 0 {
			s.b = arg
		}
		fmt.Fprintf(s.out, "Value B: %s\n", s.b)
	case "op":
		if len(arg) > 0 {
			op, err := common.ParseOperationSymbol(arg)
			if err != nil {
				fmt.Fprintf(s.out, "Error: %v\n", err)
				return true
			}
			s.op = op
		}
		fmt.Fprintf(s.out, "Operation: %s (%s)\n", s.op.Symbol(), s.op)
	case "precision", "p":
		if len(arg) > 0 {
			d, err := fraction.ParseDenominator(arg)
			if err != nil {
				fmt.Fprintf(s.out, "Error: %v\n", err)
				return true
			}
			s.precision = d
		}
		fmt.Fprintf(s.out, "Precision: %s\n", s.precision)
	case "calc", "=":
		s.calculate()
	case "show":
		s.show()
	case "clear":
		s.a, s.b = "", ""
		fmt.Fprintln(s.out, "Values cleared.")
	case "reset":
		s.a, s.b = "", ""
		s.journal.Reset()
		fmt.Fprintln(s.out, "Values and calculation log cleared.")
	case "log":
		if s.journal.Len() == 0 {
			fmt.Fprintln(s.out, "No calculations yet.")
			break
		}
		_, _ = s.journal.WriteTo(s.out)
	default:
		fmt.Fprintf(s.out, "Unknown command %q, type 'help' for the list of commands\n", name)
	}
	return true
}

func (s *session) calculate() {
	res, err := Calculate(s.a, s.b, s.op, s.precision)
	if err != nil {
		s.log.Debug("Calculation failed", zap.Error(err))
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	entry := Entry{A: s.a, B: s.b, Op: s.op, Precision: s.precision, Result: res}
	s.journal.Add(entry)
	s.log.Debug("Calculation completed", zap.Stringer("entry", entry))
	printResult(s.out, res)
}

func (s *session) show() {
	fmt.Fprintf(s.out, "%s %s %s at %s\n", s.a, s.op.Symbol(), s.b, s.precision)
}

func (s *session) help() {
	fmt.Fprint(s.out, `Commands:
    a [VALUE]          set or show value A (e.g. 1 3/8, 3/16, 2.25)
    b [VALUE]          set or show value B
    op [OP]            set or show operation: add (+), subtract (-), multiply (x), divide (/)
    precision [1/N]    set or show fraction precision: `+fraction.DenominatorList()+`
    calc, =            calculate
    show               show current values
    clear              empty values A and B
    reset              empty values and calculation log
    log                show calculations made in this session
    help               this text
    exit, quit         end session
`)
}

// complete offers command names and, after "op" and "precision", their
// possible values.
func complete(line string) []string {
	var candidates []string
	prefix := ""

	name, arg, found := strings.Cut(line, " ")
	switch {
	case !found:
		candidates = commands
	case name == "op":
		prefix, candidates = name+" ", common.OperationNames()
	case name == "precision":
		prefix = name + " "
		for _, d := range fraction.Denominators() {
			candidates = append(candidates, d.String())
		}
	default:
		return nil
	}

	word := strings.ToLower(strings.TrimLeft(arg, " "))
	if !found {
		word = strings.ToLower(line)
	}

	var res []string
	for _, c := range candidates {
		if strings.HasPrefix(c, word) {
			res = append(res, prefix+c)
		}
	}
	sort.Sort(natural.StringSlice(res))
	return res
}
