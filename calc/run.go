package calc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"fic/common"
	"fic/config"
	"fic/fraction"
	"fic/state"
)

// JournalReportName is the name calculations are stored under in debug
// report.
const JournalReportName = "calculations.txt"

// ErrMissingValue is returned when operation is followed by nothing.
var ErrMissingValue = errors.New("value B is missing")

// Flags are shared by "calc" and "interactive", when absent values come from
// configuration.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "op", Aliases: []string{"o"},
			Usage: "arithmetic `OPERATION` (" + strings.Join(common.OperationNames(), ", ") + " or + - x /)"},
		&cli.StringFlag{Name: "precision", Aliases: []string{"p"},
			Usage: "finest fraction `DENOMINATOR` to round results to (" + fraction.DenominatorList() + ")"},
	}
}

// StopFlagsAfterA ends flag parsing at value A: from there on "-" operator
// and negative values are arguments. Parser drops everything after a lone "-"
// otherwise.
func StopFlagsAfterA() *int {
	n := 1
	return &n
}

// Run is "calc" subcommand: single calculation from command line arguments.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("calc")

	req, err := newRequest(cmd.Args().Slice(), &env.Cfg.Calculator, cmd.String("op"), cmd.String("precision"))
	if err != nil {
		return err
	}

	log.Debug("Calculation requested",
		zap.String("a", req.a), zap.Stringer("operation", req.op), zap.String("b", req.b), zap.Stringer("precision", req.precision))

	res, err := Calculate(req.a, req.b, req.op, req.precision)
	if err != nil {
		return err
	}

	entry := req.entry(res)
	log.Debug("Calculation completed", zap.Stringer("entry", entry))

	var journal Journal
	journal.Add(entry)
	env.StoreCalculations(JournalReportName, &journal)

	printResult(output(cmd), res)
	return nil
}

type request struct {
	a, b      string
	op        common.Operation
	precision fraction.Denominator
}

func (r request) entry(res Result) Entry {
	return Entry{A: r.a, B: r.b, Op: r.op, Precision: r.precision, Result: res}
}

// newRequest accepts "A B" or "A OP B". Operation and precision not given
// explicitly are taken from configuration.
func newRequest(args []string, cfg *config.CalculatorConfig, opFlag, precisionFlag string) (request, error) {
	req := request{op: cfg.Operation, precision: cfg.Precision}

	if len(opFlag) > 0 {
		op, err := common.ParseOperationSymbol(opFlag)
		if err != nil {
			return req, err
		}
		req.op = op
	}

	switch len(args) {
	case 2:
		if _, err := common.ParseOperationSymbol(args[1]); err == nil {
			return req, fmt.Errorf("%w after %q", ErrMissingValue, args[1])
		}
		req.a, req.b = args[0], args[1]
	case 3:
		if len(opFlag) > 0 {
			return req, errors.New("operation specified both as argument and as flag")
		}
		op, err := common.ParseOperationSymbol(args[1])
		if err != nil {
			return req, err
		}
		req.a, req.op, req.b = args[0], op, args[2]
	default:
		return req, fmt.Errorf("expected A [OP] B, got %d argument(s): %s", len(args), strings.Join(args, " "))
	}

	if len(precisionFlag) > 0 {
		d, err := fraction.ParseDenominator(precisionFlag)
		if err != nil {
			return req, err
		}
		req.precision = d
	}
	return req, nil
}

func printResult(w io.Writer, res Result) {
	fmt.Fprintf(w, "Decimal inches: %s\n", res.DecimalText)
	fmt.Fprintf(w, "Fraction: %s\n", res.FractionText)
}

func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
