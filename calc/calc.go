// Package calc combines two typed measurements and presents the result both
// as decimal inches and as a fraction at requested precision.
package calc

import (
	"errors"
	"fmt"

	"fic/common"
	"fic/fraction"
	"fic/measure"
)

var (
	ErrInvalidA         = errors.New("could not parse value A")
	ErrInvalidB         = errors.New("could not parse value B")
	ErrInvalidPrecision = errors.New("invalid precision")
	ErrInvalidOperation = errors.New("invalid operation")
)

// CalculationError identifies which of the inputs was rejected. Both Side
// (ErrInvalidA or ErrInvalidB) and the parser error are visible to errors.Is.
type CalculationError struct {
	Side error
	Err  error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("%v: %v", e.Side, e.Err)
}

func (e *CalculationError) Unwrap() []error {
	return []error{e.Side, e.Err}
}

// Result holds the combined value and both of its textual representations.
type Result struct {
	Decimal      float64
	DecimalText  string
	FractionText string
}

// Calculate parses both inputs, applies op and formats the outcome. Nothing
// is returned but the error when any input is rejected.
func Calculate(a, b string, op common.Operation, maxDenominator fraction.Denominator) (Result, error) {
	if !op.IsValid() {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidOperation, op)
	}
	if !maxDenominator.IsValid() {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidPrecision, int(maxDenominator))
	}

	va, err := measure.Parse(a)
	if err != nil {
		return Result{}, &CalculationError{Side: ErrInvalidA, Err: err}
	}
	vb, err := measure.Parse(b)
	if err != nil {
		return Result{}, &CalculationError{Side: ErrInvalidB, Err: err}
	}

	v := op.Apply(va, vb)
	return Result{
		Decimal:      v,
		DecimalText:  fraction.FormatDecimal(v),
		FractionText: fraction.FormatFraction(v, maxDenominator),
	}, nil
}
