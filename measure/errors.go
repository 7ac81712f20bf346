package measure

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput         = errors.New("empty input")
	ErrUnrecognizedFormat = errors.New("unrecognized format")
	ErrInvalidMixedNumber = errors.New("invalid mixed number")
	ErrDivisionByZero     = errors.New("division by zero")

	// returned by strategies which do not recognize the shape of the input,
	// never leaves the package
	errNotApplicable = errors.New("not applicable")
)

// ParseError carries the original input along with the reason it was
// rejected. Use errors.Is with the Err* values to check the reason.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
