// Package common holds enums shared between configuration and calculator
// code so neither has to import the other.
package common

import (
	"fmt"
	"strings"
)

// Arithmetic operation applied to two measurements.
// ENUM(add, subtract, multiply, divide)
type Operation int

// Apply combines two measurements. Division by zero is not an error here:
// it produces a non-finite value which formatters render as invalid.
func (o Operation) Apply(a, b float64) float64 {
	switch o {
	case OperationAdd:
		return a + b
	case OperationSubtract:
		return a - b
	case OperationMultiply:
		return a * b
	case OperationDivide:
		return a / b
	default:
		// this should never happen
		panic("unsupported operation requested")
	}
}

// Symbol returns operator as it is shown to the user.
func (o Operation) Symbol() string {
	switch o {
	case OperationAdd:
		return "+"
	case OperationSubtract:
		return "-"
	case OperationMultiply:
		return "x"
	case OperationDivide:
		return "/"
	default:
		return "?"
	}
}

// ParseOperationSymbol accepts either operation name (see OperationNames) or
// one of the operator symbols people normally type.
func ParseOperationSymbol(in string) (Operation, error) {
	s := strings.TrimSpace(in)
	switch s {
	case "+":
		return OperationAdd, nil
	case "-", "−", "–":
		return OperationSubtract, nil
	case "x", "X", "*", "×":
		return OperationMultiply, nil
	case "/", "÷":
		return OperationDivide, nil
	}
	op, err := ParseOperation(s)
	if err != nil {
		return op, fmt.Errorf("unknown operation %q: %w", in, ErrInvalidOperation)
	}
	return op, nil
}
