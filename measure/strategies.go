package measure

import (
	"fmt"
	"strings"
)

type strategy struct {
	name string
	// returns errNotApplicable when input is not of the expected shape
	parse func(c *candidate) (float64, error)
}

// Order matters: plain decimals are never treated as fractions, and the
// collapsed form accepts whatever is left.
var strategies = []strategy{
	{name: "decimal", parse: parsePlainDecimal},
	{name: "mixed", parse: parseMixedNumber},
	{name: "fraction", parse: parseSingleFraction},
	{name: "collapsed", parse: parseCollapsedFraction},
}

// "2.25", "-3", "1,250.5"
func parsePlainDecimal(c *candidate) (float64, error) {
	if v, ok := parseDecimal(strings.ReplaceAll(c.raw, ",", "")); ok {
		return v, nil
	}
	return 0, errNotApplicable
}

// "1 3/8", "1-3/8", "1.5 3/8"
func parseMixedNumber(c *candidate) (float64, error) {
	if len(c.fields) != 2 || !strings.Contains(c.fields[1], "/") {
		return 0, errNotApplicable
	}
	whole, ok := parseDecimal(c.fields[0])
	if !ok {
		return 0, fmt.Errorf("%w: whole part %q", ErrInvalidMixedNumber, c.fields[0])
	}
	frac, err := parseSimpleFraction(c.fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMixedNumber, err)
	}
	return c.signed(whole + frac), nil
}

// "3/16"
func parseSingleFraction(c *candidate) (float64, error) {
	if len(c.fields) != 1 || !strings.Contains(c.fields[0], "/") {
		return 0, errNotApplicable
	}
	frac, err := parseSimpleFraction(c.fields[0])
	if err != nil {
		return 0, err
	}
	return c.signed(frac), nil
}

// "3 / 16", anything else is rejected
func parseCollapsedFraction(c *candidate) (float64, error) {
	joined := strings.Join(c.fields, "")
	if !strings.Contains(joined, "/") {
		return 0, ErrUnrecognizedFormat
	}
	frac, err := parseSimpleFraction(joined)
	if err != nil {
		return 0, err
	}
	return c.signed(frac), nil
}
