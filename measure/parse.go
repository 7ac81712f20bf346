// Package measure converts free-form inch measurements typed by people
// ("2.25", "3/16", "1 3/8", "1-3/8", "-1 1/2") into numbers.
package measure

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/text/width"
)

// Parse converts input into inches. Strategies are tried in order and the
// first one recognizing the shape of the input decides the outcome.
func Parse(input string) (float64, error) {
	c, err := newCandidate(input)
	if err != nil {
		return 0, &ParseError{Input: input, Err: err}
	}
	for _, s := range strategies {
		v, err := s.parse(c)
		if errors.Is(err, errNotApplicable) {
			continue
		}
		if err != nil {
			return 0, &ParseError{Input: input, Err: err}
		}
		return v, nil
	}
	return 0, &ParseError{Input: input, Err: ErrUnrecognizedFormat}
}

// candidate is input prepared once for all strategies.
type candidate struct {
	// trimmed input, used for plain decimal attempt
	raw string
	// sign extracted from the front of the input
	negative bool
	// whitespace separated tokens of the unsigned remainder with hyphens and
	// dashes turned into separators
	fields []string
}

func newCandidate(input string) (*candidate, error) {
	s := strings.TrimSpace(width.Fold.String(input))
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}

	c := &candidate{raw: s}

	// sign has to be taken before hyphens become separators, otherwise
	// "-1 1/2" would lose it
	switch {
	case strings.HasPrefix(s, "-"):
		c.negative = true
		s = strings.TrimSpace(s[1:])
	case strings.HasPrefix(s, "+"):
		s = strings.TrimSpace(s[1:])
	}
	s = separators.Replace(s)
	c.fields = strings.Fields(s)
	return c, nil
}

func (c *candidate) signed(v float64) float64 {
	if c.negative {
		return -v
	}
	return v
}

var separators = strings.NewReplacer("-", " ", "–", " ", "—", " ")

// parseDecimal recognizes plain decimal number: optional sign, digits with
// optional fractional part and exponent. A single trailing point ("5.") is
// allowed. Nothing else is, not even surrounding whitespace.
func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSuffix(s, ".")
	l := css.NewLexer(parse.NewInputString(s))
	tt, data := l.Next()
	if tt != css.NumberToken {
		return 0, false
	}
	num := string(data)
	if tt, _ = l.Next(); tt != css.ErrorToken {
		// trailing garbage
		return 0, false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseSimpleFraction handles "3/8", " 3 / 8 " and similar.
func parseSimpleFraction(s string) (float64, error) {
	parts := strings.Split(removeSpaces(s), "/")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) == 0 {
		return 0, ErrUnrecognizedFormat
	}
	num, ok := parseDecimal(parts[0])
	if !ok {
		return 0, ErrUnrecognizedFormat
	}
	den, ok := parseDecimal(parts[1])
	if !ok {
		return 0, ErrUnrecognizedFormat
	}
	if den == 0 {
		return 0, ErrDivisionByZero
	}
	return num / den, nil
}

func removeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
