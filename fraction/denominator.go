package fraction

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Denominator is the finest fraction of an inch result may be expressed in.
type Denominator int

var ErrInvalidDenominator = errors.New("not a valid denominator")

var denominators = []Denominator{2, 4, 8, 16, 32, 64}

// Denominators returns allowed precisions from coarsest to finest.
func Denominators() []Denominator {
	return slices.Clone(denominators)
}

func (d Denominator) IsValid() bool {
	return slices.Contains(denominators, d)
}

// String implements the Stringer interface, precision reads as "1/16".
func (d Denominator) String() string {
	return "1/" + strconv.Itoa(int(d))
}

// ParseDenominator accepts "16", "1/16" and `1/16"`.
func ParseDenominator(in string) (Denominator, error) {
	s := strings.TrimSuffix(strings.TrimSpace(in), InchMark)
	s = strings.TrimPrefix(s, "1/")
	n, err := strconv.Atoi(s)
	if err != nil || !Denominator(n).IsValid() {
		return 0, fmt.Errorf("%q is %w (allowed: %s)", in, ErrInvalidDenominator, DenominatorList())
	}
	return Denominator(n), nil
}

// DenominatorList returns allowed precisions for messages, "1/2, 1/4, ...".
func DenominatorList() string {
	names := make([]string, 0, len(denominators))
	for _, d := range denominators {
		names = append(names, d.String())
	}
	return strings.Join(names, ", ")
}
