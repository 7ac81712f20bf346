// Package fraction renders inch values the way they are read off a tape
// measure: whole inches plus a reduced fraction with power of two
// denominator.
package fraction

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	// Invalid is displayed in place of values which cannot be represented.
	Invalid = "Invalid"
	// InchMark follows every non-zero fractional result.
	InchMark = `"`
)

// FormatFraction snaps value to the nearest multiple of 1/maxDenominator and
// renders it as reduced mixed number, e.g. `3 5/8"`. Exact zero is rendered
// as bare "0" without inch mark.
func FormatFraction(value float64, maxDenominator Denominator) string {
	if math.IsInf(value, 0) || math.IsNaN(value) || maxDenominator <= 0 {
		return Invalid
	}
	if value == 0 {
		return "0"
	}

	var sign string
	if value < 0 {
		sign = "-"
	}
	magnitude := math.Abs(value)
	whole := math.Floor(magnitude)
	den := int(maxDenominator)
	// fractional part is never negative, so this rounds half up
	num := int(math.Round((magnitude - whole) * float64(den)))

	switch num {
	case 0:
		if whole == 0 {
			// NOTE: tiny negative values keep their sign here: "-0"
			return sign + "0"
		}
		return sign + formatWhole(whole) + InchMark
	case den:
		// rounding carried into the next whole inch
		return sign + formatWhole(whole+1) + InchMark
	}

	g := GCD(num, den)
	num, den = num/g, den/g

	var b strings.Builder
	b.WriteString(sign)
	if whole != 0 {
		b.WriteString(formatWhole(whole))
		b.WriteByte(' ')
	}
	b.WriteString(strconv.Itoa(num))
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(den))
	b.WriteString(InchMark)
	return b.String()
}

// FormatDecimal renders value with at most 6 fractional digits, dropping
// trailing zeros and decimal point.
func FormatDecimal(value float64) string {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return Invalid
	}
	s := humanize.Ftoa(value)
	if s == "-0" {
		// value was too small to survive rounding
		return "0"
	}
	return s
}

// GCD is Euclid's algorithm, GCD(x, 0) == x.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func formatWhole(w float64) string {
	return strconv.FormatFloat(w, 'f', 0, 64)
}
