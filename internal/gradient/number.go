// Package gradient describes vertical linear gradients as ordered color stops
// and renders them as CSS linear-gradient arguments.
package gradient

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a stop position or color channel that may be invalid.
// Invalid numbers render as "NaN".
type Number struct {
	v      float64
	valid  bool
	digits int // significant digits, 0 for the shortest form
}

// NaN is the invalid Number.
var NaN = Number{}

// Float returns a Number rendered in its shortest round-trip form.
func Float(v float64) Number {
	return Number{v: v, valid: !math.IsNaN(v)}
}

// Precision returns a Number rendered with the given significant digits.
func Precision(v float64, digits int) Number {
	n := Float(v)
	n.digits = digits
	return n
}

// Maybe returns Float(v) when ok, NaN otherwise.
func Maybe(v float64, ok bool) Number {
	if !ok {
		return NaN
	}
	return Float(v)
}

// Value returns the number and whether it is valid.
func (n Number) Value() (float64, bool) {
	return n.v, n.valid
}

func (n Number) String() string {
	if !n.valid {
		return "NaN"
	}
	if n.digits > 0 {
		return FormatPrecision(n.v, n.digits)
	}
	return FormatShortest(n.v)
}

// FormatShortest renders v with the fewest digits that read back as v.
// Exponent notation is used outside [1e-6, 1e21), with an unpadded exponent.
func FormatShortest(v float64) string {
	if s, ok := formatSpecial(v); ok {
		return s
	}
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(v, 'e', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPrecision renders v rounded to digits significant digits.
// Rounding is done on the exact binary value and ties go away from zero, so
// 3.125 becomes "3.13". Exponent notation is used when the decimal exponent is
// below -6 or at least digits.
func FormatPrecision(v float64, digits int) string {
	if s, ok := formatSpecial(v); ok {
		return s
	}
	if digits < 1 {
		digits = 1
	}
	if v == 0 {
		if digits == 1 {
			return "0"
		}
		return "0." + strings.Repeat("0", digits-1)
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	// 40 digits is well past float64 resolution, so the text is exact enough to
	// decide any tie at the requested precision.
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'e', 40, 64))
	if err != nil {
		return sign + strconv.FormatFloat(v, 'g', digits, 64)
	}

	e := decimalExponent(d)
	r := d.Round(int32(digits - 1 - e))
	if re := decimalExponent(r); re != e {
		e = re
		r = d.Round(int32(digits - 1 - e))
	}

	if e < -6 || e >= digits {
		mantissa := r.Shift(int32(-e)).StringFixed(int32(digits - 1))
		expSign := "+"
		if e < 0 {
			expSign = "-"
			e = -e
		}
		return sign + mantissa + "e" + expSign + strconv.Itoa(e)
	}
	return sign + r.StringFixed(int32(digits-1-e))
}

// decimalExponent returns floor(log10(d)) for a positive d.
func decimalExponent(d decimal.Decimal) int {
	coefficient := strings.TrimLeft(d.Coefficient().String(), "-")
	return len(coefficient) + int(d.Exponent()) - 1
}

func formatSpecial(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}

// trimExponent turns "1.5e-07" into "1.5e-7".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	exp := strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return s[:i+2] + exp
}
