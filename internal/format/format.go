// Package format renders numbers in the German display style used throughout the
// application: "." groups thousands and "," separates the fraction ("1.234,56").
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type magnitude struct {
	threshold float64
	suffix    string
}

// Ordered largest first; HumanReadable picks the first one the value reaches.
var magnitudes = []magnitude{
	{1e12, " Bio."},
	{1e9, " Mrd."},
	{1e6, " Mio."},
	{1e3, " Tsd."},
}

// Number renders value with exactly decimals fractional digits.
// Rounding is half away from zero on the shortest decimal representation of value.
func Number(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return Decimal(decimal.NewFromFloat(value), decimals)
}

// Decimal is Number for exact values, e.g. grain counts beyond 2^53.
func Decimal(value decimal.Decimal, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return regroup(value.StringFixed(int32(decimals)))
}

// HumanReadable abbreviates value with a magnitude suffix and one fractional digit.
// Values below one thousand (in absolute terms) fall back to Number(value, 0).
func HumanReadable(value float64) string {
	abs := math.Abs(value)
	for _, m := range magnitudes {
		if abs >= m.threshold {
			return Number(value/m.threshold, 1) + m.suffix
		}
	}
	return Number(value, 0)
}

// HumanReadableDecimal is HumanReadable for exact values.
func HumanReadableDecimal(value decimal.Decimal) string {
	abs := value.Abs()
	for _, m := range magnitudes {
		t := decimal.NewFromFloat(m.threshold)
		if abs.GreaterThanOrEqual(t) {
			return Decimal(value.Div(t), 1) + m.suffix
		}
	}
	return Decimal(value, 0)
}

// Euro renders an amount with two decimals and a trailing euro sign.
func Euro(value float64) string {
	return Number(value, 2) + " €"
}

// Percent renders a percentage value (7 means 7 %).
func Percent(value float64, decimals int) string {
	return Number(value, decimals) + " %"
}

// Factor renders a multiple with one decimal, as used in "3,5× ..." phrases.
func Factor(value float64) string {
	return Number(value, 1)
}

// regroup turns a plain "-1234567.89" into "-1.234.567,89".
func regroup(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot+1:]
	}

	n := len(intPart)
	out := make([]byte, 0, n+n/3+len(fracPart)+2)
	rem := n % 3
	if rem == 0 {
		rem = 3
	}
	out = append(out, intPart[:rem]...)
	for i := rem; i < n; i += 3 {
		out = append(out, '.')
		out = append(out, intPart[i:i+3]...)
	}
	if fracPart != "" {
		out = append(out, ',')
		out = append(out, fracPart...)
	}
	if sign != "" && !isZero(out) {
		return sign + string(out)
	}
	return string(out)
}

func isZero(digits []byte) bool {
	for _, c := range digits {
		if c >= '1' && c <= '9' {
			return false
		}
	}
	return true
}
