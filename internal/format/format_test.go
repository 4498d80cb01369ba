package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	cases := []struct {
		value    float64
		decimals int
		want     string
	}{
		{1234.5, 1, "1.234,5"},
		{0, 0, "0"},
		{-5.2, 1, "-5,2"},
		{999, 0, "999"},
		{1000, 0, "1.000"},
		{1234567.891, 2, "1.234.567,89"},
		{-1234567, 0, "-1.234.567"},
		{0.5, 2, "0,50"},
		{12, -3, "12"},
		{-0.04, 1, "0,0"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Number(tc.value, tc.decimals), "Number(%v, %d)", tc.value, tc.decimals)
	}
}

func TestNumberRoundsHalfAwayFromZero(t *testing.T) {
	// Ties are decided on the shortest decimal form of the float, not its binary value.
	assert.Equal(t, "2,3", Number(2.25, 1))
	assert.Equal(t, "-2,3", Number(-2.25, 1))
	assert.Equal(t, "2,5", Number(2.45, 1))
	assert.Equal(t, "1", Number(0.5, 0))
	assert.Equal(t, "3", Number(2.5, 0))
}

func TestDecimalExactBeyondFloatPrecision(t *testing.T) {
	// 2^64 - 1 is not representable as float64.
	v := decimal.RequireFromString("18446744073709551615")
	assert.Equal(t, "18.446.744.073.709.551.615", Decimal(v, 0))
}

func TestHumanReadable(t *testing.T) {
	assert.Equal(t, "999", HumanReadable(999))
	assert.Equal(t, "1,0 Tsd.", HumanReadable(1000))
	assert.Equal(t, "2,5 Mio.", HumanReadable(2_500_000))
	assert.Equal(t, "7,3 Mrd.", HumanReadable(7_300_000_000))
	assert.Equal(t, "1,0 Bio.", HumanReadable(1e12))
	assert.Equal(t, "-4,2 Tsd.", HumanReadable(-4200))
	assert.Equal(t, "0", HumanReadable(0))
}

func TestHumanReadableDecimal(t *testing.T) {
	v := decimal.RequireFromString("18446744073709551615")
	assert.Equal(t, "18.446.744,1 Bio.", HumanReadableDecimal(v))
	assert.Equal(t, "512", HumanReadableDecimal(decimal.NewFromInt(512)))
}

func TestUnitHelpers(t *testing.T) {
	assert.Equal(t, "1.000,00 €", Euro(1000))
	assert.Equal(t, "7,5 %", Percent(7.5, 1))
	assert.Equal(t, "3,5", Factor(3.49))
}

func TestNumberNonFinite(t *testing.T) {
	assert.NotPanics(t, func() { Number(1/zero(), 0) })
}

func zero() float64 { return 0 }
