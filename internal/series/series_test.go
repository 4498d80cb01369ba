package series

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoublingClosedFormForEveryField(t *testing.T) {
	for n := 1; n <= 64; n++ {
		s := Doubling(n)
		require.Len(t, s.PerStep, n)

		want := new(big.Int).Lsh(big.NewInt(1), uint(n))
		want.Sub(want, big.NewInt(1))
		assert.True(t, s.CumulativeTotal.Equal(decimal.NewFromBigInt(want, 0)), "total for n=%d", n)

		last := new(big.Int).Lsh(big.NewInt(1), uint(n-1))
		assert.True(t, s.PerStep[n-1].Equal(decimal.NewFromBigInt(last, 0)), "last step for n=%d", n)
	}
}

func TestDoublingRunningSumMatchesClosedForm(t *testing.T) {
	s := Doubling(64)
	sum := decimal.Zero
	for _, v := range s.PerStep {
		sum = sum.Add(v)
	}
	assert.True(t, sum.Equal(s.CumulativeTotal))
}

func TestDoublingExactAboveFloatPrecision(t *testing.T) {
	// Fields 53..64 are where float64 would start rounding.
	s := Doubling(64)
	assert.Equal(t, "9223372036854775808", s.Last().String())
	assert.Equal(t, "18446744073709551615", s.CumulativeTotal.String())
	assert.Equal(t, "9007199254740992", s.PerStep[53].String())
	assert.Equal(t, float64(1<<62), s.Float64()[62])
}

func TestCompoundingCapitalDoublesAtHundredPercent(t *testing.T) {
	s := CompoundingCapital(1000, 0, 1, 100)
	require.Len(t, s.Capital, 2)
	assert.Equal(t, 1000.0, s.Capital[0])
	assert.Equal(t, 2000.0, s.Capital[1])
	assert.Equal(t, 1000.0, s.Contributed[1])
	assert.Equal(t, 2000.0, s.Linear[1])
}

func TestCompoundingCapitalWithContributions(t *testing.T) {
	s := CompoundingCapital(1000, 100, 2, 10)
	require.Len(t, s.Capital, 3)
	assert.InDelta(t, (1000.0+1200)*1.1, s.Capital[1], 1e-9)
	assert.InDelta(t, ((1000.0+1200)*1.1+1200)*1.1, s.Capital[2], 1e-9)
	assert.Equal(t, []float64{1000, 2200, 3400}, s.Contributed)
	assert.InDelta(t, 3400+1000*0.1*2, s.Linear[2], 1e-9)
}

func TestViralSeries(t *testing.T) {
	s := Viral(1, 2, 3)
	assert.Equal(t, []float64{1, 2, 4}, s.NewPerRound)
	assert.Equal(t, []float64{1, 3, 7}, s.Cumulative)
	assert.False(t, s.NonExponential)
}

func TestViralFlagsNonExponentialRegime(t *testing.T) {
	assert.True(t, Viral(10, 1, 5).NonExponential)
	s := Viral(10, 0.5, 3)
	assert.True(t, s.NonExponential)
	assert.Equal(t, []float64{10, 5, 2.5}, s.NewPerRound)
}

func TestRevenueZeroGrowthIsConstant(t *testing.T) {
	s := Revenue(100, 0, 5, 0)
	require.Len(t, s.Exponential, 6)
	for _, v := range s.Exponential {
		assert.Equal(t, 100.0, v)
	}
}

func TestRevenueCompoundsAndLinearTarget(t *testing.T) {
	s := Revenue(100, 10, 2, 50)
	assert.InDelta(t, 121.0, s.Exponential[2], 1e-9)
	assert.Equal(t, []float64{100, 150, 200}, s.LinearTarget)
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	assert.Equal(t, CompoundingCapital(1234, 150, 30, 7), CompoundingCapital(1234, 150, 30, 7))
	assert.Equal(t, Viral(3, 1.7, 40), Viral(3, 1.7, 40))
	assert.Equal(t, Revenue(5000, 12.5, 36, 900), Revenue(5000, 12.5, 36, 900))
	a, b := Doubling(64), Doubling(64)
	for i := range a.PerStep {
		assert.True(t, a.PerStep[i].Equal(b.PerStep[i]))
	}
}
