package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangedFields(t *testing.T) {
	req := CompoundParams{Initial: 500_000, Contribution: 150, Years: 80, RatePercent: 7}
	assert.Equal(t, []string{"initial", "years"}, ChangedFields(req, req.Clamp()))
	assert.Empty(t, ChangedFields(req.Clamp(), req.Clamp()))
	assert.Nil(t, ChangedFields(req, ViralParams{}), "different types are not compared")
}

func TestFieldValue(t *testing.T) {
	p := DefaultRevenueParams()

	v, ok := FieldValue(p, "months")
	assert.True(t, ok)
	assert.Equal(t, float64(p.Months), v)

	v, ok = FieldValue(p, "monthly_rate_percent")
	assert.True(t, ok)
	assert.Equal(t, p.MonthlyRatePercent, v)

	_, ok = FieldValue(p, "nope")
	assert.False(t, ok)
	_, ok = FieldValue(42, "months")
	assert.False(t, ok)
}
