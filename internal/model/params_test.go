package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeClamp(t *testing.T) {
	r := Range{1, 64}
	assert.Equal(t, 1.0, r.Clamp(-3))
	assert.Equal(t, 64.0, r.Clamp(99))
	assert.Equal(t, 12.5, r.Clamp(12.5))
	assert.Equal(t, 1.0, r.Clamp(math.NaN()))
	assert.Equal(t, 64, r.ClampInt(65))
}

func TestDefaultsAreValid(t *testing.T) {
	assert.NoError(t, DefaultChessboardParams().Validate())
	assert.NoError(t, DefaultCompoundParams().Validate())
	assert.NoError(t, DefaultViralParams().Validate())
	assert.NoError(t, DefaultRevenueParams().Validate())
}

func TestValidateReportsEveryOffendingField(t *testing.T) {
	err := CompoundParams{Initial: -1, Contribution: 5000, Years: 10, RatePercent: 7}.Validate()
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "initial")
	assert.Contains(t, err.Error(), "contribution")
	assert.NotContains(t, err.Error(), "years")
}

func TestClampProducesValidParams(t *testing.T) {
	assert.NoError(t, ChessboardParams{Field: 0}.Clamp().Validate())
	assert.NoError(t, CompoundParams{Initial: 1e9, Contribution: -5, Years: 0, RatePercent: 99}.Clamp().Validate())
	assert.NoError(t, ViralParams{Starters: 0, Factor: 0, Rounds: 500}.Clamp().Validate())
	assert.NoError(t, RevenueParams{Start: 0, MonthlyRatePercent: 200, Months: 0, Headcount: -2}.Clamp().Validate())
}

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario(" Viral ")
	require.NoError(t, err)
	assert.Equal(t, ScenarioViral, s)

	_, err = ParseScenario("lottery")
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestParametersDefaultsWithinRange(t *testing.T) {
	for _, s := range Scenarios {
		params := s.Parameters()
		require.NotEmpty(t, params, string(s))
		for _, p := range params {
			assert.True(t, p.Range.Contains(p.Default), "%s.%s", s, p.Name)
		}
	}
}
