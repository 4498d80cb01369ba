// Package series generates the numeric sequences behind each growth scenario.
// Every generator is a pure function of its arguments and assumes the arguments are
// already within the ranges documented in package model.
package series

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// DoublingSeries is the chessboard sequence: one grain on field 1, doubling per field.
// Values are exact; field 64 holds 2^63 and the total reaches 2^64-1.
type DoublingSeries struct {
	PerStep         []decimal.Decimal
	CumulativeTotal decimal.Decimal
}

// Doubling builds PerStep[i-1] = 2^(i-1) for fields 1..n and the closed-form total 2^n-1.
func Doubling(fields int) DoublingSeries {
	if fields < 0 {
		fields = 0
	}
	perStep := make([]decimal.Decimal, fields)
	for i := 0; i < fields; i++ {
		perStep[i] = pow2(uint(i))
	}
	total := new(big.Int).Lsh(big.NewInt(1), uint(fields))
	total.Sub(total, big.NewInt(1))
	return DoublingSeries{
		PerStep:         perStep,
		CumulativeTotal: decimal.NewFromBigInt(total, 0),
	}
}

// Last returns the value on the final field, or zero for an empty series.
func (s DoublingSeries) Last() decimal.Decimal {
	if len(s.PerStep) == 0 {
		return decimal.Zero
	}
	return s.PerStep[len(s.PerStep)-1]
}

// Float64 returns PerStep rounded to float64 for charting.
func (s DoublingSeries) Float64() []float64 {
	out := make([]float64, len(s.PerStep))
	for i, v := range s.PerStep {
		out[i] = v.InexactFloat64()
	}
	return out
}

func pow2(exp uint) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), exp), 0)
}

// CapitalSeries is a savings plan over periods+1 samples (period 0 is the start).
type CapitalSeries struct {
	Capital     []float64 // compounded balance
	Contributed []float64 // pure inflows, no growth
	Linear      []float64 // inflows plus simple interest on the initial capital
}

// CompoundingCapital applies a yearly contribution of 12 monthly payments and then
// the period rate: Capital[t] = (Capital[t-1] + contribution*12) * (1 + rate/100).
func CompoundingCapital(initial, contribution float64, periods int, ratePercent float64) CapitalSeries {
	if periods < 0 {
		periods = 0
	}
	rate := ratePercent / 100
	yearly := contribution * 12

	s := CapitalSeries{
		Capital:     make([]float64, periods+1),
		Contributed: make([]float64, periods+1),
		Linear:      make([]float64, periods+1),
	}
	s.Capital[0] = initial
	s.Contributed[0] = initial
	s.Linear[0] = initial
	for t := 1; t <= periods; t++ {
		s.Capital[t] = (s.Capital[t-1] + yearly) * (1 + rate)
		s.Contributed[t] = initial + yearly*float64(t)
		s.Linear[t] = s.Contributed[t] + initial*rate*float64(t)
	}
	return s
}

// ViralSeries is the spread of an idea over rounds 1..n.
type ViralSeries struct {
	NewPerRound []float64
	Cumulative  []float64
	// NonExponential is set when each person reaches at most one other person,
	// so the spread stagnates or dies out instead of exploding.
	NonExponential bool
}

// Viral computes new(i) = starter * factor^i for i in 0..rounds-1 and running totals.
func Viral(starter, factor float64, rounds int) ViralSeries {
	if rounds < 0 {
		rounds = 0
	}
	s := ViralSeries{
		NewPerRound:    make([]float64, rounds),
		Cumulative:     make([]float64, rounds),
		NonExponential: factor <= 1,
	}
	total := 0.0
	for i := 0; i < rounds; i++ {
		n := starter * math.Pow(factor, float64(i))
		total += n
		s.NewPerRound[i] = n
		s.Cumulative[i] = total
	}
	return s
}

// RevenueSeries compares compounding monthly revenue against a linear target
// over months+1 samples (month 0 is the start).
type RevenueSeries struct {
	Exponential  []float64
	LinearTarget []float64
}

// Revenue compounds start by the monthly rate and adds linearDelta per month for the target.
func Revenue(start, monthlyRatePercent float64, months int, linearDelta float64) RevenueSeries {
	if months < 0 {
		months = 0
	}
	growth := 1 + monthlyRatePercent/100
	s := RevenueSeries{
		Exponential:  make([]float64, months+1),
		LinearTarget: make([]float64, months+1),
	}
	s.Exponential[0] = start
	s.LinearTarget[0] = start
	for m := 1; m <= months; m++ {
		s.Exponential[m] = s.Exponential[m-1] * growth
		s.LinearTarget[m] = start + linearDelta*float64(m)
	}
	return s
}
