package model

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrOutOfRange      = errors.New("parameter out of range")
	ErrUnknownScenario = errors.New("unknown scenario")
)

// Range is an inclusive bound for one scenario parameter.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool {
	return !math.IsNaN(v) && v >= r.Min && v <= r.Max
}

// Clamp pulls v into [Min, Max]. NaN clamps to Min.
func (r Range) Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < r.Min:
		return r.Min
	case v > r.Max:
		return r.Max
	default:
		return v
	}
}

// ClampInt is Clamp for integer parameters.
func (r Range) ClampInt(v int) int {
	return int(r.Clamp(float64(v)))
}

func (r Range) check(name string, v float64) error {
	if !r.Contains(v) {
		return fmt.Errorf("%w: %s=%v not in [%v, %v]", ErrOutOfRange, name, v, r.Min, r.Max)
	}
	return nil
}

// Parameter ranges. Every value handed to package series must lie within these.
var (
	FieldRange = Range{1, 64}

	InitialCapitalRange = Range{0, 100_000}
	ContributionRange   = Range{0, 2_000}
	YearsRange          = Range{1, 50}
	AnnualRateRange     = Range{0, 20}

	StartersRange = Range{1, 100}
	FactorRange   = Range{0.1, 5}
	RoundsRange   = Range{1, 50}

	StartRevenueRange       = Range{1, 10_000_000}
	MonthlyRateRange        = Range{0, 100}
	MonthsRange             = Range{1, 60}
	LinearDeltaRange        = Range{0, 10_000_000}
	RevenuePerEmployeeRange = Range{0, 10_000_000}
	HeadcountRange          = Range{0, 100_000}
)

// ChessboardParams selects a field on the chessboard.
type ChessboardParams struct {
	Field int `json:"field" form:"field" yaml:"field"`
}

func DefaultChessboardParams() ChessboardParams { return ChessboardParams{Field: 32} }

func (p ChessboardParams) Validate() error {
	return FieldRange.check("field", float64(p.Field))
}

func (p ChessboardParams) Clamp() ChessboardParams {
	return ChessboardParams{Field: FieldRange.ClampInt(p.Field)}
}

// CompoundParams describes a savings plan. Contribution is monthly, the rate is
// yearly in percent and applied once per year.
type CompoundParams struct {
	Initial      float64 `json:"initial" form:"initial" yaml:"initial"`
	Contribution float64 `json:"contribution" form:"contribution" yaml:"contribution"`
	Years        int     `json:"years" form:"years" yaml:"years"`
	RatePercent  float64 `json:"rate_percent" form:"rate_percent" yaml:"rate_percent"`
}

func DefaultCompoundParams() CompoundParams {
	return CompoundParams{Initial: 1000, Contribution: 150, Years: 30, RatePercent: 7}
}

func (p CompoundParams) Validate() error {
	return errors.Join(
		InitialCapitalRange.check("initial", p.Initial),
		ContributionRange.check("contribution", p.Contribution),
		YearsRange.check("years", float64(p.Years)),
		AnnualRateRange.check("rate_percent", p.RatePercent),
	)
}

func (p CompoundParams) Clamp() CompoundParams {
	return CompoundParams{
		Initial:      InitialCapitalRange.Clamp(p.Initial),
		Contribution: ContributionRange.Clamp(p.Contribution),
		Years:        YearsRange.ClampInt(p.Years),
		RatePercent:  AnnualRateRange.Clamp(p.RatePercent),
	}
}

// ViralParams describes a spread: Factor is how many people each person reaches per round.
type ViralParams struct {
	Starters float64 `json:"starters" form:"starters" yaml:"starters"`
	Factor   float64 `json:"factor" form:"factor" yaml:"factor"`
	Rounds   int     `json:"rounds" form:"rounds" yaml:"rounds"`
}

func DefaultViralParams() ViralParams { return ViralParams{Starters: 1, Factor: 1.5, Rounds: 20} }

func (p ViralParams) Validate() error {
	return errors.Join(
		StartersRange.check("starters", p.Starters),
		FactorRange.check("factor", p.Factor),
		RoundsRange.check("rounds", float64(p.Rounds)),
	)
}

func (p ViralParams) Clamp() ViralParams {
	return ViralParams{
		Starters: StartersRange.Clamp(p.Starters),
		Factor:   FactorRange.Clamp(p.Factor),
		Rounds:   RoundsRange.ClampInt(p.Rounds),
	}
}

// RevenueParams describes monthly recurring revenue growth and the team needed to carry it.
type RevenueParams struct {
	Start              float64 `json:"start" form:"start" yaml:"start"`
	MonthlyRatePercent float64 `json:"monthly_rate_percent" form:"monthly_rate_percent" yaml:"monthly_rate_percent"`
	Months             int     `json:"months" form:"months" yaml:"months"`
	LinearDelta        float64 `json:"linear_delta" form:"linear_delta" yaml:"linear_delta"`
	RevenuePerEmployee float64 `json:"revenue_per_employee" form:"revenue_per_employee" yaml:"revenue_per_employee"`
	Headcount          int     `json:"headcount" form:"headcount" yaml:"headcount"`
}

func DefaultRevenueParams() RevenueParams {
	return RevenueParams{
		Start:              10_000,
		MonthlyRatePercent: 15,
		Months:             24,
		LinearDelta:        2_000,
		RevenuePerEmployee: 15_000,
		Headcount:          5,
	}
}

func (p RevenueParams) Validate() error {
	return errors.Join(
		StartRevenueRange.check("start", p.Start),
		MonthlyRateRange.check("monthly_rate_percent", p.MonthlyRatePercent),
		MonthsRange.check("months", float64(p.Months)),
		LinearDeltaRange.check("linear_delta", p.LinearDelta),
		RevenuePerEmployeeRange.check("revenue_per_employee", p.RevenuePerEmployee),
		HeadcountRange.check("headcount", float64(p.Headcount)),
	)
}

func (p RevenueParams) Clamp() RevenueParams {
	return RevenueParams{
		Start:              StartRevenueRange.Clamp(p.Start),
		MonthlyRatePercent: MonthlyRateRange.Clamp(p.MonthlyRatePercent),
		Months:             MonthsRange.ClampInt(p.Months),
		LinearDelta:        LinearDeltaRange.Clamp(p.LinearDelta),
		RevenuePerEmployee: RevenuePerEmployeeRange.Clamp(p.RevenuePerEmployee),
		Headcount:          HeadcountRange.ClampInt(p.Headcount),
	}
}
