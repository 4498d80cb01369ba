package scenario

import (
	"math"

	"expgrowth/internal/format"
	"expgrowth/internal/model"
	"expgrowth/internal/report"
	"expgrowth/internal/series"
)

type RevenueSummary struct {
	FinalRevenue   float64 `json:"final_revenue"`
	LinearFinal    float64 `json:"linear_final"`
	Gap            float64 `json:"gap"`
	GrowthMultiple float64 `json:"growth_multiple"`
	AnnualRunRate  float64 `json:"annual_run_rate"`
	LastStepShare  float64 `json:"last_step_share"`
	// HeadcountNeeded is final monthly revenue over revenue per employee.
	HeadcountNeeded float64 `json:"headcount_needed"`
	// HiresNeeded is zero while the current team already covers HeadcountNeeded.
	HiresNeeded int `json:"hires_needed"`
}

type RevenueResult struct {
	Params  model.RevenueParams  `json:"parameters"`
	Series  series.RevenueSeries `json:"-"`
	Summary RevenueSummary       `json:"summary"`
}

func (e *Evaluator) Revenue(p model.RevenueParams) RevenueResult {
	s := series.Revenue(p.Start, p.MonthlyRatePercent, p.Months, p.LinearDelta)
	final := last(s.Exponential)
	needed := SafeRatio(final, p.RevenuePerEmployee)

	return RevenueResult{
		Params: p,
		Series: s,
		Summary: RevenueSummary{
			FinalRevenue:    final,
			LinearFinal:     last(s.LinearTarget),
			Gap:             final - last(s.LinearTarget),
			GrowthMultiple:  SafeRatio(final, p.Start),
			AnnualRunRate:   final * 12,
			LastStepShare:   ShareOfTotal(lastIncrement(s.Exponential), final-s.Exponential[0]),
			HeadcountNeeded: needed,
			HiresNeeded:     HiresNeeded(needed, p.Headcount),
		},
	}
}

// HiresNeeded rounds the required headcount up and subtracts the current team,
// never going below zero. Results saturate at math.MaxInt32.
func HiresNeeded(headcountNeeded float64, current int) int {
	needed := math.Ceil(headcountNeeded)
	if needed >= math.MaxInt32 {
		return math.MaxInt32
	}
	gap := int(needed) - current
	if gap < 0 {
		return 0
	}
	return gap
}

func (r RevenueResult) Scenario() model.Scenario { return model.ScenarioRevenue }

func (r RevenueResult) Metrics() []Metric {
	s := r.Summary
	return []Metric{
		{"final_revenue", "Monatsumsatz am Ende", format.Euro(s.FinalRevenue)},
		{"linear_final", "Lineares Ziel am Ende", format.Euro(s.LinearFinal)},
		{"gap", "Abstand zum linearen Ziel", format.Euro(s.Gap)},
		{"growth_multiple", "Wachstumsfaktor", format.Factor(s.GrowthMultiple) + "×"},
		{"annual_run_rate", "Jahresumsatz (Run-Rate)", format.HumanReadable(s.AnnualRunRate) + " €"},
		{"last_step_share", "Anteil des letzten Monats am Zuwachs", format.Percent(s.LastStepShare*100, 1)},
		{"headcount_needed", "Benötigte Mitarbeiter", format.Number(s.HeadcountNeeded, 1)},
		{"hires_needed", "Neueinstellungen", format.Number(float64(s.HiresNeeded), 0)},
	}
}

func (r RevenueResult) Table() report.Table {
	return report.NewTable("month", report.Steps(0, len(r.Series.Exponential)),
		[]string{"revenue", "linear_target"},
		r.Series.Exponential, r.Series.LinearTarget)
}
