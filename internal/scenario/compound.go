package scenario

import (
	"expgrowth/internal/format"
	"expgrowth/internal/model"
	"expgrowth/internal/report"
	"expgrowth/internal/series"
)

// milestoneYears is the minimum horizon before the "interest beat deposits" note is shown.
const milestoneYears = 10

type CompoundSummary struct {
	FinalCapital float64 `json:"final_capital"`
	Contributed  float64 `json:"contributed"`
	Gain         float64 `json:"gain"`
	LinearFinal  float64 `json:"linear_final"`
	// Advantage is how much compounding beats simple interest on the initial capital.
	Advantage     float64 `json:"advantage"`
	LastStepShare float64 `json:"last_step_share"`
	// Milestone is set once interest earned more than was paid in over a long horizon.
	Milestone bool `json:"milestone"`
}

type CompoundResult struct {
	Params  model.CompoundParams `json:"parameters"`
	Series  series.CapitalSeries `json:"-"`
	Summary CompoundSummary      `json:"summary"`
}

func (e *Evaluator) Compound(p model.CompoundParams) CompoundResult {
	s := series.CompoundingCapital(p.Initial, p.Contribution, p.Years, p.RatePercent)

	final := last(s.Capital)
	contributed := last(s.Contributed)
	gain := final - contributed
	linear := last(s.Linear)

	return CompoundResult{
		Params: p,
		Series: s,
		Summary: CompoundSummary{
			FinalCapital:  final,
			Contributed:   contributed,
			Gain:          gain,
			LinearFinal:   linear,
			Advantage:     final - linear,
			LastStepShare: ShareOfTotal(lastIncrement(s.Capital), final-s.Capital[0]),
			Milestone:     p.Years > milestoneYears && gain > contributed,
		},
	}
}

func (r CompoundResult) Scenario() model.Scenario { return model.ScenarioCompound }

func (r CompoundResult) Metrics() []Metric {
	s := r.Summary
	m := []Metric{
		{"final_capital", "Endkapital", format.Euro(s.FinalCapital)},
		{"contributed", "Eingezahltes Kapital", format.Euro(s.Contributed)},
		{"gain", "Reiner Zinsgewinn", format.Euro(s.Gain)},
		{"linear_final", "Endkapital bei einfachem Zins", format.Euro(s.LinearFinal)},
		{"advantage", "Vorsprung durch Zinseszins", format.Euro(s.Advantage)},
		{"last_step_share", "Anteil des letzten Jahres am Zuwachs", format.Percent(s.LastStepShare*100, 1)},
	}
	if s.Milestone {
		m = append(m, Metric{"milestone", "Meilenstein",
			"Ihr Geld hat mehr Geld verdient, als Sie selbst eingezahlt haben."})
	}
	return m
}

func (r CompoundResult) Table() report.Table {
	return report.NewTable("year", report.Steps(0, len(r.Series.Capital)),
		[]string{"capital", "contributed", "linear"},
		r.Series.Capital, r.Series.Contributed, r.Series.Linear)
}
