package scenario

import (
	"expgrowth/internal/compare"
	"expgrowth/internal/format"
	"expgrowth/internal/model"
	"expgrowth/internal/report"
	"expgrowth/internal/series"
)

const (
	viralSmall   = "Füllt ein kleines Stadion."
	viralWarning = "Mit einem Wachstumsfaktor von 1,0 oder weniger stirbt der Trend aus oder stagniert. " +
		"Echtes exponentielles Wachstum beginnt erst bei einem Faktor > 1."
)

type ViralSummary struct {
	TotalReached   float64 `json:"total_reached"`
	NewInLastRound float64 `json:"new_in_last_round"`
	LastStepShare  float64 `json:"last_step_share"`
	Comparison     string  `json:"comparison"`
	Headline       string  `json:"headline"`
	NonExponential bool    `json:"non_exponential"`
	Warning        string  `json:"warning,omitempty"`
}

type ViralResult struct {
	Params  model.ViralParams  `json:"parameters"`
	Series  series.ViralSeries `json:"-"`
	Summary ViralSummary       `json:"summary"`
}

func (e *Evaluator) Viral(p model.ViralParams) ViralResult {
	s := series.Viral(p.Starters, p.Factor, p.Rounds)
	total := last(s.Cumulative)
	newest := last(s.NewPerRound)

	headline := viralSmall
	if ref, ok := compare.Exceeded(total, e.refs.HeadlineViral); ok {
		headline = "Mehr als " + ref.Label + "!"
	}

	sum := ViralSummary{
		TotalReached:   total,
		NewInLastRound: newest,
		LastStepShare:  ShareOfTotal(newest, total),
		Comparison:     compare.Best(total, e.refs.Viral),
		Headline:       headline,
		NonExponential: s.NonExponential,
	}
	if s.NonExponential {
		sum.Warning = viralWarning
	}
	return ViralResult{Params: p, Series: s, Summary: sum}
}

func (r ViralResult) Scenario() model.Scenario { return model.ScenarioViral }

func (r ViralResult) Metrics() []Metric {
	s := r.Summary
	m := []Metric{
		{"total_reached", "Insgesamt erreichte Personen", format.Number(s.TotalReached, 0)},
		{"total_reached_short", "Kurzform", format.HumanReadable(s.TotalReached)},
		{"new_in_last_round", "Neu in der letzten Runde", format.Number(s.NewInLastRound, 0)},
		{"last_step_share", "Anteil der letzten Runde", format.Percent(s.LastStepShare*100, 1)},
		{"comparison", "Vergleich", s.Comparison},
		{"headline", "Was bedeutet das?", s.Headline},
	}
	if s.Warning != "" {
		m = append(m, Metric{"warning", "Hinweis", s.Warning})
	}
	return m
}

func (r ViralResult) Table() report.Table {
	return report.NewTable("round", report.Steps(1, len(r.Series.NewPerRound)),
		[]string{"new", "cumulative"},
		r.Series.NewPerRound, r.Series.Cumulative)
}
