package scenario

import (
	"github.com/shopspring/decimal"

	"expgrowth/internal/compare"
	"expgrowth/internal/format"
	"expgrowth/internal/model"
	"expgrowth/internal/report"
	"expgrowth/internal/series"
)

const chessboardGrowing = "Wächst noch..."

var gramsPerTonne = decimal.NewFromInt(1_000_000)

type ChessboardSummary struct {
	GrainsOnField decimal.Decimal `json:"grains_on_field"`
	GrainsTotal   decimal.Decimal `json:"grains_total"`
	WeightTonnes  decimal.Decimal `json:"weight_tonnes"`
	// Comparison is the best-fitting multiple of a reference weight.
	Comparison string `json:"comparison"`
	// Headline only names headline milestones the weight has already surpassed.
	Headline      string  `json:"headline"`
	LastStepShare float64 `json:"last_step_share"`
}

type ChessboardResult struct {
	Params  model.ChessboardParams `json:"parameters"`
	Series  series.DoublingSeries  `json:"-"`
	Summary ChessboardSummary      `json:"summary"`
}

func (e *Evaluator) Chessboard(p model.ChessboardParams) ChessboardResult {
	s := series.Doubling(p.Field)
	tonnes := s.CumulativeTotal.Mul(e.refs.GrainWeightGrams).Div(gramsPerTonne)
	tf := tonnes.InexactFloat64()

	headline := chessboardGrowing
	if ref, ok := compare.Exceeded(tf, e.refs.HeadlineChessboard); ok {
		headline = compare.Phrase(tf/ref.Threshold, ref.Label)
	}

	share := 0.0
	if s.CumulativeTotal.IsPositive() {
		share = s.Last().Div(s.CumulativeTotal).InexactFloat64()
	}

	return ChessboardResult{
		Params: p,
		Series: s,
		Summary: ChessboardSummary{
			GrainsOnField: s.Last(),
			GrainsTotal:   s.CumulativeTotal,
			WeightTonnes:  tonnes,
			Comparison:    compare.Best(tf, e.refs.Chessboard),
			Headline:      headline,
			LastStepShare: share,
		},
	}
}

func (r ChessboardResult) Scenario() model.Scenario { return model.ScenarioChessboard }

func (r ChessboardResult) Metrics() []Metric {
	s := r.Summary
	return []Metric{
		{"grains_on_field", "Reiskörner auf diesem Feld", format.Decimal(s.GrainsOnField, 0)},
		{"grains_total", "Reiskörner INSGESAMT", format.Decimal(s.GrainsTotal, 0)},
		{"weight_tonnes", "Gesamtgewicht in Tonnen", format.Decimal(s.WeightTonnes, 2)},
		{"comparison", "Vergleich", s.Comparison},
		{"headline", "Was bedeutet das?", s.Headline},
		{"last_step_share", "Anteil des letzten Feldes", format.Percent(s.LastStepShare*100, 1)},
	}
}

// Table is exact: grain counts up to 2^64-1 are kept as integers.
func (r ChessboardResult) Table() report.Table {
	t := report.Table{
		Columns: []string{"field", "grains", "cumulative"},
		Rows:    make([][]decimal.Decimal, len(r.Series.PerStep)),
	}
	cum := decimal.Zero
	for i, v := range r.Series.PerStep {
		cum = cum.Add(v)
		t.Rows[i] = []decimal.Decimal{decimal.NewFromInt(int64(i + 1)), v, cum}
	}
	return t
}
