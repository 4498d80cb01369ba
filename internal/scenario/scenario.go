// Package scenario turns generated series into the summary figures shown for each
// growth demonstration.
package scenario

import (
	"fmt"

	"github.com/shopspring/decimal"

	"expgrowth/internal/compare"
	"expgrowth/internal/model"
	"expgrowth/internal/report"
)

// Metric is one labelled, display-formatted figure.
type Metric struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Result is the outcome of evaluating one scenario.
type Result interface {
	Scenario() model.Scenario
	Metrics() []Metric
	Table() report.Table
}

// References holds the comparison tables and constants used to make numbers tangible.
type References struct {
	GrainWeightGrams decimal.Decimal
	// Chessboard compares total rice weight in tonnes.
	Chessboard compare.Table
	// Viral compares the number of people reached.
	Viral compare.Table
	// HeadlineChessboard and HeadlineViral are the milestones a headline may name.
	// They are usually a subset of the comparison tables.
	HeadlineChessboard compare.Table
	HeadlineViral      compare.Table
}

// DefaultReferences returns the built-in comparison figures (weights in tonnes, people).
func DefaultReferences() References {
	return References{
		GrainWeightGrams: decimal.RequireFromString("0.025"),
		Chessboard: compare.MustTable(
			compare.Entry{Label: "das Gewicht eines Blauwals", Threshold: 150},
			compare.Entry{Label: "das Gewicht des Eiffelturms", Threshold: 10_100},
			compare.Entry{Label: "die jährliche Weltreisproduktion", Threshold: 510_000_000},
			compare.Entry{Label: "das Gewicht des Mt. Everest", Threshold: 162_000_000_000_000},
		),
		Viral: compare.MustTable(
			compare.Entry{Label: "ein volles Fußballstadion", Threshold: 50_000},
			compare.Entry{Label: "die Bevölkerung Frankfurts", Threshold: 770_000},
			compare.Entry{Label: "die Bevölkerung Deutschlands", Threshold: 84_000_000},
			compare.Entry{Label: "die Weltbevölkerung", Threshold: 8_000_000_000},
		),
		HeadlineChessboard: compare.MustTable(
			compare.Entry{Label: "die jährliche Weltreisproduktion", Threshold: 510_000_000},
			compare.Entry{Label: "das Gewicht des Mt. Everest", Threshold: 162_000_000_000_000},
		),
		HeadlineViral: compare.MustTable(
			compare.Entry{Label: "die Bevölkerung Frankfurts", Threshold: 770_000},
			compare.Entry{Label: "die Bevölkerung Deutschlands", Threshold: 84_000_000},
		),
	}
}

// Evaluator computes scenario results against a fixed set of references.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	refs References
}

func NewEvaluator(refs References) *Evaluator {
	if refs.GrainWeightGrams.IsZero() {
		refs.GrainWeightGrams = DefaultReferences().GrainWeightGrams
	}
	return &Evaluator{refs: refs}
}

func (e *Evaluator) References() References { return e.refs }

// Evaluate dispatches on the parameter type. Parameters are expected to be in range;
// callers clamp or validate first.
func (e *Evaluator) Evaluate(params any) (Result, error) {
	switch p := params.(type) {
	case model.ChessboardParams:
		return e.Chessboard(p), nil
	case model.CompoundParams:
		return e.Compound(p), nil
	case model.ViralParams:
		return e.Viral(p), nil
	case model.RevenueParams:
		return e.Revenue(p), nil
	default:
		return nil, fmt.Errorf("unsupported scenario parameters %T", params)
	}
}

// DefaultParams returns the default parameters for s.
func DefaultParams(s model.Scenario) (any, error) {
	switch s {
	case model.ScenarioChessboard:
		return model.DefaultChessboardParams(), nil
	case model.ScenarioCompound:
		return model.DefaultCompoundParams(), nil
	case model.ScenarioViral:
		return model.DefaultViralParams(), nil
	case model.ScenarioRevenue:
		return model.DefaultRevenueParams(), nil
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownScenario, s)
	}
}

// ShareOfTotal is the fraction of total growth contributed by the final step.
func ShareOfTotal(lastIncrement, totalGrowth float64) float64 {
	if totalGrowth <= 0 {
		return 0
	}
	return lastIncrement / totalGrowth
}

// SafeRatio returns a/b, or 0 when b is zero.
func SafeRatio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func last(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[len(xs)-1]
}

// lastIncrement is the change over the final step of xs.
func lastIncrement(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return xs[len(xs)-1] - xs[len(xs)-2]
}
