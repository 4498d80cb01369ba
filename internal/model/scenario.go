package model

import (
	"fmt"
	"strings"
)

// Scenario identifies one of the growth demonstrations.
// Keep these values stable; they are used in URLs, CLI commands and cache keys.
type Scenario string

const (
	ScenarioChessboard Scenario = "chessboard"
	ScenarioCompound   Scenario = "compound"
	ScenarioViral      Scenario = "viral"
	ScenarioRevenue    Scenario = "revenue"
)

// Scenarios lists every scenario in display order.
var Scenarios = []Scenario{ScenarioChessboard, ScenarioCompound, ScenarioViral, ScenarioRevenue}

func ParseScenario(s string) (Scenario, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, sc := range Scenarios {
		if string(sc) == s {
			return sc, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScenario, s)
}

// Title is the German heading shown above a scenario.
func (s Scenario) Title() string {
	switch s {
	case ScenarioChessboard:
		return "Das Reiskorn auf dem Schachbrett"
	case ScenarioCompound:
		return "Der Zinseszins-Effekt"
	case ScenarioViral:
		return "Virales Wachstum"
	case ScenarioRevenue:
		return "Hypergrowth beim wiederkehrenden Umsatz"
	default:
		return string(s)
	}
}

// ParameterSpec describes one input of a scenario for presentation layers.
type ParameterSpec struct {
	Name        string
	Type        string // "int" or "float"
	Description string
	Range       Range
	Default     float64
}

// Parameters returns the inputs of a scenario in display order.
func (s Scenario) Parameters() []ParameterSpec {
	switch s {
	case ScenarioChessboard:
		d := DefaultChessboardParams()
		return []ParameterSpec{
			{"field", "int", "Schachfeld (1-64)", FieldRange, float64(d.Field)},
		}
	case ScenarioCompound:
		d := DefaultCompoundParams()
		return []ParameterSpec{
			{"initial", "float", "Startkapital (€)", InitialCapitalRange, d.Initial},
			{"contribution", "float", "Monatliche Sparrate (€)", ContributionRange, d.Contribution},
			{"years", "int", "Laufzeit (Jahre)", YearsRange, float64(d.Years)},
			{"rate_percent", "float", "Jährlicher Zinssatz (%)", AnnualRateRange, d.RatePercent},
		}
	case ScenarioViral:
		d := DefaultViralParams()
		return []ParameterSpec{
			{"starters", "float", "Anzahl der 'Starter'", StartersRange, d.Starters},
			{"factor", "float", "Wachstumsfaktor (Personen pro Person und Runde)", FactorRange, d.Factor},
			{"rounds", "int", "Anzahl der Runden/Tage", RoundsRange, float64(d.Rounds)},
		}
	case ScenarioRevenue:
		d := DefaultRevenueParams()
		return []ParameterSpec{
			{"start", "float", "Monatlicher Startumsatz (€)", StartRevenueRange, d.Start},
			{"monthly_rate_percent", "float", "Monatliches Wachstum (%)", MonthlyRateRange, d.MonthlyRatePercent},
			{"months", "int", "Zeitraum (Monate)", MonthsRange, float64(d.Months)},
			{"linear_delta", "float", "Lineares Ziel: Zuwachs pro Monat (€)", LinearDeltaRange, d.LinearDelta},
			{"revenue_per_employee", "float", "Monatsumsatz pro Mitarbeiter (€)", RevenuePerEmployeeRange, d.RevenuePerEmployee},
			{"headcount", "int", "Aktuelle Mitarbeiterzahl", HeadcountRange, float64(d.Headcount)},
		}
	default:
		return nil
	}
}
