package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"expgrowth/internal/format"
	"expgrowth/internal/model"
)

func (a *app) chessboardCmd() *cobra.Command {
	d := model.DefaultChessboardParams()
	cmd := &cobra.Command{
		Use:   "chessboard",
		Short: "Rice grains doubling on each chessboard field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := a.cfg.Defaults.Chessboard
			f := cmd.Flags()
			overlayInt(f, "field", &p.Field)
			return a.evaluate(p, p.Clamp())
		},
	}
	cmd.Flags().Int("field", d.Field, rangeHelp("Chessboard field", model.FieldRange))
	return cmd
}

func (a *app) compoundCmd() *cobra.Command {
	d := model.DefaultCompoundParams()
	cmd := &cobra.Command{
		Use:   "compound",
		Short: "Compound interest with monthly contributions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := a.cfg.Defaults.Compound
			f := cmd.Flags()
			overlayFloat(f, "initial", &p.Initial)
			overlayFloat(f, "contribution", &p.Contribution)
			overlayInt(f, "years", &p.Years)
			overlayFloat(f, "rate", &p.RatePercent)
			return a.evaluate(p, p.Clamp())
		},
	}
	fs := cmd.Flags()
	fs.Float64("initial", d.Initial, rangeHelp("Initial capital in EUR", model.InitialCapitalRange))
	fs.Float64("contribution", d.Contribution, rangeHelp("Monthly contribution in EUR", model.ContributionRange))
	fs.Int("years", d.Years, rangeHelp("Investment horizon in years", model.YearsRange))
	fs.Float64("rate", d.RatePercent, rangeHelp("Annual interest rate in percent", model.AnnualRateRange))
	return cmd
}

func (a *app) viralCmd() *cobra.Command {
	d := model.DefaultViralParams()
	cmd := &cobra.Command{
		Use:   "viral",
		Short: "Viral spread over sharing rounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := a.cfg.Defaults.Viral
			f := cmd.Flags()
			overlayFloat(f, "starters", &p.Starters)
			overlayFloat(f, "factor", &p.Factor)
			overlayInt(f, "rounds", &p.Rounds)
			return a.evaluate(p, p.Clamp())
		},
	}
	fs := cmd.Flags()
	fs.Float64("starters", d.Starters, rangeHelp("People who start sharing", model.StartersRange))
	fs.Float64("factor", d.Factor, rangeHelp("New people reached per person and round", model.FactorRange))
	fs.Int("rounds", d.Rounds, rangeHelp("Sharing rounds", model.RoundsRange))
	return cmd
}

func (a *app) revenueCmd() *cobra.Command {
	d := model.DefaultRevenueParams()
	cmd := &cobra.Command{
		Use:   "revenue",
		Short: "Monthly recurring revenue hypergrowth against a linear plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := a.cfg.Defaults.Revenue
			f := cmd.Flags()
			overlayFloat(f, "start", &p.Start)
			overlayFloat(f, "rate", &p.MonthlyRatePercent)
			overlayInt(f, "months", &p.Months)
			overlayFloat(f, "linear-delta", &p.LinearDelta)
			overlayFloat(f, "revenue-per-employee", &p.RevenuePerEmployee)
			overlayInt(f, "headcount", &p.Headcount)
			return a.evaluate(p, p.Clamp())
		},
	}
	fs := cmd.Flags()
	fs.Float64("start", d.Start, rangeHelp("Starting monthly revenue in EUR", model.StartRevenueRange))
	fs.Float64("rate", d.MonthlyRatePercent, rangeHelp("Monthly growth rate in percent", model.MonthlyRateRange))
	fs.Int("months", d.Months, rangeHelp("Months to project", model.MonthsRange))
	fs.Float64("linear-delta", d.LinearDelta, rangeHelp("Linear plan: added revenue per month", model.LinearDeltaRange))
	fs.Float64("revenue-per-employee", d.RevenuePerEmployee, rangeHelp("Monthly revenue one employee carries (0 disables)", model.RevenuePerEmployeeRange))
	fs.Int("headcount", d.Headcount, rangeHelp("Current headcount", model.HeadcountRange))
	return cmd
}

func (a *app) scenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List scenarios and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := table.NewWriter()
			tw.SetOutputMirror(a.stdout)
			tw.SetStyle(table.StyleLight)
			if !a.v.GetBool("no-color") {
				tw.SetStyle(table.StyleColoredDark)
			}
			tw.Style().Options.SeparateRows = false
			tw.AppendHeader(table.Row{"Scenario", "Parameter", "Min", "Max", "Default", "Description"})
			tw.SetColumnConfigs([]table.ColumnConfig{
				{Number: 1, AutoMerge: true},
				{Number: 3, Align: text.AlignRight},
				{Number: 4, Align: text.AlignRight},
				{Number: 5, Align: text.AlignRight},
			})

			defaults := map[model.Scenario]any{
				model.ScenarioChessboard: a.cfg.Defaults.Chessboard,
				model.ScenarioCompound:   a.cfg.Defaults.Compound,
				model.ScenarioViral:      a.cfg.Defaults.Viral,
				model.ScenarioRevenue:    a.cfg.Defaults.Revenue,
			}
			for _, sc := range model.Scenarios {
				for _, p := range sc.Parameters() {
					def := p.Default
					if v, ok := model.FieldValue(defaults[sc], p.Name); ok {
						def = v
					}
					tw.AppendRow(table.Row{
						sc,
						p.Name,
						format.Number(p.Range.Min, decimalsFor(p)),
						format.Number(p.Range.Max, decimalsFor(p)),
						format.Number(def, decimalsFor(p)),
						p.Description,
					})
				}
			}
			tw.Render()
			return nil
		},
	}
}

func decimalsFor(p model.ParameterSpec) int {
	if p.Type == "int" {
		return 0
	}
	return 1
}

func rangeHelp(what string, r model.Range) string {
	return fmt.Sprintf("%s [%s..%s]", what,
		strconv.FormatFloat(r.Min, 'f', -1, 64), strconv.FormatFloat(r.Max, 'f', -1, 64))
}

// overlayInt replaces *dst only when the flag was given, so config defaults survive.
func overlayInt(f *pflag.FlagSet, name string, dst *int) {
	if f.Changed(name) {
		*dst, _ = f.GetInt(name)
	}
}

func overlayFloat(f *pflag.FlagSet, name string, dst *float64) {
	if f.Changed(name) {
		*dst, _ = f.GetFloat64(name)
	}
}
