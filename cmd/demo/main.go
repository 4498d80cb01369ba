package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"expgrowth/internal/config"
	"expgrowth/internal/model"
	"expgrowth/internal/render"
	"expgrowth/internal/report"
	"expgrowth/internal/scenario"
)

// Demo:
// - Load the config (or built-in defaults)
// - Evaluate every scenario with its default parameters
// - Print the summaries and the last few steps, optionally writing each table as CSV
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	n := flag.Int("n", 8, "Number of trailing steps to show per scenario (0=all)")
	outDir := flag.String("out", "", "Optional directory to write one CSV per scenario (e.g. results/)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	refs, err := cfg.References.ToScenario()
	if err != nil {
		panic(err)
	}
	eval := scenario.NewEvaluator(refs)

	defaults := map[model.Scenario]any{
		model.ScenarioChessboard: cfg.Defaults.Chessboard,
		model.ScenarioCompound:   cfg.Defaults.Compound,
		model.ScenarioViral:      cfg.Defaults.Viral,
		model.ScenarioRevenue:    cfg.Defaults.Revenue,
	}

	tr := render.NewTableRenderer()
	for _, sc := range model.Scenarios {
		res, err := eval.Evaluate(defaults[sc])
		if err != nil {
			panic(err)
		}
		if err := tr.Render(os.Stdout, res, render.Options{MaxRows: *n}); err != nil {
			panic(err)
		}
		fmt.Println()

		if *outDir != "" {
			path := filepath.Join(*outDir, string(sc)+".csv")
			if err := report.WriteCSVFile(path, res.Table()); err != nil {
				panic(err)
			}
			fmt.Printf("wrote %s\n\n", path)
		}
	}
}
