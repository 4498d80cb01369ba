package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"expgrowth/internal/config"
	"expgrowth/internal/model"
	"expgrowth/internal/render"
	"expgrowth/internal/report"
	"expgrowth/internal/scenario"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app carries the state shared by all subcommands once the config is loaded.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	eval   *scenario.Evaluator
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("EXPGROWTH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	a := &app{v: v, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:           "expgrowth",
		Short:         "Explore exponential growth scenarios",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to YAML config (env EXPGROWTH_CONFIG)")
	pf.StringP("output", "o", "table", "Output format: table, json or csv")
	pf.Int("max-rows", 0, "Show only the last N steps of the table (0=all)")
	pf.String("csv-out", "", "Also write the step table as CSV to this path")
	pf.Bool("no-color", false, "Disable colored table output")
	_ = v.BindPFlags(pf)

	rootCmd.AddCommand(
		a.chessboardCmd(),
		a.compoundCmd(),
		a.viralCmd(),
		a.revenueCmd(),
		a.scenariosCmd(),
	)

	return rootCmd
}

func (a *app) load() error {
	cfg, err := config.Load(a.v.GetString("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	refs, err := cfg.References.ToScenario()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.eval = scenario.NewEvaluator(refs)
	return nil
}

// evaluate clamps, evaluates and renders one scenario.
func (a *app) evaluate(requested, clamped any) error {
	if fields := model.ChangedFields(requested, clamped); len(fields) > 0 {
		fmt.Fprintf(a.stderr, "warning: %s out of range, clamped to %+v\n", strings.Join(fields, ", "), clamped)
	}

	res, err := a.eval.Evaluate(clamped)
	if err != nil {
		return err
	}

	r, err := render.New(a.v.GetString("output"))
	if err != nil {
		return err
	}
	opts := render.Options{
		Color:      !a.v.GetBool("no-color"),
		MaxRows:    a.v.GetInt("max-rows"),
		Width:      detectTerminalWidth(),
		PrettyJSON: true,
	}
	if err := r.Render(a.stdout, res, opts); err != nil {
		return err
	}

	if path := a.v.GetString("csv-out"); path != "" {
		if err := report.WriteCSVFile(path, res.Table()); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(a.stderr, "wrote %s\n", path)
	}
	return nil
}
