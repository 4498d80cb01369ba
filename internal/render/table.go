package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"

	"expgrowth/internal/format"
	"expgrowth/internal/scenario"
)

type TableRenderer struct{}

func NewTableRenderer() *TableRenderer { return &TableRenderer{} }

func (r *TableRenderer) Render(w io.Writer, res scenario.Result, opts Options) error {
	title := res.Scenario().Title()
	if opts.Color {
		title = text.Bold.Sprint(strings.ToUpper(title))
	}
	fmt.Fprintln(w, title)

	// Summary figures
	mw := newWriter(w, opts)
	mw.AppendHeader(table.Row{"KENNZAHL", "WERT"})
	for _, m := range res.Metrics() {
		val := m.Value
		if opts.Color && m.Key == "warning" {
			val = text.Colors{text.FgYellow}.Sprint(val)
		}
		mw.AppendRow(table.Row{m.Label, val})
	}
	mw.Render()
	fmt.Fprintln(w)

	// Per-step table
	t := res.Table()
	sw := newWriter(w, opts)
	hdr := make(table.Row, len(t.Columns))
	cfgs := make([]table.ColumnConfig, len(t.Columns))
	for i, c := range t.Columns {
		hdr[i] = strings.ToUpper(c)
		cfgs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignRight, AlignHeader: text.AlignRight}
	}
	sw.AppendHeader(hdr)
	sw.SetColumnConfigs(cfgs)

	rows := t.Rows
	if opts.MaxRows > 0 && len(rows) > opts.MaxRows {
		rows = rows[len(rows)-opts.MaxRows:]
	}
	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = cell(v)
		}
		sw.AppendRow(row)
	}
	if len(rows) < len(t.Rows) {
		sw.AppendFooter(table.Row{fmt.Sprintf("… %d frühere Zeilen ausgeblendet", len(t.Rows)-len(rows))})
	}
	sw.Render()
	return nil
}

func newWriter(w io.Writer, opts Options) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if opts.Color {
		tw.SetStyle(table.StyleColoredDark)
	} else {
		tw.SetStyle(table.StyleLight)
	}
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false
	if opts.Width > 0 {
		tw.SetAllowedRowLength(opts.Width)
	}
	return tw
}

// cell shows integers without a fraction and everything else with two decimals.
func cell(v decimal.Decimal) string {
	if v.IsInteger() {
		return format.Decimal(v, 0)
	}
	return format.Decimal(v, 2)
}
