package render

import (
	"fmt"
	"io"

	"expgrowth/internal/report"
	"expgrowth/internal/scenario"
)

// Renderer renders a scenario result to an output writer.
type Renderer interface {
	Render(w io.Writer, res scenario.Result, opts Options) error
}

type Options struct {
	Color bool
	// MaxRows limits the per-step table; 0 shows every row.
	MaxRows int
	// Width caps the rendered table width; 0 leaves it unbounded.
	Width      int
	PrettyJSON bool
}

// New returns the renderer registered under name ("table", "json" or "csv").
func New(name string) (Renderer, error) {
	switch name {
	case "", "table":
		return NewTableRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	case "csv":
		return csvRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %q (available: table, json, csv)", name)
	}
}

// csvRenderer writes only the per-step table.
type csvRenderer struct{}

func (csvRenderer) Render(w io.Writer, res scenario.Result, _ Options) error {
	return report.WriteCSV(w, res.Table())
}
