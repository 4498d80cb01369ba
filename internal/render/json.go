package render

import (
	"encoding/json"
	"io"

	"expgrowth/internal/scenario"
)

// jsonModel is the output shape for JSONRenderer.
type jsonModel struct {
	Scenario string            `json:"scenario"`
	Title    string            `json:"title"`
	Result   scenario.Result   `json:"result"`
	Metrics  []scenario.Metric `json:"metrics"`
	Columns  []string          `json:"columns"`
	// Rows keep exact decimal strings so 2^63 survives JSON consumers.
	Rows [][]string `json:"rows"`
}

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

func (r *JSONRenderer) Render(w io.Writer, res scenario.Result, opts Options) error {
	t := res.Table()
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = v.String()
		}
	}
	out := jsonModel{
		Scenario: string(res.Scenario()),
		Title:    res.Scenario().Title(),
		Result:   res,
		Metrics:  res.Metrics(),
		Columns:  t.Columns,
		Rows:     rows,
	}
	enc := json.NewEncoder(w)
	if opts.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
