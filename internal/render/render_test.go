package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expgrowth/internal/model"
	"expgrowth/internal/scenario"
)

func chessboard(field int) scenario.Result {
	e := scenario.NewEvaluator(scenario.DefaultReferences())
	return e.Chessboard(model.ChessboardParams{Field: field})
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New("xml")
	assert.Error(t, err)
	for _, name := range []string{"", "table", "json", "csv"} {
		r, err := New(name)
		require.NoError(t, err, name)
		assert.NotNil(t, r)
	}
}

func TestTableRendererShowsMetricsAndSteps(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableRenderer().Render(&buf, chessboard(64), Options{}))
	out := buf.String()

	assert.Contains(t, out, "Das Reiskorn auf dem Schachbrett")
	assert.Contains(t, out, "Reiskörner INSGESAMT")
	assert.Contains(t, out, "18.446.744.073.709.551.615")
	assert.Contains(t, out, "GRAINS")
}

func TestTableRendererLimitsRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableRenderer().Render(&buf, chessboard(64), Options{MaxRows: 4}))
	assert.Contains(t, buf.String(), "60 frühere Zeilen ausgeblendet")
}

func TestJSONRendererKeepsExactRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONRenderer().Render(&buf, chessboard(64), Options{PrettyJSON: true}))

	var out struct {
		Scenario string     `json:"scenario"`
		Columns  []string   `json:"columns"`
		Rows     [][]string `json:"rows"`
		Metrics  []struct {
			Key string `json:"key"`
		} `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "chessboard", out.Scenario)
	require.Len(t, out.Rows, 64)
	assert.Equal(t, "9223372036854775808", out.Rows[63][1])
	assert.NotEmpty(t, out.Metrics)
}

func TestCSVRenderer(t *testing.T) {
	r, err := New("csv")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, chessboard(3), Options{}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"field,grains,cumulative",
		"1,1.000000,1.000000",
		"2,2.000000,3.000000",
		"3,4.000000,7.000000",
	}, lines)
}
