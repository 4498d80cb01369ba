package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestChessboardTable(t *testing.T) {
	out, _, err := run(t, "chessboard", "--field", "64", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Das Reiskorn auf dem Schachbrett")
	assert.Contains(t, out, "18.446.744.073.709.551.615")
}

func TestOutOfRangeFlagIsClampedWithWarning(t *testing.T) {
	out, errOut, err := run(t, "compound", "--years", "80", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, "warning: years out of range")

	var doc struct {
		Result struct {
			Parameters map[string]float64 `json:"parameters"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 50.0, doc.Result.Parameters["years"])
	assert.Equal(t, 1000.0, doc.Result.Parameters["initial"])
}

func TestOutputFromEnvironment(t *testing.T) {
	t.Setenv("EXPGROWTH_OUTPUT", "csv")
	out, _, err := run(t, "viral", "--rounds", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "round,new,cumulative", lines[0])
}

func TestCSVOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "revenue.csv")
	_, errOut, err := run(t, "revenue", "--months", "12", "--no-color", "--csv-out", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "wrote "+path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Len(t, lines, 14, "header plus months 0..12")
	assert.True(t, strings.HasPrefix(lines[0], "month,"))
}

func TestConfigDefaultsApplyWhenFlagIsOmitted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expgrowth.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  chessboard:\n    field: 5\n"), 0o644))

	out, _, err := run(t, "chessboard", "--config", path, "-o", "json")
	require.NoError(t, err)

	var doc struct {
		Rows [][]string `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Rows, 5)
	assert.Equal(t, []string{"5", "16", "31"}, doc.Rows[4])
}

func TestScenariosList(t *testing.T) {
	out, _, err := run(t, "scenarios", "--no-color")
	require.NoError(t, err)
	for _, want := range []string{"chessboard", "compound", "viral", "revenue", "rate_percent"} {
		assert.Contains(t, out, want)
	}
}

func TestUnknownOutputFormat(t *testing.T) {
	_, _, err := run(t, "viral", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}
