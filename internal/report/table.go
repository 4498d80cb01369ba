package report

import "github.com/shopspring/decimal"

// Table is the per-step output of one scenario evaluation.
// Row i holds one value per column; the first column is always the step counter.
type Table struct {
	Columns []string
	Rows    [][]decimal.Decimal
}

// NewTable builds a table from parallel float columns. All columns must have the
// same length as steps.
func NewTable(stepColumn string, steps []int, columns []string, values ...[]float64) Table {
	t := Table{
		Columns: append([]string{stepColumn}, columns...),
		Rows:    make([][]decimal.Decimal, len(steps)),
	}
	for i, step := range steps {
		row := make([]decimal.Decimal, 0, len(values)+1)
		row = append(row, decimal.NewFromInt(int64(step)))
		for _, col := range values {
			row = append(row, decimal.NewFromFloat(col[i]))
		}
		t.Rows[i] = row
	}
	return t
}

// Steps returns first..first+n-1.
func Steps(first, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = first + i
	}
	return out
}

// Column returns the values of the named column, or nil when absent.
func (t Table) Column(name string) []decimal.Decimal {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]decimal.Decimal, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r[idx]
	}
	return out
}
