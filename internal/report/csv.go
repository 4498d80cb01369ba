package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// WriteCSV writes the table with a header row. Step columns are integers, all
// other values use six fixed decimals.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, r := range t.Rows {
		row := make([]string, len(r))
		for i, v := range r {
			if i == 0 {
				row[i] = v.String()
				continue
			}
			row[i] = fmtDecimal(v)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the table to path, creating parent directories.
func WriteCSVFile(path string, t Table) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteCSV(f, t)
}

func fmtDecimal(x decimal.Decimal) string {
	return x.StringFixed(6)
}
