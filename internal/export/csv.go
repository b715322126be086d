// Package export serializes calculation results to CSV files on explicit
// user request. One export produces one file with a header row and a single
// data row; nothing is persisted otherwise.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	apperrors "github.com/alexbl00m/vo2calc/internal/errors"
	"github.com/alexbl00m/vo2calc/internal/vo2max"
)

// header is the fixed CSV header row, matching the result field order.
var header = []string{
	"Date",
	"Power at VO2max (W)",
	"Power-to-Weight (W/kg)",
	"VO2max (ml/min)",
	"VO2max (ml/min/kg)",
}

// Record is one exportable calculation outcome. Date is supplied by the
// caller and used only to label the row.
type Record struct {
	Date   time.Time
	Result vo2max.Result
}

// FileName returns the default export file name for the given date:
// vo2max_results_<YYYY-MM-DD>.csv.
func FileName(date time.Time) string {
	return fmt.Sprintf("vo2max_results_%s.csv", date.Format("2006-01-02"))
}

// Write serializes the record as a header plus one comma-separated row.
func Write(w io.Writer, rec Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return apperrors.WrapError(err, "writing CSV header")
	}
	row := []string{
		rec.Date.Format("2006-01-02"),
		fmt.Sprintf("%.0f", rec.Result.PowerAtVO2max),
		fmt.Sprintf("%.2f", rec.Result.PowerToWeight),
		fmt.Sprintf("%.0f", rec.Result.VO2maxAbsolute),
		fmt.Sprintf("%.1f", rec.Result.VO2maxRelative),
	}
	if err := cw.Write(row); err != nil {
		return apperrors.WrapError(err, "writing CSV row")
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the record to the given path, creating parent directories
// as needed. An empty path defaults to FileName(rec.Date) in the current
// directory. It returns the path written.
func WriteFile(path string, rec Record) (string, error) {
	if path == "" {
		path = FileName(rec.Date)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", apperrors.ExportError{Path: path, Cause: err}
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return "", apperrors.ExportError{Path: path, Cause: err}
	}
	defer file.Close()

	if err := Write(file, rec); err != nil {
		return "", apperrors.ExportError{Path: path, Cause: err}
	}
	return path, nil
}
