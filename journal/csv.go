package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"candlescan/patterns"
)

var labeledHeader = []string{"date", "open", "high", "low", "close", "volume", "pattern"}

// WriteLabeled writes the labeled rows as a flat CSV table: the input
// columns plus one `pattern` column holding the comma-joined label
// (empty cell when no pattern fired).
func WriteLabeled(path string, rows []patterns.LabeledRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(labeledHeader); err != nil {
		return err
	}

	for _, r := range rows {
		rec := []string{
			fmtDate(r.Date),
			fmtFloat(r.Open),
			fmtFloat(r.High),
			fmtFloat(r.Low),
			fmtFloat(r.Close),
			strconv.FormatInt(r.Volume, 10),
			r.Label,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Daily bars round-trip as plain dates; intraday bars keep the clock.
func fmtDate(t time.Time) string {
	if h, m, s := t.Clock(); h == 0 && m == 0 && s == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}
