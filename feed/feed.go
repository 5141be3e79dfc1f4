// Package feed reads tabular OHLC data into a market.Series, resolving
// flexible column names once at ingestion so everything downstream
// operates on typed candles only.
package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"candlescan/market"
)

// Date layouts tried in order when parsing the date column.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Loader reads candle files.
type Loader struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads the file at path into a date-ordered series. Plain .csv is
// read directly; .xz and .zip inputs are decompressed first. Rows need
// not be pre-sorted: the series is stable-sorted by date and then
// checked, so unparsable dates and conflicting duplicates fail the load
// instead of being dropped.
func (l *Loader) Load(path string) (market.Series, error) {
	r, closeFn, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	s, err := l.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l.log.Debug().Str("path", path).Int("rows", len(s)).Msg("loaded candle file")
	return s, nil
}

// Read decodes CSV candle data from r.
func (l *Loader) Read(r io.Reader) (market.Series, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, market.ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var s market.Series
	for i := 0; ; i++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", i, err)
		}

		c, err := parseCandle(record, cols, i)
		if err != nil {
			return nil, err
		}
		s = append(s, c)
	}

	if len(s) == 0 {
		return nil, market.ErrEmptyInput
	}

	s.Sort()
	if err := s.CheckOrdered(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseCandle(record []string, cols columnMap, row int) (market.Candle, error) {
	var c market.Candle
	var err error

	if c.Date, err = parseDate(record[cols["date"]]); err != nil {
		return c, &market.OrderingError{Index: row, Reason: err.Error()}
	}

	fields := []struct {
		name string
		dst  *float64
	}{
		{"open", &c.Open},
		{"high", &c.High},
		{"low", &c.Low},
		{"close", &c.Close},
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(record[cols[f.name]]), 64)
		if err != nil {
			return c, &market.ValidationError{
				Index: row, Date: c.Date,
				Reason: fmt.Sprintf("unparsable %s value %q", f.name, record[cols[f.name]]),
			}
		}
		*f.dst = v
	}

	if idx, ok := cols["volume"]; ok {
		raw := strings.TrimSpace(record[idx])
		if raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return c, &market.ValidationError{
					Index: row, Date: c.Date,
					Reason: fmt.Sprintf("unparsable volume value %q", raw),
				}
			}
			c.Volume = int64(v)
		}
	}

	return c, nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", raw)
}
