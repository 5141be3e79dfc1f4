package feed

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns that could not be resolved in
// the input header, alongside the columns that were actually present.
type SchemaError struct {
	Missing []string
	Columns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns %v (have %v)", e.Missing, e.Columns)
}

// Column synonyms, matched case-insensitively. The date and OHLC
// columns are required; volume is optional.
var synonyms = map[string][]string{
	"date":   {"date", "time", "timestamp", "datetime"},
	"open":   {"open", "o"},
	"high":   {"high", "h"},
	"low":    {"low", "l"},
	"close":  {"close", "c", "last"},
	"volume": {"volume", "vol", "v"},
}

var required = []string{"date", "open", "high", "low", "close"}

// columnMap maps canonical column names to header indexes. Volume is
// absent from the map when the input has no volume column.
type columnMap map[string]int

// resolveColumns matches the header against the synonym table once, so
// every later row access is by fixed index instead of name lookup.
func resolveColumns(header []string) (columnMap, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.ToLower(strings.TrimSpace(h))] = i
	}

	cols := make(columnMap, len(synonyms))
	for canonical, names := range synonyms {
		for _, name := range names {
			if idx, ok := byName[name]; ok {
				cols[canonical] = idx
				break
			}
		}
	}

	var missing []string
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing, Columns: header}
	}
	return cols, nil
}
