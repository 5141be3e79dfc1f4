package patterns

import (
	"strings"

	"candlescan/market"
)

// LabeledRow is a candle plus its aggregated pattern label: the
// comma-joined canonical list of every pattern confirmed at that row,
// empty when none fired.
type LabeledRow struct {
	market.Candle
	Label string
}

// Has reports whether the row's label contains the tag.
func (r LabeledRow) Has(tag Tag) bool {
	if r.Label == "" {
		return false
	}
	for _, part := range strings.Split(r.Label, ",") {
		if part == string(tag) {
			return true
		}
	}
	return false
}

// Analyze runs every detector over the series and returns one labeled
// row per input row, in input order. The series must be in ascending
// date order (see market.Series.Sort); out-of-order input is an
// OrderingError. In strict mode (the default) the
// whole run fails on the first invalid candle; with cfg.SkipInvalid the
// invalid rows are dropped instead (see AnalyzeWithReport for the
// skipped-row diagnostics).
func Analyze(s market.Series, cfg Config) ([]LabeledRow, error) {
	rows, _, err := AnalyzeWithReport(s, cfg)
	return rows, err
}

// AnalyzeWithReport is Analyze plus the list of rows skipped in
// permissive mode. In strict mode the skipped list is always empty.
func AnalyzeWithReport(s market.Series, cfg Config) ([]LabeledRow, []*market.ValidationError, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if len(s) == 0 {
		return nil, nil, market.ErrEmptyInput
	}
	if err := s.CheckOrdered(); err != nil {
		return nil, nil, err
	}

	clean := make(market.Series, 0, len(s))
	var skipped []*market.ValidationError
	for i, c := range s {
		if err := c.Validate(); err != nil {
			verr := &market.ValidationError{Index: i, Date: c.Date, Reason: err.Error()}
			if !cfg.SkipInvalid {
				return nil, nil, verr
			}
			skipped = append(skipped, verr)
			continue
		}
		clean = append(clean, c)
	}

	rows := make([]LabeledRow, len(clean))
	for i := range clean {
		rows[i] = LabeledRow{Candle: clean[i], Label: labelAt(clean, i, cfg)}
	}
	return rows, skipped, nil
}

// labelAt evaluates every detector whose window fits within [0, i] and
// joins the hits in canonical tag order.
func labelAt(s market.Series, i int, cfg Config) string {
	var hits []string

	if IsDoji(s[i], cfg) {
		hits = append(hits, string(Doji))
	}
	if IsHammer(s, i, cfg) {
		hits = append(hits, string(Hammer))
	}
	if IsShootingStar(s, i, cfg) {
		hits = append(hits, string(ShootingStar))
	}
	if i >= 1 {
		if IsBearishEngulfing(s[i-1], s[i]) {
			hits = append(hits, string(BearishEngulfing))
		}
		if IsBullishEngulfing(s[i-1], s[i]) {
			hits = append(hits, string(BullishEngulfing))
		}
	}
	if i >= 2 {
		if IsEveningStar(s[i-2], s[i-1], s[i], cfg) {
			hits = append(hits, string(EveningStar))
		}
		if IsMorningStar(s[i-2], s[i-1], s[i], cfg) {
			hits = append(hits, string(MorningStar))
		}
	}

	return strings.Join(hits, ",")
}
