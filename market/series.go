package market

import "sort"

// Series is an ordered list of candles. Insertion order is chronological
// order once Sort and CheckOrdered have run.
type Series []Candle

// Validate checks every candle and returns a positional ValidationError
// for the first violation.
func (s Series) Validate() error {
	if len(s) == 0 {
		return ErrEmptyInput
	}
	for i, c := range s {
		if err := c.Validate(); err != nil {
			return &ValidationError{Index: i, Date: c.Date, Reason: err.Error()}
		}
	}
	return nil
}

// Sort orders the series by date ascending. The sort is stable so that
// duplicate dates keep their source order.
func (s Series) Sort() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Date.Before(s[j].Date)
	})
}

// CheckOrdered verifies ascending date order. Duplicate dates are
// tolerated only when the rows are identical; conflicting duplicates and
// out-of-order rows are an OrderingError.
func (s Series) CheckOrdered() error {
	for i := 1; i < len(s); i++ {
		prev, cur := s[i-1], s[i]
		if cur.Date.Before(prev.Date) {
			return &OrderingError{Index: i, Date: cur.Date, Reason: "date before previous row"}
		}
		if cur.Date.Equal(prev.Date) && cur != prev {
			return &OrderingError{Index: i, Date: cur.Date, Reason: "duplicate date with conflicting data"}
		}
	}
	return nil
}

// Window returns the n candles ending at index i inclusive, or nil when
// the window would extend before the start of the series.
func (s Series) Window(i, n int) []Candle {
	if n <= 0 || i-n+1 < 0 || i >= len(s) {
		return nil
	}
	return s[i-n+1 : i+1]
}
