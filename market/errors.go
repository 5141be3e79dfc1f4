package market

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyInput is returned when zero candles are supplied.
var ErrEmptyInput = errors.New("no candles supplied")

// ValidationError reports a candle that violates the OHLC invariant,
// tagged with its position in the series.
type ValidationError struct {
	Index  int
	Date   time.Time
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Date.IsZero() {
		return fmt.Sprintf("invalid candle at index %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid candle at index %d (%s): %s",
		e.Index, e.Date.Format("2006-01-02"), e.Reason)
}

// OrderingError reports a series whose dates are not strictly orderable.
type OrderingError struct {
	Index  int
	Date   time.Time
	Reason string
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("bad candle ordering at index %d (%s): %s",
		e.Index, e.Date.Format("2006-01-02"), e.Reason)
}

func errReason(s string) error {
	return errors.New(s)
}
