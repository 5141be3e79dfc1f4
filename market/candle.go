// Package market defines the OHLC candle value type and its geometry.
package market

import (
	"math"
	"time"
)

// Candle represents one OHLC (Open, High, Low, Close) price bar.
// Candles are value types; nothing in this package mutates them.
type Candle struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Body returns the absolute open-to-close distance.
func (c Candle) Body() float64 {
	return math.Abs(c.Close - c.Open)
}

// Range returns the high-to-low distance. A zero range is a valid
// degenerate candle (open=high=low=close).
func (c Candle) Range() float64 {
	return c.High - c.Low
}

// UpperShadow returns the wick above the body.
func (c Candle) UpperShadow() float64 {
	return c.High - math.Max(c.Open, c.Close)
}

// LowerShadow returns the wick below the body.
func (c Candle) LowerShadow() float64 {
	return math.Min(c.Open, c.Close) - c.Low
}

// Midpoint returns the midpoint of the body.
func (c Candle) Midpoint() float64 {
	return (c.Open + c.Close) / 2
}

// BodyRatio returns body/range, 0 for a zero-range candle.
func (c Candle) BodyRatio() float64 {
	r := c.Range()
	if r == 0 {
		return 0
	}
	return c.Body() / r
}

// UpperShadowRatio returns upperShadow/range, 0 for a zero-range candle.
func (c Candle) UpperShadowRatio() float64 {
	r := c.Range()
	if r == 0 {
		return 0
	}
	return c.UpperShadow() / r
}

// LowerShadowRatio returns lowerShadow/range, 0 for a zero-range candle.
func (c Candle) LowerShadowRatio() float64 {
	r := c.Range()
	if r == 0 {
		return 0
	}
	return c.LowerShadow() / r
}

func (c Candle) IsBullish() bool {
	return c.Close > c.Open
}

func (c Candle) IsBearish() bool {
	return c.Close < c.Open
}

// Validate checks the OHLC ordering invariant
// low <= min(open, close) <= max(open, close) <= high, that all prices
// are finite, and that volume is non-negative. Violations are reported,
// never silently corrected.
func (c Candle) Validate() error {
	for _, v := range []float64{c.Open, c.High, c.Low, c.Close} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errReason("non-finite price")
		}
	}
	if c.Volume < 0 {
		return errReason("negative volume")
	}
	if c.Low > c.High {
		return errReason("low above high")
	}
	if c.Open < c.Low || c.Open > c.High {
		return errReason("open outside low/high range")
	}
	if c.Close < c.Low || c.Close > c.High {
		return errReason("close outside low/high range")
	}
	return nil
}
