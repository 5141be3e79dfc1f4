package patterns

import "candlescan/market"

// IsMorningStar reports a bullish reversal over three candles: a large
// bearish candle, a small-bodied candle whose body gaps below it, and a
// large bullish candle closing back above the first body's midpoint.
// "Large" and "small" are relative to the mean body of the window; a
// window of flat candles (mean body 0) never fires.
func IsMorningStar(first, second, third market.Candle, cfg Config) bool {
	avg := (first.Body() + second.Body() + third.Body()) / 3
	if avg == 0 {
		return false
	}
	if !first.IsBearish() || first.Body() < cfg.StarLargeBodyRatio*avg {
		return false
	}
	if second.Body() > cfg.StarSmallBodyRatio*avg {
		return false
	}
	// Whole body of the star gaps below the first body.
	if bodyHigh(second) >= bodyLow(first) {
		return false
	}
	if !third.IsBullish() || third.Body() < cfg.StarLargeBodyRatio*avg {
		return false
	}
	return third.Close > first.Midpoint()
}

// IsEveningStar is the mirror of IsMorningStar: bearish reversal after
// an uptrend.
func IsEveningStar(first, second, third market.Candle, cfg Config) bool {
	avg := (first.Body() + second.Body() + third.Body()) / 3
	if avg == 0 {
		return false
	}
	if !first.IsBullish() || first.Body() < cfg.StarLargeBodyRatio*avg {
		return false
	}
	if second.Body() > cfg.StarSmallBodyRatio*avg {
		return false
	}
	if bodyLow(second) <= bodyHigh(first) {
		return false
	}
	if !third.IsBearish() || third.Body() < cfg.StarLargeBodyRatio*avg {
		return false
	}
	return third.Close < first.Midpoint()
}

func bodyHigh(c market.Candle) float64 {
	if c.Open > c.Close {
		return c.Open
	}
	return c.Close
}

func bodyLow(c market.Candle) float64 {
	if c.Open < c.Close {
		return c.Open
	}
	return c.Close
}
