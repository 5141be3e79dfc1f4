package patterns

import (
	"candlescan/indicators"
	"candlescan/market"
)

// IsHammer reports a long lower shadow with a small upper shadow after a
// local downtrend. The trend check (close below the moving average of
// the preceding TrendLookback closes) keeps the same shape in an uptrend
// from firing, where it is conventionally a different pattern. Rows
// without a full lookback window never fire.
func IsHammer(s market.Series, i int, cfg Config) bool {
	c := s[i]
	if c.Range() == 0 {
		return false
	}
	if c.LowerShadow() < cfg.ShadowBodyRatio*c.Body() {
		return false
	}
	if c.UpperShadow() > c.Body() {
		return false
	}
	ma, ok := trendMA(s, i, cfg)
	return ok && c.Close < ma
}

// IsShootingStar is the mirror of IsHammer: long upper shadow, small
// lower shadow, after a local uptrend.
func IsShootingStar(s market.Series, i int, cfg Config) bool {
	c := s[i]
	if c.Range() == 0 {
		return false
	}
	if c.UpperShadow() < cfg.ShadowBodyRatio*c.Body() {
		return false
	}
	if c.LowerShadow() > c.Body() {
		return false
	}
	ma, ok := trendMA(s, i, cfg)
	return ok && c.Close > ma
}

// trendMA is the moving average of the TrendLookback closes preceding
// index i; ok is false when the lookback window does not fit.
func trendMA(s market.Series, i int, cfg Config) (float64, bool) {
	prev := s.Window(i-1, cfg.TrendLookback)
	if prev == nil {
		return 0, false
	}
	ma, err := indicators.MA(prev, cfg.TrendLookback)
	if err != nil {
		return 0, false
	}
	return ma, true
}
