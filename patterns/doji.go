package patterns

import "candlescan/market"

// IsDoji reports whether the candle's body is small relative to its
// range. A zero-range candle is a distinct degenerate case and is never
// classified as Doji.
func IsDoji(c market.Candle, cfg Config) bool {
	if c.Range() == 0 {
		return false
	}
	return c.BodyRatio() <= cfg.DojiMaxBodyRatio
}
