package patterns

import "fmt"

// Config holds the detector thresholds. The zero value is not usable;
// start from Default and override as needed. Thresholds are empirically
// chosen conventions, not fixed law — they are configuration on purpose.
type Config struct {
	// DojiMaxBodyRatio is the largest body/range ratio still counted as
	// a Doji.
	DojiMaxBodyRatio float64 `json:"doji_max_body_ratio" yaml:"doji_max_body_ratio"`

	// ShadowBodyRatio is the minimum shadow-to-body multiple for Hammer
	// (lower shadow) and ShootingStar (upper shadow).
	ShadowBodyRatio float64 `json:"shadow_body_ratio" yaml:"shadow_body_ratio"`

	// TrendLookback is how many preceding closes feed the moving average
	// used as trend context for Hammer and ShootingStar.
	TrendLookback int `json:"trend_lookback" yaml:"trend_lookback"`

	// StarSmallBodyRatio bounds the middle star candle: its body must be
	// at most this fraction of the window's mean body.
	StarSmallBodyRatio float64 `json:"star_small_body_ratio" yaml:"star_small_body_ratio"`

	// StarLargeBodyRatio bounds the outer star candles: their bodies
	// must be at least this multiple of the window's mean body.
	StarLargeBodyRatio float64 `json:"star_large_body_ratio" yaml:"star_large_body_ratio"`

	// SkipInvalid switches the analyzer to permissive mode: invalid rows
	// are skipped and reported instead of failing the whole run.
	SkipInvalid bool `json:"skip_invalid" yaml:"skip_invalid"`
}

// Default returns the documented default thresholds.
func Default() Config {
	return Config{
		DojiMaxBodyRatio:   0.1,
		ShadowBodyRatio:    2.0,
		TrendLookback:      3,
		StarSmallBodyRatio: 0.5,
		StarLargeBodyRatio: 1.0,
	}
}

// Validate checks that the thresholds are usable.
func (c Config) Validate() error {
	if c.DojiMaxBodyRatio <= 0 || c.DojiMaxBodyRatio >= 1 {
		return fmt.Errorf("doji_max_body_ratio must be in (0, 1), got %g", c.DojiMaxBodyRatio)
	}
	if c.ShadowBodyRatio <= 0 {
		return fmt.Errorf("shadow_body_ratio must be positive, got %g", c.ShadowBodyRatio)
	}
	if c.TrendLookback < 1 {
		return fmt.Errorf("trend_lookback must be at least 1, got %d", c.TrendLookback)
	}
	if c.StarSmallBodyRatio <= 0 {
		return fmt.Errorf("star_small_body_ratio must be positive, got %g", c.StarSmallBodyRatio)
	}
	if c.StarLargeBodyRatio <= 0 {
		return fmt.Errorf("star_large_body_ratio must be positive, got %g", c.StarLargeBodyRatio)
	}
	if c.StarSmallBodyRatio >= c.StarLargeBodyRatio {
		return fmt.Errorf("star_small_body_ratio (%g) must be below star_large_body_ratio (%g)",
			c.StarSmallBodyRatio, c.StarLargeBodyRatio)
	}
	return nil
}
