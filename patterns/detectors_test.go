package patterns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"candlescan/market"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestIsDoji(t *testing.T) {
	cfg := Default()

	// Small body relative to range.
	assert.True(t, IsDoji(market.Candle{Open: 100, High: 105, Low: 95, Close: 100.5}, cfg))

	// Large body.
	assert.False(t, IsDoji(market.Candle{Open: 100, High: 110, Low: 99, Close: 109}, cfg))

	// A flat candle is a degenerate case, never a Doji.
	assert.False(t, IsDoji(market.Candle{Open: 100, High: 100, Low: 100, Close: 100}, cfg))
}

// downtrendTo returns three valid candles whose closes step down to the
// given final close, for use as hammer trend context.
func downtrendTo(last float64) market.Series {
	return market.Series{
		{Date: day(1), Open: last + 5, High: last + 6, Low: last + 3, Close: last + 4},
		{Date: day(2), Open: last + 4, High: last + 5, Low: last + 1, Close: last + 2},
		{Date: day(3), Open: last + 2, High: last + 3, Low: last - 1, Close: last},
	}
}

func TestIsHammer(t *testing.T) {
	cfg := Default()

	s := append(downtrendTo(100),
		market.Candle{Date: day(4), Open: 100, High: 101, Low: 90, Close: 101})

	assert.True(t, IsHammer(s, 3, cfg))
	assert.False(t, IsShootingStar(s, 3, cfg))

	// Same shape without the lookback window never fires.
	lone := market.Series{s[3]}
	assert.False(t, IsHammer(lone, 0, cfg))
}

func TestIsHammerNeedsDowntrend(t *testing.T) {
	cfg := Default()

	// Uptrend context: closes 96, 98, 100, then the hammer shape closing
	// at 101 sits above the moving average.
	s := market.Series{
		{Date: day(1), Open: 95, High: 97, Low: 94, Close: 96},
		{Date: day(2), Open: 96, High: 99, Low: 95, Close: 98},
		{Date: day(3), Open: 98, High: 101, Low: 97, Close: 100},
		{Date: day(4), Open: 100, High: 101, Low: 90, Close: 101},
	}
	assert.False(t, IsHammer(s, 3, cfg))
}

func TestIsShootingStar(t *testing.T) {
	cfg := Default()

	s := market.Series{
		{Date: day(1), Open: 95, High: 97, Low: 94, Close: 96},
		{Date: day(2), Open: 96, High: 99, Low: 95, Close: 98},
		{Date: day(3), Open: 98, High: 101, Low: 97, Close: 100},
		{Date: day(4), Open: 101, High: 111, Low: 100, Close: 100},
	}

	assert.True(t, IsShootingStar(s, 3, cfg))
	assert.False(t, IsHammer(s, 3, cfg))
}

func TestEngulfing(t *testing.T) {
	prev := market.Candle{Date: day(1), Open: 110, High: 111, Low: 99, Close: 100}
	cur := market.Candle{Date: day(2), Open: 99, High: 113, Low: 98, Close: 112}

	assert.True(t, IsBullishEngulfing(prev, cur))
	assert.False(t, IsBearishEngulfing(prev, cur))

	// Mirror direction: a bearish body containing the bullish one.
	up := market.Candle{Date: day(1), Open: 100, High: 111, Low: 99, Close: 110}
	down := market.Candle{Date: day(2), Open: 111, High: 112, Low: 98, Close: 99}
	assert.True(t, IsBearishEngulfing(up, down))
	assert.False(t, IsBullishEngulfing(up, down))

	// Swapping the bullish pair does not make a bearish one: the
	// bearish body must contain the bullish body, not merely follow it.
	assert.False(t, IsBearishEngulfing(cur, prev))

	// Body only partially contained.
	small := market.Candle{Date: day(2), Open: 101, High: 113, Low: 100, Close: 112}
	assert.False(t, IsBullishEngulfing(prev, small))
}

func TestMorningStar(t *testing.T) {
	cfg := Default()

	first := market.Candle{Date: day(1), Open: 110, High: 111, Low: 99, Close: 100}
	star := market.Candle{Date: day(2), Open: 97, High: 97.5, Low: 96, Close: 96.5}
	third := market.Candle{Date: day(3), Open: 98, High: 110, Low: 97.5, Close: 109}

	assert.True(t, IsMorningStar(first, star, third, cfg))
	assert.False(t, IsEveningStar(first, star, third, cfg))

	// No gap below the first body: star body overlaps it.
	noGap := market.Candle{Date: day(2), Open: 101, High: 102, Low: 100, Close: 100.5}
	assert.False(t, IsMorningStar(first, noGap, third, cfg))

	// Third candle fails to reclaim the first body's midpoint.
	weak := market.Candle{Date: day(3), Open: 98, High: 104, Low: 97.5, Close: 103}
	assert.False(t, IsMorningStar(first, star, weak, cfg))
}

func TestEveningStar(t *testing.T) {
	cfg := Default()

	first := market.Candle{Date: day(1), Open: 100, High: 111, Low: 99, Close: 110}
	star := market.Candle{Date: day(2), Open: 113, High: 114, Low: 112.5, Close: 113.5}
	third := market.Candle{Date: day(3), Open: 112, High: 112.5, Low: 100, Close: 101}

	assert.True(t, IsEveningStar(first, star, third, cfg))
	assert.False(t, IsMorningStar(first, star, third, cfg))
}

func TestStarsFlatWindowNeverFires(t *testing.T) {
	cfg := Default()
	flat := market.Candle{Open: 100, High: 100, Low: 100, Close: 100}
	assert.False(t, IsMorningStar(flat, flat, flat, cfg))
	assert.False(t, IsEveningStar(flat, flat, flat, cfg))
}
