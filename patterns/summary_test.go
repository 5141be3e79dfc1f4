package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candlescan/market"
)

func labeledFixture(t *testing.T) []LabeledRow {
	t.Helper()

	// Doji at rows 0 and 2, bearish engulfing at row 3, bullish
	// engulfing at row 4.
	s := market.Series{
		{Date: day(1), Open: 100, High: 105, Low: 95, Close: 100.4},
		{Date: day(2), Open: 100, High: 110, Low: 99, Close: 109},
		{Date: day(3), Open: 109, High: 114, Low: 104, Close: 109.4},
		{Date: day(4), Open: 110, High: 111, Low: 99, Close: 100},
		{Date: day(5), Open: 99, High: 113, Low: 98, Close: 112},
	}

	rows, err := Analyze(s, Default())
	require.NoError(t, err)
	return rows
}

func TestDates(t *testing.T) {
	rows := labeledFixture(t)

	dojis := Dates(rows, Doji)
	require.Len(t, dojis, 2)
	assert.Equal(t, day(1), dojis[0])
	assert.Equal(t, day(3), dojis[1])
	assert.True(t, dojis[0].Before(dojis[1]))

	engulf := Dates(rows, BullishEngulfing)
	require.Len(t, engulf, 1)
	assert.Equal(t, day(5), engulf[0])

	// A pattern that never fired yields an empty slice, not nil or error.
	assert.Empty(t, Dates(rows, MorningStar))
}

func TestSummarizeConsistency(t *testing.T) {
	rows := labeledFixture(t)
	sum := Summarize(rows)

	// Every tag from the closed set is present, and its count matches
	// the date list from Dates.
	require.Len(t, sum, len(Tags))
	for _, tag := range Tags {
		stat, ok := sum[tag]
		require.True(t, ok)
		assert.Equal(t, stat.Count, len(stat.Dates))
		assert.Equal(t, Dates(rows, tag), stat.Dates)
	}

	assert.Equal(t, 2, sum[Doji].Count)
	assert.Equal(t, 1, sum[BearishEngulfing].Count)
	assert.Equal(t, 1, sum[BullishEngulfing].Count)
	assert.Equal(t, 0, sum[EveningStar].Count)
}

func TestHasExactTagMatch(t *testing.T) {
	r := LabeledRow{Label: "BullishEngulfing"}
	assert.True(t, r.Has(BullishEngulfing))
	assert.False(t, r.Has(BearishEngulfing))

	multi := LabeledRow{Label: "Doji,Hammer"}
	assert.True(t, multi.Has(Doji))
	assert.True(t, multi.Has(Hammer))
	assert.False(t, multi.Has(ShootingStar))

	assert.False(t, LabeledRow{}.Has(Doji))
}
