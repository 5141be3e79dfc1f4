// Package patterns classifies ordered candle series into named
// candlestick patterns and aggregates the hits into per-row labels.
package patterns

// Tag identifies one candlestick pattern class.
type Tag string

const (
	Doji             Tag = "Doji"
	Hammer           Tag = "Hammer"
	ShootingStar     Tag = "ShootingStar"
	BearishEngulfing Tag = "BearishEngulfing"
	BullishEngulfing Tag = "BullishEngulfing"
	EveningStar      Tag = "EveningStar"
	MorningStar      Tag = "MorningStar"
)

// Tags lists every pattern tag in canonical label order: single-candle
// patterns before multi-candle, alphabetical within each group. Labels
// are joined in this order so output is reproducible regardless of
// detector iteration order.
var Tags = []Tag{
	Doji,
	Hammer,
	ShootingStar,
	BearishEngulfing,
	BullishEngulfing,
	EveningStar,
	MorningStar,
}
