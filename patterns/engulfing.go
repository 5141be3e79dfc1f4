package patterns

import "candlescan/market"

// IsBullishEngulfing reports whether cur's body contains prev's body
// after a bearish prev candle. Containment is inclusive at both edges,
// consistently with the bearish mirror.
func IsBullishEngulfing(prev, cur market.Candle) bool {
	if !prev.IsBearish() || !cur.IsBullish() {
		return false
	}
	return cur.Open <= prev.Close && cur.Close >= prev.Open
}

// IsBearishEngulfing is the mirror: bullish prev candle whose body is
// contained by a bearish cur candle.
func IsBearishEngulfing(prev, cur market.Candle) bool {
	if !prev.IsBullish() || !cur.IsBearish() {
		return false
	}
	return cur.Open >= prev.Close && cur.Close <= prev.Open
}
