package model

// TrendLabel classifies the direction of the most recent bars.
type TrendLabel string

const (
	TrendBullish  TrendLabel = "BULLISH"
	TrendBearish  TrendLabel = "BEARISH"
	TrendSideways TrendLabel = "SIDEWAYS"
)

// Description returns the human-readable name used in reports.
func (t TrendLabel) Description() string {
	switch t {
	case TrendBullish:
		return "Bullish Trend"
	case TrendBearish:
		return "Bearish Trend"
	case TrendSideways:
		return "Sideways Trend"
	default:
		return "Unknown Trend"
	}
}

// RSIZone places the latest RSI reading into a momentum bucket.
type RSIZone string

const (
	RSIOversold   RSIZone = "OVERSOLD"
	RSINeutral    RSIZone = "NEUTRAL"
	RSIOverbought RSIZone = "OVERBOUGHT"
	RSIUnknown    RSIZone = "UNKNOWN"
)

// MAAlignment describes how the close and the moving averages are stacked.
type MAAlignment string

const (
	MABullishStack MAAlignment = "BULLISH_STACK" // close > MA20 > MA50 > MA200
	MABearishStack MAAlignment = "BEARISH_STACK" // close < MA20 < MA50 < MA200
	MAMixed        MAAlignment = "MIXED"
	MAUnknown      MAAlignment = "UNKNOWN"
)
