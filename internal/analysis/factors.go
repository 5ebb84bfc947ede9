package analysis

import "TrendScope/internal/model"

// RSI zone boundaries.
const (
	RSIOversoldLevel   = 30.0
	RSIOverboughtLevel = 70.0
)

// classifyRSIZone buckets the latest RSI reading.
func classifyRSIZone(rsi model.Value) model.RSIZone {
	if !rsi.Valid {
		return model.RSIUnknown
	}
	switch {
	case rsi.Float <= RSIOversoldLevel:
		return model.RSIOversold
	case rsi.Float >= RSIOverboughtLevel:
		return model.RSIOverbought
	default:
		return model.RSINeutral
	}
}

// classifyMAAlignment checks the ordering of close, MA20, MA50 and MA200.
// Bull stack: close > MA20 > MA50 > MA200
// Bear stack: close < MA20 < MA50 < MA200
func classifyMAAlignment(closePrice float64, ma20, ma50, ma200 model.Value) model.MAAlignment {
	if !ma20.Valid || !ma50.Valid || !ma200.Valid {
		return model.MAUnknown
	}
	bullish := closePrice > ma20.Float && ma20.Float > ma50.Float && ma50.Float > ma200.Float
	bearish := closePrice < ma20.Float && ma20.Float < ma50.Float && ma50.Float < ma200.Float

	switch {
	case bullish:
		return model.MABullishStack
	case bearish:
		return model.MABearishStack
	default:
		return model.MAMixed
	}
}
