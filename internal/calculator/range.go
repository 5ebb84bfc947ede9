package calculator

import (
	"math"

	"TrendScope/internal/model"
)

// ComputeSupportResistance returns the lowest low and the highest high over the
// whole series. How far back the levels reach is decided by how much history
// the caller passes in.
func ComputeSupportResistance(bars []model.OHLCV) (model.SupportResistance, error) {
	high, low, err := CalculateRange(bars, len(bars))
	if err != nil {
		return model.SupportResistance{}, err
	}
	return model.SupportResistance{Support: low, Resistance: high}, nil
}

// CalculateRange scans the most recent lookback bars and returns the high and low.
// A lookback larger than the series scans all of it.
func CalculateRange(bars []model.OHLCV, lookback int) (high, low float64, err error) {
	if len(bars) == 0 {
		return 0, 0, ErrEmptySeries
	}
	if lookback <= 0 {
		return 0, 0, ErrInvalidPeriod
	}
	n := len(bars)
	start := n - lookback
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < n; i++ {
		if bars[i].High > high {
			high = bars[i].High
		}
		if bars[i].Low < low {
			low = bars[i].Low
		}
	}
	return high, low, nil
}
