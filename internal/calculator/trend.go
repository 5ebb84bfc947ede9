package calculator

import (
	"fmt"

	"TrendScope/internal/model"
)

// DefaultTrendWindow is the number of trailing bars ClassifyTrend inspects.
const DefaultTrendWindow = 10

// ClassifyTrend labels the trailing window bars. Bullish requires every low and
// every high to be strictly above its predecessor; Bearish requires both to be
// strictly below. A single tie or reversal anywhere in the window yields Sideways.
func ClassifyTrend(bars []model.OHLCV, window int) (model.TrendLabel, error) {
	if window < 2 {
		return "", fmt.Errorf("trend window %d: %w", window, ErrInvalidPeriod)
	}
	if len(bars) < window {
		return "", &InsufficientDataError{Op: "trend", Need: window, Have: len(bars)}
	}

	recent := bars[len(bars)-window:]
	rising, falling := true, true
	for i := 1; i < len(recent); i++ {
		prev, cur := recent[i-1], recent[i]
		if !(cur.Low > prev.Low && cur.High > prev.High) {
			rising = false
		}
		if !(cur.Low < prev.Low && cur.High < prev.High) {
			falling = false
		}
		if !rising && !falling {
			break
		}
	}

	switch {
	case rising:
		return model.TrendBullish, nil
	case falling:
		return model.TrendBearish, nil
	default:
		return model.TrendSideways, nil
	}
}
