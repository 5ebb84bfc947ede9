package calculator

import (
	"fmt"

	"TrendScope/internal/model"
)

// RSIPeriod is the lookback used by ComputeIndicators.
const RSIPeriod = 14

// RSISeries computes RSI from a simple rolling mean of gains and losses.
// Position i is defined once period close-to-close changes exist (i >= period).
// A window without losses saturates at 100; a window without any movement is undefined.
func RSISeries(closes []float64, period int) ([]model.Value, error) {
	if period <= 0 {
		return nil, fmt.Errorf("rsi period %d: %w", period, ErrInvalidPeriod)
	}
	out := make([]model.Value, len(closes))
	if len(closes) < 2 {
		return out, nil
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else if change < 0 {
			losses[i] = -change
		}
	}

	// Windows are summed afresh: a loss-free window must sum to exactly zero.
	for i := period; i < len(closes); i++ {
		var sumGain, sumLoss float64
		for j := i - period + 1; j <= i; j++ {
			sumGain += gains[j]
			sumLoss += losses[j]
		}
		out[i] = rsiValue(sumGain/float64(period), sumLoss/float64(period))
	}
	return out, nil
}

func rsiValue(avgGain, avgLoss float64) model.Value {
	if avgLoss == 0 {
		if avgGain == 0 {
			return model.Undefined
		}
		return model.Defined(100)
	}
	rs := avgGain / avgLoss
	return model.Defined(100.0 - 100.0/(1.0+rs))
}
