package calculator

import (
	"fmt"

	"github.com/markcheno/go-talib"

	"TrendScope/internal/model"
)

// Moving average windows reported by ComputeIndicators.
const (
	MA20Period  = 20
	MA50Period  = 50
	MA200Period = 200
)

// SMASeries computes the trailing simple moving average of values over period.
// Positions before the first full window are undefined.
func SMASeries(values []float64, period int) ([]model.Value, error) {
	if period <= 0 {
		return nil, fmt.Errorf("sma period %d: %w", period, ErrInvalidPeriod)
	}
	out := make([]model.Value, len(values))
	// talib.Sma indexes past the input when it is shorter than one window.
	if len(values) < period {
		return out, nil
	}
	sma := talib.Sma(values, period)
	for i := period - 1; i < len(values); i++ {
		out[i] = model.Defined(sma[i])
	}
	return out, nil
}

// CalculateSMA computes the simple moving average of the last period prices.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, fmt.Errorf("sma period %d: %w", period, ErrInvalidPeriod)
	}
	if len(prices) < period {
		return 0, &InsufficientDataError{Op: "sma", Need: period, Have: len(prices)}
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// Closes extracts the close prices of bars.
func Closes(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
