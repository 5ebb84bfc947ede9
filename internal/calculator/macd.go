package calculator

import (
	"fmt"

	"TrendScope/internal/model"
)

// Default MACD spans.
const (
	MACDFastSpan   = 12
	MACDSlowSpan   = 26
	MACDSignalSpan = 9
)

// MACDSeries returns the MACD line (fast EMA minus slow EMA of closes) and its
// signal line (EMA of the MACD line). Both are defined at every position.
func MACDSeries(closes []float64, fast, slow, signal int) (macd, sig []model.Value, err error) {
	if fast >= slow {
		return nil, nil, fmt.Errorf("macd fast span %d must be below slow span %d: %w", fast, slow, ErrInvalidPeriod)
	}
	fastEMA, err := EMASeries(closes, fast)
	if err != nil {
		return nil, nil, err
	}
	slowEMA, err := EMASeries(closes, slow)
	if err != nil {
		return nil, nil, err
	}

	line := make([]float64, len(closes))
	for i := range closes {
		line[i] = fastEMA[i] - slowEMA[i]
	}
	signalEMA, err := EMASeries(line, signal)
	if err != nil {
		return nil, nil, err
	}

	macd = make([]model.Value, len(closes))
	sig = make([]model.Value, len(closes))
	for i := range closes {
		macd[i] = model.Defined(line[i])
		sig[i] = model.Defined(signalEMA[i])
	}
	return macd, sig, nil
}
