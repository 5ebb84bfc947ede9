package calculator

import "fmt"

// EMASeries computes an exponential moving average with smoothing 2/(span+1).
// The first output equals the first input and every position is defined.
func EMASeries(values []float64, span int) ([]float64, error) {
	if span <= 0 {
		return nil, fmt.Errorf("ema span %d: %w", span, ErrInvalidPeriod)
	}
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out, nil
	}
	alpha := 2.0 / (float64(span) + 1.0)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}
