package calculator

import (
	"math"
	"testing"
	"time"

	"TrendScope/internal/model"
)

var baseTime = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

// barsFromCloses builds daily bars whose high/low straddle the close by one unit.
func barsFromCloses(closes ...float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   baseTime.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

// barsFromHighLow builds bars from paired highs and lows.
func barsFromHighLow(highs, lows []float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(highs))
	for i := range highs {
		mid := (highs[i] + lows[i]) / 2
		bars[i] = model.OHLCV{
			Time:  baseTime.AddDate(0, 0, i),
			Open:  mid,
			High:  highs[i],
			Low:   lows[i],
			Close: mid,
		}
	}
	return bars
}

func linear(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func assertClose(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %.10f, want %.10f (diff=%.3g)", label, got, want, math.Abs(got-want))
	}
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
