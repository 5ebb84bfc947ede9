package calculator

import (
	"errors"
	"testing"

	"TrendScope/internal/model"
)

func TestClassifyTrend(t *testing.T) {
	tieLows := linear(10, 100, 1)
	tieLows[5] = tieLows[4]

	reversalHighs := linear(10, 110, 1)
	reversalHighs[8] = reversalHighs[7] - 0.5

	tests := []struct {
		name  string
		highs []float64
		lows  []float64
		want  model.TrendLabel
	}{
		{"strictly rising", linear(10, 110, 1), linear(10, 100, 1), model.TrendBullish},
		{"strictly falling", linear(10, 110, -1), linear(10, 100, -1), model.TrendBearish},
		{"tie in lows", linear(10, 110, 1), tieLows, model.TrendSideways},
		{"single reversal in highs", reversalHighs, linear(10, 100, 1), model.TrendSideways},
		{"highs up lows down", linear(10, 110, 1), linear(10, 100, -1), model.TrendSideways},
		{"flat", linear(10, 110, 0), linear(10, 100, 0), model.TrendSideways},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyTrend(barsFromHighLow(tt.highs, tt.lows), DefaultTrendWindow)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestClassifyTrend_OnlyTrailingWindowCounts(t *testing.T) {
	// 5 choppy bars followed by 10 strictly rising ones.
	highs := append([]float64{130, 90, 140, 85, 150}, linear(10, 110, 1)...)
	lows := append([]float64{120, 80, 130, 75, 140}, linear(10, 100, 1)...)
	got, err := ClassifyTrend(barsFromHighLow(highs, lows), DefaultTrendWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != model.TrendBullish {
		t.Errorf("expected BULLISH, got %s", got)
	}
}

func TestClassifyTrend_WindowBoundary(t *testing.T) {
	nine := barsFromHighLow(linear(9, 110, 1), linear(9, 100, 1))
	_, err := ClassifyTrend(nine, DefaultTrendWindow)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData for 9 bars, got %v", err)
	}
	var ide *InsufficientDataError
	if !errors.As(err, &ide) || ide.Need != 10 || ide.Have != 9 {
		t.Errorf("expected need=10 have=9, got %+v", ide)
	}

	ten := barsFromHighLow(linear(10, 110, 1), linear(10, 100, 1))
	if _, err := ClassifyTrend(ten, DefaultTrendWindow); err != nil {
		t.Errorf("expected success on exactly 10 bars, got %v", err)
	}
}

func TestClassifyTrend_InvalidWindow(t *testing.T) {
	bars := barsFromCloses(linear(5, 1, 1)...)
	for _, w := range []int{-1, 0, 1} {
		if _, err := ClassifyTrend(bars, w); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("window %d: expected ErrInvalidPeriod, got %v", w, err)
		}
	}
}
