package analysis

import (
	"errors"
	"testing"
	"time"

	"TrendScope/internal/calculator"
	"TrendScope/internal/model"
)

func risingSeries(n int) *model.PriceSeries {
	start := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, n)
	for i := range bars {
		c := 100 + float64(i)
		bars[i] = model.OHLCV{Time: start.AddDate(0, 0, i), Open: c - 0.5, High: c + 1, Low: c - 1, Close: c}
	}
	return &model.PriceSeries{Symbol: "TEST", Period: "1y", Interval: "1d", Bars: bars}
}

func TestEvaluate_BullishMarket(t *testing.T) {
	series := risingSeries(250)
	rep, err := Evaluate(series, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Trend != model.TrendBullish {
		t.Errorf("expected BULLISH trend, got %s", rep.Trend)
	}
	if rep.RSIZone != model.RSIOverbought {
		t.Errorf("expected OVERBOUGHT zone for a loss-free run, got %s", rep.RSIZone)
	}
	if rep.MAAlignment != model.MABullishStack {
		t.Errorf("expected BULLISH_STACK, got %s", rep.MAAlignment)
	}
	if rep.Levels.Support != 99 || rep.Levels.Resistance != 350 {
		t.Errorf("unexpected levels %+v", rep.Levels)
	}
	if rep.Bars != 250 || rep.Symbol != "TEST" {
		t.Errorf("unexpected header: bars=%d symbol=%s", rep.Bars, rep.Symbol)
	}
	if len(rep.Latest) != len(model.IndicatorNames) {
		t.Errorf("expected %d latest readings, got %d", len(model.IndicatorNames), len(rep.Latest))
	}
	if rep.BandPosition <= 0.9 {
		t.Errorf("last close should sit near resistance, got position %.3f", rep.BandPosition)
	}
}

func TestEvaluate_EmptySeries(t *testing.T) {
	for name, series := range map[string]*model.PriceSeries{
		"no bars": {Symbol: "NONE"},
		"nil":     nil,
	} {
		_, err := Evaluate(series, Options{})
		if !errors.Is(err, calculator.ErrEmptySeries) {
			t.Errorf("%s: expected ErrEmptySeries, got %v", name, err)
		}
	}
}

func TestEvaluate_ShortTrendWindow(t *testing.T) {
	series := risingSeries(6)
	if _, err := Evaluate(series, Options{}); !errors.Is(err, calculator.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}

	rep, err := Evaluate(series, Options{AllowShortTrend: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Trend != "" || rep.TrendErr == "" {
		t.Errorf("expected trend error on report, got trend=%q err=%q", rep.Trend, rep.TrendErr)
	}
	if rep.MAAlignment != model.MAUnknown || rep.RSIZone != model.RSIUnknown {
		t.Errorf("expected unknown hints on short history, got %s / %s", rep.MAAlignment, rep.RSIZone)
	}
}

func TestEvaluate_RequireFullWindow(t *testing.T) {
	opts := Options{Indicators: calculator.Options{RequireFullWindow: true}}
	if _, err := Evaluate(risingSeries(50), opts); !errors.Is(err, calculator.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestClassifyRSIZone(t *testing.T) {
	tests := []struct {
		rsi  model.Value
		want model.RSIZone
	}{
		{model.Undefined, model.RSIUnknown},
		{model.Defined(12), model.RSIOversold},
		{model.Defined(30), model.RSIOversold},
		{model.Defined(50), model.RSINeutral},
		{model.Defined(70), model.RSIOverbought},
		{model.Defined(100), model.RSIOverbought},
	}
	for _, tt := range tests {
		if got := classifyRSIZone(tt.rsi); got != tt.want {
			t.Errorf("rsi %+v: expected %s, got %s", tt.rsi, tt.want, got)
		}
	}
}

func TestClassifyMAAlignment(t *testing.T) {
	d := model.Defined
	tests := []struct {
		name              string
		close             float64
		ma20, ma50, ma200 model.Value
		want              model.MAAlignment
	}{
		{"bull", 110, d(105), d(100), d(90), model.MABullishStack},
		{"bear", 80, d(85), d(90), d(100), model.MABearishStack},
		{"mixed", 95, d(100), d(90), d(99), model.MAMixed},
		{"missing ma200", 110, d(105), d(100), model.Undefined, model.MAUnknown},
	}
	for _, tt := range tests {
		if got := classifyMAAlignment(tt.close, tt.ma20, tt.ma50, tt.ma200); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, got)
		}
	}
}
