package calculator

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"TrendScope/internal/model"
)

func wavyCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + 0.2*float64(i) + 8*math.Sin(float64(i)/5)
	}
	return closes
}

func TestComputeIndicators_ColumnsAligned(t *testing.T) {
	bars := barsFromCloses(wavyCloses(75)...)
	got, err := ComputeIndicators(bars, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Len() != len(bars) {
		t.Fatalf("expected %d rows, got %d", len(bars), got.Len())
	}
	for _, name := range model.IndicatorNames {
		col, ok := got.Indicators[name]
		if !ok {
			t.Errorf("missing column %s", name)
			continue
		}
		if len(col) != len(bars) {
			t.Errorf("column %s: expected %d entries, got %d", name, len(bars), len(col))
		}
	}
	if len(got.Indicators) != len(model.IndicatorNames) {
		t.Errorf("expected %d columns, got %d", len(model.IndicatorNames), len(got.Indicators))
	}

	// 75 bars: MA_20 and MA_50 populated, MA_200 entirely undefined.
	if !got.Latest(model.IndicatorMA20).Valid || !got.Latest(model.IndicatorMA50).Valid {
		t.Error("MA_20 and MA_50 should be defined on the last row")
	}
	for i, v := range got.Indicators[model.IndicatorMA200] {
		if v.Valid {
			t.Fatalf("MA_200 pos %d should be undefined with 75 bars", i)
		}
	}
	if got.At(model.IndicatorMA20, 18).Valid || !got.At(model.IndicatorMA20, 19).Valid {
		t.Error("MA_20 should become defined exactly at position 19")
	}
}

func TestComputeIndicators_MovingAveragesExact(t *testing.T) {
	closes := wavyCloses(240)
	got, err := ComputeIndicators(barsFromCloses(closes...), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := len(closes)
	for _, tt := range []struct {
		name   string
		period int
	}{
		{model.IndicatorMA20, 20},
		{model.IndicatorMA50, 50},
		{model.IndicatorMA200, 200},
	} {
		v := got.Latest(tt.name)
		if !v.Valid {
			t.Fatalf("%s should be defined", tt.name)
		}
		assertClose(t, tt.name, v.Float, mean(closes[n-tt.period:]), 1e-9)
	}
}

func TestComputeIndicators_DoesNotMutateInput(t *testing.T) {
	bars := barsFromCloses(wavyCloses(30)...)
	before := model.CloneBars(bars)
	got, err := ComputeIndicators(bars, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(bars, before) {
		t.Fatal("input bars were modified")
	}
	got.Bars[0].Close = -1
	if bars[0].Close == -1 {
		t.Error("output shares memory with the input")
	}
}

func TestComputeIndicators_Idempotent(t *testing.T) {
	bars := barsFromCloses(wavyCloses(220)...)
	first, err := ComputeIndicators(bars, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeIndicators(bars, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range model.IndicatorNames {
		a, b := first.Indicators[name], second.Indicators[name]
		for i := range a {
			if a[i].Valid != b[i].Valid || math.Float64bits(a[i].Float) != math.Float64bits(b[i].Float) {
				t.Fatalf("%s pos %d differs between runs: %+v vs %+v", name, i, a[i], b[i])
			}
		}
	}
}

func TestComputeIndicators_RequireFullWindow(t *testing.T) {
	short := barsFromCloses(wavyCloses(199)...)
	_, err := ComputeIndicators(short, Options{RequireFullWindow: true})
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}

	if _, err := ComputeIndicators(short, Options{}); err != nil {
		t.Errorf("default mode should tolerate short history, got %v", err)
	}

	full := barsFromCloses(wavyCloses(200)...)
	got, err := ComputeIndicators(full, Options{RequireFullWindow: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Latest(model.IndicatorMA200).Valid {
		t.Error("MA_200 should be defined with 200 bars")
	}
}

func TestComputeIndicators_EmptySeries(t *testing.T) {
	got, err := ComputeIndicators(nil, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range model.IndicatorNames {
		if len(got.Indicators[name]) != 0 {
			t.Errorf("column %s should be empty", name)
		}
	}
	if got.Latest(model.IndicatorRSI).Valid {
		t.Error("latest on empty series should be undefined")
	}
}
