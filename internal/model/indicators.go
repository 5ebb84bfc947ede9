package model

import (
	"encoding/json"
	"strconv"
)

// Indicator column names.
const (
	IndicatorMA20       = "MA_20"
	IndicatorMA50       = "MA_50"
	IndicatorMA200      = "MA_200"
	IndicatorRSI        = "RSI"
	IndicatorMACD       = "MACD"
	IndicatorMACDSignal = "MACD_signal"
)

// IndicatorNames lists every column produced by the indicator computation, in display order.
var IndicatorNames = []string{
	IndicatorMA20,
	IndicatorMA50,
	IndicatorMA200,
	IndicatorRSI,
	IndicatorMACD,
	IndicatorMACDSignal,
}

// Value is a single indicator reading. Valid is false while the indicator's
// window is not yet populated; Float is then meaningless and kept at zero.
type Value struct {
	Float float64
	Valid bool
}

// Undefined is the marker stored at positions without a reading.
var Undefined = Value{}

// Defined wraps f as a valid reading.
func Defined(f float64) Value { return Value{Float: f, Valid: true} }

// MarshalJSON encodes undefined readings as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v.Float, 'g', -1, 64), nil
}

// UnmarshalJSON accepts a number or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Undefined
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Defined(f)
	return nil
}

// IndicatorSet maps an indicator name to its column, aligned by position with the bars.
type IndicatorSet map[string][]Value

// AnalyzedSeries is an input series joined positionally with its indicator columns.
type AnalyzedSeries struct {
	Bars       []OHLCV      `json:"bars"`
	Indicators IndicatorSet `json:"indicators"`
}

// Len returns the number of rows.
func (a *AnalyzedSeries) Len() int { return len(a.Bars) }

// At returns the reading of the named indicator at row i.
// Unknown names and out-of-range rows yield Undefined.
func (a *AnalyzedSeries) At(name string, i int) Value {
	col, ok := a.Indicators[name]
	if !ok || i < 0 || i >= len(col) {
		return Undefined
	}
	return col[i]
}

// Latest returns the reading of the named indicator on the last row.
func (a *AnalyzedSeries) Latest(name string) Value {
	return a.At(name, len(a.Bars)-1)
}

// Snapshot returns the last-row reading of every indicator.
func (a *AnalyzedSeries) Snapshot() map[string]Value {
	snap := make(map[string]Value, len(a.Indicators))
	for name := range a.Indicators {
		snap[name] = a.Latest(name)
	}
	return snap
}
