package calculator

import "TrendScope/internal/model"

// Options tunes ComputeIndicators.
type Options struct {
	// RequireFullWindow rejects series shorter than the longest window
	// instead of leaving the unpopulated positions undefined.
	RequireFullWindow bool
}

// MinFullWindowBars is the history RequireFullWindow demands.
const MinFullWindowBars = MA200Period

// ComputeIndicators derives the MA_20, MA_50, MA_200, RSI, MACD and MACD_signal
// columns for bars. The input is copied, never modified; every column has
// exactly len(bars) entries.
func ComputeIndicators(bars []model.OHLCV, opts Options) (*model.AnalyzedSeries, error) {
	if opts.RequireFullWindow && len(bars) < MinFullWindowBars {
		return nil, &InsufficientDataError{Op: "indicators", Need: MinFullWindowBars, Have: len(bars)}
	}

	closes := Closes(bars)
	set := make(model.IndicatorSet, len(model.IndicatorNames))

	for _, ma := range []struct {
		name   string
		period int
	}{
		{model.IndicatorMA20, MA20Period},
		{model.IndicatorMA50, MA50Period},
		{model.IndicatorMA200, MA200Period},
	} {
		col, err := SMASeries(closes, ma.period)
		if err != nil {
			return nil, err
		}
		set[ma.name] = col
	}

	rsi, err := RSISeries(closes, RSIPeriod)
	if err != nil {
		return nil, err
	}
	set[model.IndicatorRSI] = rsi

	macd, signal, err := MACDSeries(closes, MACDFastSpan, MACDSlowSpan, MACDSignalSpan)
	if err != nil {
		return nil, err
	}
	set[model.IndicatorMACD] = macd
	set[model.IndicatorMACDSignal] = signal

	return &model.AnalyzedSeries{
		Bars:       model.CloneBars(bars),
		Indicators: set,
	}, nil
}
