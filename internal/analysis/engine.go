package analysis

import (
	"errors"
	"fmt"
	"time"

	"TrendScope/internal/calculator"
	"TrendScope/internal/model"
)

// Options configures one Evaluate call.
type Options struct {
	Indicators  calculator.Options
	TrendWindow int // 0 means calculator.DefaultTrendWindow
	// AllowShortTrend records a too-short trend window on the report
	// instead of failing the whole evaluation.
	AllowShortTrend bool
}

// Evaluate runs indicator computation, support/resistance and trend
// classification over the series and assembles the report.
func Evaluate(series *model.PriceSeries, opts Options) (*model.Report, error) {
	if series == nil {
		return nil, calculator.ErrEmptySeries
	}
	last, ok := series.Last()
	if !ok {
		return nil, calculator.ErrEmptySeries
	}

	analyzed, err := calculator.ComputeIndicators(series.Bars, opts.Indicators)
	if err != nil {
		return nil, fmt.Errorf("compute indicators: %w", err)
	}

	levels, err := calculator.ComputeSupportResistance(series.Bars)
	if err != nil {
		return nil, fmt.Errorf("support/resistance: %w", err)
	}

	window := opts.TrendWindow
	if window == 0 {
		window = calculator.DefaultTrendWindow
	}

	report := &model.Report{
		Symbol:      series.Symbol,
		Period:      series.Period,
		Interval:    series.Interval,
		Bars:        series.Len(),
		LastBar:     last,
		Levels:      levels,
		Latest:      analyzed.Snapshot(),
		Series:      analyzed,
		GeneratedAt: time.Now(),
	}

	trend, err := calculator.ClassifyTrend(series.Bars, window)
	switch {
	case err == nil:
		report.Trend = trend
	case opts.AllowShortTrend && errors.Is(err, calculator.ErrInsufficientData):
		report.TrendErr = err.Error()
	default:
		return nil, fmt.Errorf("classify trend: %w", err)
	}

	report.RSIZone = classifyRSIZone(analyzed.Latest(model.IndicatorRSI))
	report.MAAlignment = classifyMAAlignment(
		last.Close,
		analyzed.Latest(model.IndicatorMA20),
		analyzed.Latest(model.IndicatorMA50),
		analyzed.Latest(model.IndicatorMA200),
	)
	report.BandPosition = levels.Position(last.Close)

	return report, nil
}
