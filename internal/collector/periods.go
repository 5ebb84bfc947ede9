package collector

import (
	"time"

	"github.com/pkg/errors"
)

// ErrUnsupportedRange is returned for period or interval strings outside the known sets.
var ErrUnsupportedRange = errors.New("unsupported period or interval")

var periodOffsets = map[string]func(now time.Time) time.Time{
	"1d":  func(now time.Time) time.Time { return now.AddDate(0, 0, -1) },
	"5d":  func(now time.Time) time.Time { return now.AddDate(0, 0, -5) },
	"1mo": func(now time.Time) time.Time { return now.AddDate(0, -1, 0) },
	"3mo": func(now time.Time) time.Time { return now.AddDate(0, -3, 0) },
	"6mo": func(now time.Time) time.Time { return now.AddDate(0, -6, 0) },
	"1y":  func(now time.Time) time.Time { return now.AddDate(-1, 0, 0) },
	"2y":  func(now time.Time) time.Time { return now.AddDate(-2, 0, 0) },
	"5y":  func(now time.Time) time.Time { return now.AddDate(-5, 0, 0) },
	"10y": func(now time.Time) time.Time { return now.AddDate(-10, 0, 0) },
	"ytd": func(now time.Time) time.Time { return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()) },
	"max": func(time.Time) time.Time { return time.Unix(0, 0) },
}

var intervals = map[string]time.Duration{
	"1m":  time.Minute,
	"2m":  2 * time.Minute,
	"5m":  5 * time.Minute,
	"15m": 15 * time.Minute,
	"30m": 30 * time.Minute,
	"60m": time.Hour,
	"90m": 90 * time.Minute,
	"1h":  time.Hour,
	"1d":  24 * time.Hour,
	"5d":  5 * 24 * time.Hour,
	"1wk": 7 * 24 * time.Hour,
	"1mo": 30 * 24 * time.Hour,
	"3mo": 91 * 24 * time.Hour,
}

// PeriodStart returns the first instant covered by period, counted back from now.
func PeriodStart(period string, now time.Time) (time.Time, error) {
	f, ok := periodOffsets[period]
	if !ok {
		return time.Time{}, errors.Wrapf(ErrUnsupportedRange, "period %q", period)
	}
	return f(now), nil
}

// IntervalDuration returns the nominal length of one bar.
func IntervalDuration(interval string) (time.Duration, error) {
	d, ok := intervals[interval]
	if !ok {
		return 0, errors.Wrapf(ErrUnsupportedRange, "interval %q", interval)
	}
	return d, nil
}

// ValidateRange checks period and interval together.
func ValidateRange(period, interval string) error {
	if _, err := PeriodStart(period, time.Now()); err != nil {
		return err
	}
	_, err := IntervalDuration(interval)
	return err
}

// Periods lists the supported period strings, shortest first.
var Periods = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}

// Intervals lists the supported interval strings, shortest first.
var Intervals = []string{"1m", "2m", "5m", "15m", "30m", "60m", "90m", "1h", "1d", "5d", "1wk", "1mo", "3mo"}
