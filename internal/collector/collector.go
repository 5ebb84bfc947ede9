package collector

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"TrendScope/internal/barcache"
	"TrendScope/internal/logger"
	"TrendScope/internal/model"
)

// ErrNoData is returned when a download yields no usable bars.
var ErrNoData = errors.New("no data fetched")

// Collector orchestrates bar download, caching and normalization.
type Collector struct {
	Fetcher  Fetcher
	Cache    barcache.Cache
	CacheTTL time.Duration
}

// NewCollector creates a new Collector. A nil cache disables caching.
func NewCollector(fetcher Fetcher, cache barcache.Cache, ttl time.Duration) *Collector {
	if cache == nil {
		cache = barcache.NewNoopCache()
	}
	return &Collector{Fetcher: fetcher, Cache: cache, CacheTTL: ttl}
}

// Collect returns a normalized series for symbol: ordered by time, without
// duplicate timestamps or empty bars.
func (c *Collector) Collect(ctx context.Context, symbol, period, interval string) (*model.PriceSeries, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, errors.New("symbol is required")
	}
	if err := ValidateRange(period, interval); err != nil {
		return nil, err
	}

	key := barcache.Key{Symbol: symbol, Period: period, Interval: interval}
	if entry, err := c.Cache.Get(ctx, key, c.CacheTTL); err != nil {
		logger.Warn("bar cache read for %s failed: %v", key, err)
	} else if entry != nil {
		logger.Debug("using cached bars for %s (%d bars, fetched %s)", key, len(entry.Bars), entry.FetchedAt.Format(time.RFC3339))
		return &model.PriceSeries{Symbol: symbol, Period: period, Interval: interval, Bars: entry.Bars, FetchedAt: entry.FetchedAt}, nil
	}

	raw, err := c.Fetcher.FetchBars(ctx, symbol, period, interval)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s from %s", symbol, c.Fetcher.Name())
	}
	bars := Normalize(raw)
	if len(bars) == 0 {
		return nil, errors.Wrapf(ErrNoData, "fetch %s from %s", symbol, c.Fetcher.Name())
	}
	logger.Info("fetched %d bars for %s (%s, %s) from %s", len(bars), symbol, period, interval, c.Fetcher.Name())

	if err := c.Cache.Put(ctx, key, bars); err != nil {
		logger.Warn("bar cache write for %s failed: %v", key, err)
	}
	return &model.PriceSeries{Symbol: symbol, Period: period, Interval: interval, Bars: bars, FetchedAt: time.Now()}, nil
}

// Normalize drops empty or non-finite bars, sorts by time and keeps the last
// bar of any duplicated timestamp. The input is not modified.
func Normalize(raw []model.OHLCV) []model.OHLCV {
	bars := make([]model.OHLCV, 0, len(raw))
	for _, b := range raw {
		if b.Open == 0 && b.High == 0 && b.Low == 0 && b.Close == 0 {
			continue // null bars (holidays etc.)
		}
		if !finite(b.Open, b.High, b.Low, b.Close) {
			continue
		}
		bars = append(bars, b)
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })

	out := bars[:0]
	for _, b := range bars {
		if n := len(out); n > 0 && out[n-1].Time.Equal(b.Time) {
			out[n-1] = b
			continue
		}
		out = append(out, b)
	}
	return out
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
