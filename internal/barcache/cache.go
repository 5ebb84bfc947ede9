package barcache

import (
	"context"
	"fmt"
	"time"

	"TrendScope/internal/model"
)

// Key identifies one downloaded bar set.
type Key struct {
	Symbol   string
	Period   string
	Interval string
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Symbol, k.Period, k.Interval)
}

// Entry is one cached bar set and the time it was downloaded.
type Entry struct {
	Bars      []model.OHLCV
	FetchedAt time.Time
}

// Cache stores downloaded input bars so repeated runs skip the network.
// Only raw bars are cached; analysis results are always recomputed.
type Cache interface {
	// Get returns the entry stored under key if it is younger than maxAge,
	// or nil on a miss.
	Get(ctx context.Context, key Key, maxAge time.Duration) (*Entry, error)
	// Put replaces whatever is stored under key.
	Put(ctx context.Context, key Key, bars []model.OHLCV) error
	Close() error
}
