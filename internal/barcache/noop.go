package barcache

import (
	"context"
	"time"

	"TrendScope/internal/model"
)

// NoopCache is a no-op implementation used when SQLite is not configured.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (n *NoopCache) Get(context.Context, Key, time.Duration) (*Entry, error) {
	return nil, nil
}
func (n *NoopCache) Put(context.Context, Key, []model.OHLCV) error { return nil }
func (n *NoopCache) Close() error                                  { return nil }
