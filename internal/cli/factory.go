package cli

import (
	"github.com/pkg/errors"

	"TrendScope/internal/barcache"
	"TrendScope/internal/collector"
	"TrendScope/internal/config"
	"TrendScope/internal/logger"
)

func newFetcher(cfg *config.Config) (collector.Fetcher, error) {
	switch cfg.DataSource.Provider {
	case "yahoo":
		return collector.NewYahooFetcher(), nil
	case "vstrader":
		return collector.NewVsTraderFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy), nil
	case "mock":
		return &collector.MockFetcher{}, nil
	default:
		return nil, errors.Errorf("unsupported data provider %q", cfg.DataSource.Provider)
	}
}

// newCache opens the SQLite bar cache when configured. Failure to open it
// degrades to no caching.
func newCache(cfg *config.Config) barcache.Cache {
	if cfg.Cache.SQLitePath == "" {
		return barcache.NewNoopCache()
	}
	c, err := barcache.NewSQLiteCache(cfg.Cache.SQLitePath)
	if err != nil {
		logger.Warn("init sqlite bar cache failed, using noop: %v", err)
		return barcache.NewNoopCache()
	}
	return c
}

// newCollector wires fetcher and cache. The caller closes the returned cache.
func newCollector(cfg *config.Config) (*collector.Collector, barcache.Cache, error) {
	fetcher, err := newFetcher(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("data source: %s", fetcher.Name())
	cache := newCache(cfg)
	return collector.NewCollector(fetcher, cache, cfg.Cache.TTL), cache, nil
}
