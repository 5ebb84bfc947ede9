package collector

import (
	"context"

	"TrendScope/internal/model"
)

// Fetcher defines the interface for downloading historical bars.
type Fetcher interface {
	// FetchBars returns bars covering period at the given bar interval.
	FetchBars(ctx context.Context, symbol, period, interval string) ([]model.OHLCV, error)
	Name() string
}
