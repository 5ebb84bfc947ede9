package collector

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"TrendScope/internal/logger"
	"TrendScope/internal/model"
)

// VsTraderFetcher implements Fetcher using the vstrader REST API.
type VsTraderFetcher struct {
	client *resty.Client
}

// NewVsTraderFetcher creates a new fetcher with optional proxy support.
func NewVsTraderFetcher(baseURL, apiKey, proxyURL string) *VsTraderFetcher {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(30 * time.Second)
	client.JSONMarshal = sonic.Marshal
	client.JSONUnmarshal = sonic.Unmarshal
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &VsTraderFetcher{client: client}
}

func (f *VsTraderFetcher) Name() string { return "vstrader" }

// vsBar is the expected JSON shape from the vstrader API.
type vsBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

func (f *VsTraderFetcher) FetchBars(ctx context.Context, symbol, period, interval string) ([]model.OHLCV, error) {
	if err := ValidateRange(period, interval); err != nil {
		return nil, err
	}
	bars, err := f.fetchBars(ctx, symbol, period, interval)
	if err == nil || interval != "1wk" {
		return bars, err
	}

	// Fallback: some deployments only serve daily bars; aggregate them to weekly.
	logger.Warn("vstrader weekly bars for %s failed: %v, aggregating daily bars", symbol, err)
	daily, dailyErr := f.fetchBars(ctx, symbol, period, "1d")
	if dailyErr != nil {
		return nil, errors.Wrapf(dailyErr, "weekly fetch failed (%v); daily fallback", err)
	}
	return aggregateDailyToWeekly(daily), nil
}

func (f *VsTraderFetcher) fetchBars(ctx context.Context, symbol, period, interval string) ([]model.OHLCV, error) {
	var out []vsBar
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol":   symbol,
			"period":   period,
			"interval": interval,
		}).
		SetResult(&out).
		Get("/api/v1/bars")
	if err != nil {
		return nil, errors.Wrap(err, "fetch bars")
	}
	if resp.IsError() {
		return nil, errors.Errorf("fetch bars: status %d, body: %s", resp.StatusCode(), resp.String())
	}
	if len(out) == 0 {
		return nil, errors.Wrapf(ErrNoData, "vstrader %s %s", symbol, interval)
	}

	bars := make([]model.OHLCV, len(out))
	for i, vb := range out {
		bars[i] = model.OHLCV{
			Time:   time.Unix(vb.Timestamp, 0).UTC(),
			Open:   vb.Open,
			High:   vb.High,
			Low:    vb.Low,
			Close:  vb.Close,
			Volume: vb.Volume,
		}
	}
	return bars, nil
}

// aggregateDailyToWeekly converts daily bars into ISO-week bars.
// Input must be in chronological order.
func aggregateDailyToWeekly(daily []model.OHLCV) []model.OHLCV {
	if len(daily) == 0 {
		return nil
	}
	var weekly []model.OHLCV
	week := daily[0]
	wy, ww := week.Time.ISOWeek()

	for _, d := range daily[1:] {
		y, w := d.Time.ISOWeek()
		if y != wy || w != ww {
			weekly = append(weekly, week)
			week = d
			wy, ww = y, w
			continue
		}
		if d.High > week.High {
			week.High = d.High
		}
		if d.Low < week.Low {
			week.Low = d.Low
		}
		week.Close = d.Close
		week.Volume += d.Volume
	}
	return append(weekly, week)
}
