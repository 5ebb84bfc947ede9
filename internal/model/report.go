package model

import "time"

// Report is the combined output of one analysis run.
type Report struct {
	Symbol       string            `json:"symbol"`
	Period       string            `json:"period,omitempty"`
	Interval     string            `json:"interval,omitempty"`
	Bars         int               `json:"bars"`
	LastBar      OHLCV             `json:"last_bar"`
	Levels       SupportResistance `json:"levels"`
	Trend        TrendLabel        `json:"trend,omitempty"`
	TrendErr     string            `json:"trend_error,omitempty"`
	Latest       map[string]Value  `json:"latest"`
	RSIZone      RSIZone           `json:"rsi_zone"`
	MAAlignment  MAAlignment       `json:"ma_alignment"`
	BandPosition float64           `json:"band_position"`
	Series       *AnalyzedSeries   `json:"-"`
	GeneratedAt  time.Time         `json:"generated_at"`
}
