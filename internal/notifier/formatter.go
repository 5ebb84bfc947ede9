package notifier

import (
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"

	"TrendScope/internal/model"
)

// FormatPrice renders a price with two decimals.
func FormatPrice(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatValue renders an indicator reading, or "n/a" when undefined.
func FormatValue(v model.Value, places int32) string {
	if !v.Valid {
		return "n/a"
	}
	return decimal.NewFromFloat(v.Float).StringFixed(places)
}

// FormatTrend renders the trend line, including the reason when classification failed.
func FormatTrend(r *model.Report) string {
	if r.Trend == "" {
		return fmt.Sprintf("unavailable (%s)", r.TrendErr)
	}
	return r.Trend.Description()
}

// FormatReport formats an analysis report into a Telegram HTML message.
func FormatReport(r *model.Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s, %s | %s\n\n",
		html.EscapeString(r.Symbol), r.Period, r.Interval, r.GeneratedAt.Format("2006-01-02 15:04")))

	b.WriteString(fmt.Sprintf("Last close: %s (%s)\n", FormatPrice(r.LastBar.Close), r.LastBar.Time.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Trend: <b>%s</b>\n\n", html.EscapeString(FormatTrend(r))))

	b.WriteString(FormatLevels(r))
	b.WriteString("\n")

	b.WriteString("📈 <b>Indicators:</b>\n")
	b.WriteString(fmt.Sprintf("  MA20: %s | MA50: %s | MA200: %s\n",
		FormatValue(r.Latest[model.IndicatorMA20], 2),
		FormatValue(r.Latest[model.IndicatorMA50], 2),
		FormatValue(r.Latest[model.IndicatorMA200], 2)))
	b.WriteString(fmt.Sprintf("  MA alignment: %s\n", r.MAAlignment))
	b.WriteString(fmt.Sprintf("  RSI(14): %s (%s)\n", FormatValue(r.Latest[model.IndicatorRSI], 1), r.RSIZone))
	b.WriteString(fmt.Sprintf("  MACD: %s | Signal: %s\n",
		FormatValue(r.Latest[model.IndicatorMACD], 4),
		FormatValue(r.Latest[model.IndicatorMACDSignal], 4)))

	return b.String()
}

// FormatLevels formats the support/resistance block.
func FormatLevels(r *model.Report) string {
	return fmt.Sprintf("🧱 Support: %s | Resistance: %s\n   Position in range: %.0f%% (%d bars)\n",
		FormatPrice(r.Levels.Support), FormatPrice(r.Levels.Resistance), r.BandPosition*100, r.Bars)
}

// FormatHelp lists the supported bot commands.
func FormatHelp() string {
	return "Available commands:\n• /report - full analysis\n• /trend - trend only\n• /levels - support and resistance\n• /help - this message"
}
