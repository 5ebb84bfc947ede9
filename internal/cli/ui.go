package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"TrendScope/internal/model"
	"TrendScope/internal/notifier"
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7C3AED")).
		Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3B82F6")).
		Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280")).
		Width(18)

	headerCellStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#3B82F6"))

	bullishStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)

	bearishStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EF4444")).
		Bold(true)

	neutralStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F59E0B")).
		Bold(true)

	infoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981"))
)

var tableColumns = []struct {
	title  string
	name   string
	places int32
}{
	{"MA_20", model.IndicatorMA20, 2},
	{"MA_50", model.IndicatorMA50, 2},
	{"MA_200", model.IndicatorMA200, 2},
	{"RSI", model.IndicatorRSI, 2},
	{"MACD", model.IndicatorMACD, 4},
	{"Signal", model.IndicatorMACDSignal, 4},
}

// RenderInfo renders a one-line status message.
func RenderInfo(msg string) string {
	return infoStyle.Render(msg)
}

func trendStyle(t model.TrendLabel) lipgloss.Style {
	switch t {
	case model.TrendBullish:
		return bullishStyle
	case model.TrendBearish:
		return bearishStyle
	default:
		return neutralStyle
	}
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}

// RenderReport renders the summary panel and the last rows of the indicator table.
func RenderReport(r *model.Report, rows int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  (%s, %s)", r.Symbol, r.Period, r.Interval)))
	b.WriteString("\n")

	summary := []string{
		row("Bars", fmt.Sprintf("%d", r.Bars)),
		row("Last close", fmt.Sprintf("%s on %s", notifier.FormatPrice(r.LastBar.Close), r.LastBar.Time.Format("2006-01-02 15:04"))),
		row("Trend", trendStyle(r.Trend).Render(notifier.FormatTrend(r))),
		row("Support", notifier.FormatPrice(r.Levels.Support)),
		row("Resistance", notifier.FormatPrice(r.Levels.Resistance)),
		row("Range position", fmt.Sprintf("%.0f%%", r.BandPosition*100)),
		row("RSI zone", string(r.RSIZone)),
		row("MA alignment", string(r.MAAlignment)),
	}
	b.WriteString(panelStyle.Render(strings.Join(summary, "\n")))
	b.WriteString("\n")

	if r.Series != nil && rows > 0 {
		b.WriteString(renderTable(r.Series, rows))
	}
	return b.String()
}

func renderTable(s *model.AnalyzedSeries, rows int) string {
	start := s.Len() - rows
	if start < 0 {
		start = 0
	}

	header := []string{fmt.Sprintf("%-16s", "Time"), fmt.Sprintf("%12s", "Close")}
	for _, c := range tableColumns {
		header = append(header, fmt.Sprintf("%12s", c.title))
	}
	lines := []string{headerCellStyle.Render(strings.Join(header, " "))}

	for i := start; i < s.Len(); i++ {
		bar := s.Bars[i]
		cells := []string{
			fmt.Sprintf("%-16s", bar.Time.Format("2006-01-02 15:04")),
			fmt.Sprintf("%12s", notifier.FormatPrice(bar.Close)),
		}
		for _, c := range tableColumns {
			cells = append(cells, fmt.Sprintf("%12s", notifier.FormatValue(s.At(c.name, i), c.places)))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}
