package chart

import (
	"html/template"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Page describes one TradingView chart page.
type Page struct {
	Symbol   string
	Interval string
	Period   string
	Theme    string // "light" or "dark"
}

var pageTemplate = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>TradingView Chart: {{.Symbol}} ({{.Period}}, {{.Interval}})</title>
    <script src="https://s3.tradingview.com/tv.js"></script>
</head>
<body>
    <h2 style="text-align:center;">{{.Symbol}} Trend Analysis ({{.Period}}, {{.Interval}})</h2>
    <div id="chart" style="width: 800px; height: 500px; margin: auto;"></div>
    <script>
        new TradingView.widget({
            "container_id": "chart",
            "symbol": {{.Symbol}},
            "interval": {{.Interval}},
            "theme": {{.Theme}},
            "style": "1",
            "locale": "en",
            "toolbar_bg": "#f1f3f6",
            "enable_publishing": false,
            "allow_symbol_change": true,
            "autosize": true
        });
    </script>
</body>
</html>
`))

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func (p Page) normalized() (Page, error) {
	p.Symbol = strings.ToUpper(strings.TrimSpace(p.Symbol))
	if p.Symbol == "" {
		return p, errors.New("chart: symbol is required")
	}
	p.Interval = strings.ToUpper(strings.TrimSpace(p.Interval))
	if p.Theme != "dark" {
		p.Theme = "light"
	}
	return p, nil
}

// Render writes the HTML page for p to w.
func Render(w io.Writer, p Page) error {
	p, err := p.normalized()
	if err != nil {
		return err
	}
	return errors.Wrap(pageTemplate.Execute(w, p), "render chart page")
}

// FileName returns the output file name for p, e.g. "AAPL_1y_chart.html".
func FileName(p Page) string {
	name := strings.ToUpper(strings.TrimSpace(p.Symbol)) + "_" + p.Period + "_chart.html"
	return unsafeFileChars.ReplaceAllString(name, "_")
}

// WriteFile renders p into dir and returns the file path.
func WriteFile(dir string, p Page) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create chart dir")
	}
	path := filepath.Join(dir, FileName(p))
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "create chart file")
	}
	if err := Render(f, p); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(err, "close chart file")
	}
	return path, nil
}
