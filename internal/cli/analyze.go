package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"TrendScope/internal/analysis"
	"TrendScope/internal/calculator"
	"TrendScope/internal/chart"
	"TrendScope/internal/collector"
	"TrendScope/internal/config"
	"TrendScope/internal/model"
)

type analyzeFlags struct {
	rangeFlags
	json              bool
	chart             bool
	requireFullWindow bool
	rows              int
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var f analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze [SYMBOL]",
		Short: "Compute indicators, levels and trend for a symbol",
		Long: `Download bars for SYMBOL and print moving averages, RSI, MACD,
support/resistance and the trend of the last bars.
Example: trendscope analyze AAPL --period 6mo --interval 1d`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resolveTarget(a.cfg, args, f.rangeFlags, defaultPrompts)
			if err != nil {
				return err
			}
			col, cache, err := newCollector(a.cfg)
			if err != nil {
				return err
			}
			defer cache.Close()
			return runAnalyze(cmd.Context(), cmd.OutOrStdout(), a.cfg, col, t, f)
		},
	}

	f.register(cmd)
	cmd.Flags().BoolVar(&f.json, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&f.chart, "chart", false, "Also write the TradingView chart page")
	cmd.Flags().BoolVar(&f.requireFullWindow, "require-full-window", false, "Fail unless there are enough bars for MA_200")
	cmd.Flags().IntVar(&f.rows, "rows", 5, "Number of trailing rows in the indicator table")

	return cmd
}

func analysisOptions(cfg *config.Config, requireFullWindow bool) analysis.Options {
	return analysis.Options{
		Indicators: calculator.Options{
			RequireFullWindow: cfg.Analysis.RequireFullWindow || requireFullWindow,
		},
		TrendWindow:     cfg.Analysis.TrendWindow,
		AllowShortTrend: true,
	}
}

func runAnalyze(ctx context.Context, out io.Writer, cfg *config.Config, col *collector.Collector, t target, f analyzeFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	series, err := col.Collect(ctx, t.symbol, t.period, t.interval)
	if err != nil {
		return err
	}
	rep, err := analysis.Evaluate(series, analysisOptions(cfg, f.requireFullWindow))
	if err != nil {
		return err
	}

	if f.json {
		if err := writeJSON(out, rep); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, RenderReport(rep, f.rows))
	}

	if f.chart {
		path, err := chart.WriteFile(cfg.Chart.OutputDir, chartPage(cfg, t))
		if err != nil {
			return err
		}
		if !f.json {
			fmt.Fprintln(out, RenderInfo("TradingView chart written: "+path))
		}
	}
	return nil
}

func writeJSON(out io.Writer, rep *model.Report) error {
	data, err := sonic.ConfigStd.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func chartPage(cfg *config.Config, t target) chart.Page {
	return chart.Page{Symbol: t.symbol, Interval: t.interval, Period: t.period, Theme: cfg.Chart.Theme}
}
