package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"TrendScope/internal/chart"
)

func newChartCmd(a *app) *cobra.Command {
	var f rangeFlags
	cmd := &cobra.Command{
		Use:   "chart [SYMBOL]",
		Short: "Write a TradingView chart page for a symbol",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resolveTarget(a.cfg, args, f, defaultPrompts)
			if err != nil {
				return err
			}
			path, err := chart.WriteFile(a.cfg.Chart.OutputDir, chartPage(a.cfg, t))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), RenderInfo("TradingView chart written: "+path))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
