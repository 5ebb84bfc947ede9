package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"TrendScope/internal/collector"
	"TrendScope/internal/config"
)

// rangeFlags are the data selection flags shared by analyze and chart.
type rangeFlags struct {
	period      string
	interval    string
	interactive bool
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.period, "period", "p", "", "Data period, e.g. 1y, 6mo, 3mo (config default if empty)")
	cmd.Flags().StringVarP(&f.interval, "interval", "i", "", "Bar interval, e.g. 1d, 1h, 15m (config default if empty)")
	cmd.Flags().BoolVar(&f.interactive, "interactive", false, "Prompt for symbol, period and interval")
}

type target struct {
	symbol   string
	period   string
	interval string
}

// promptFuncs lets tests replace the terminal prompts.
type promptFuncs struct {
	ticker   func(def string) (string, error)
	period   func(def string) (string, error)
	interval func(def string) (string, error)
}

var defaultPrompts = promptFuncs{
	ticker:   PromptForTicker,
	period:   PromptForPeriod,
	interval: PromptForInterval,
}

// resolveTarget picks symbol, period and interval from args, flags and config.
// With no symbol anywhere, or with --interactive, every value the flags leave
// open is prompted for with the config value as default.
func resolveTarget(cfg *config.Config, args []string, f rangeFlags, prompts promptFuncs) (target, error) {
	t := target{
		symbol:   cfg.DataSource.Symbol,
		period:   cfg.DataSource.Period,
		interval: cfg.DataSource.Interval,
	}
	if len(args) > 0 {
		t.symbol = args[0]
	}
	interactive := f.interactive || strings.TrimSpace(t.symbol) == ""

	var err error
	if interactive && len(args) == 0 {
		if t.symbol, err = prompts.ticker(t.symbol); err != nil {
			return t, err
		}
	}
	switch {
	case f.period != "":
		t.period = f.period
	case interactive:
		if t.period, err = prompts.period(t.period); err != nil {
			return t, err
		}
	}
	switch {
	case f.interval != "":
		t.interval = f.interval
	case interactive:
		if t.interval, err = prompts.interval(t.interval); err != nil {
			return t, err
		}
	}

	t.symbol = strings.ToUpper(strings.TrimSpace(t.symbol))
	if err := collector.ValidateRange(t.period, t.interval); err != nil {
		return t, err
	}
	return t, nil
}
