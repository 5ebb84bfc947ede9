package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"TrendScope/internal/config"
	"TrendScope/internal/logger"
)

const defaultConfigPath = "configs/config.yaml"

// app carries state shared by all subcommands once the root has loaded it.
type app struct {
	cfgPath string
	debug   bool
	cfg     *config.Config
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "trendscope",
		Short: "TrendScope - technical analysis for OHLCV price series",
		Long: `TrendScope downloads price bars for a symbol and computes moving averages,
RSI, MACD, support/resistance and a short-term trend classification.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	rootCmd.AddCommand(newAnalyzeCmd(a))
	rootCmd.AddCommand(newChartCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	cfgPath := defaultConfigPath
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", cfgPath, "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if a.debug {
		cfg.Log.Debug = true
	}
	if err := logger.Init("trendscope", cfg.Log.Debug); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "config validation")
	}
	a.cfg = cfg
	return nil
}
