package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"TrendScope/internal/config"
	"TrendScope/internal/logger"
	"TrendScope/internal/metrics"
	"TrendScope/internal/notifier"
	"TrendScope/internal/scheduler"
)

func newWatchCmd(a *app) *cobra.Command {
	var runOnStart bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-analyze the configured symbol on a schedule and push reports to Telegram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("RUN_ON_START") == "true" {
				runOnStart = true
			}
			return runWatch(a.cfg, runOnStart)
		},
	}
	cmd.Flags().BoolVar(&runOnStart, "run-on-start", false, "Run one analysis immediately")
	return cmd
}

func runWatch(cfg *config.Config, runOnStart bool) error {
	if err := cfg.ValidateWatch(); err != nil {
		return errors.Wrap(err, "config validation")
	}
	logger.Info("TrendScope watch starting for %s (%s, %s)",
		cfg.DataSource.Symbol, cfg.DataSource.Period, cfg.DataSource.Interval)

	col, cache, err := newCollector(cfg)
	if err != nil {
		return err
	}
	defer cache.Close()

	tn, err := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	if err != nil {
		return errors.Wrap(err, "init telegram notifier")
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New()
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := m.Serve(ctx, cfg.Metrics.Addr); err != nil {
				logger.Error("metrics server: %v", err)
			}
		}()
	}

	target := scheduler.Target{
		Symbol:   cfg.DataSource.Symbol,
		Period:   cfg.DataSource.Period,
		Interval: cfg.DataSource.Interval,
	}
	sched := scheduler.NewScheduler(ctx, col, tn, m, target, analysisOptions(cfg, false))
	if err := sched.Register(cfg.Schedule.WatchCron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	go tn.StartPolling(ctx, sched.HandleCommand)
	logger.Info("telegram polling started")

	if runOnStart {
		logger.Info("run-on-start enabled, executing watch task now")
		go sched.RunNow()
	}

	logger.Info("TrendScope is watching. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutdown signal received, stopping...")
	cancel()
	return nil
}
