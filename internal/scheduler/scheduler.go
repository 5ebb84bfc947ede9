package scheduler

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"TrendScope/internal/analysis"
	"TrendScope/internal/collector"
	"TrendScope/internal/logger"
	"TrendScope/internal/metrics"
	"TrendScope/internal/model"
	"TrendScope/internal/notifier"
)

// Sender delivers a formatted message.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Target names the series watch mode re-analyzes on every run.
type Target struct {
	Symbol   string
	Period   string
	Interval string
}

// Scheduler manages the watch cron task and bot commands.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  Sender
	Metrics   *metrics.Metrics
	Target    Target
	Options   analysis.Options
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler. m may be nil.
func NewScheduler(ctx context.Context, col *collector.Collector, sender Sender, m *metrics.Metrics, target Target, opts analysis.Options) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  sender,
		Metrics:   m,
		Target:    target,
		Options:   opts,
		Ctx:       ctx,
	}
}

// Register adds the watch task on the given six-field cron spec.
func (s *Scheduler) Register(watchCron string) error {
	if _, err := s.Cron.AddFunc(watchCron, s.watchTask); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	logger.Info("scheduler started")
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	logger.Info("scheduler stopped")
}

// RunNow executes the watch task immediately (for RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.watchTask()
}

func (s *Scheduler) watchTask() {
	logger.Info("running watch task for %s", s.Target.Symbol)
	rep, err := s.analyze(s.Ctx, s.Target)
	if err != nil {
		logger.Error("watch analyze %s: %v", s.Target.Symbol, err)
		s.trySend(fmt.Sprintf("❌ Analysis of %s failed: %s", html.EscapeString(s.Target.Symbol), html.EscapeString(err.Error())))
		return
	}
	s.trySend(notifier.FormatReport(rep))
}

func (s *Scheduler) analyze(ctx context.Context, t Target) (*model.Report, error) {
	start := time.Now()
	rep, err := s.evaluate(ctx, t)
	if s.Metrics != nil {
		s.Metrics.ObserveRun(rep, time.Since(start), err)
	}
	return rep, err
}

func (s *Scheduler) evaluate(ctx context.Context, t Target) (*model.Report, error) {
	series, err := s.Collector.Collect(ctx, t.Symbol, t.Period, t.Interval)
	if err != nil {
		return nil, err
	}
	return analysis.Evaluate(series, s.Options)
}

// HandleCommand processes a bot command and returns the reply. Commands may
// name a symbol ("/trend MSFT"); the watched symbol is used otherwise.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return notifier.FormatHelp()
	}
	name := strings.ToLower(fields[0])
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}

	target := s.Target
	if len(fields) > 1 {
		target.Symbol = strings.ToUpper(fields[1])
	}

	var format func(*model.Report) string
	switch name {
	case "/report":
		format = notifier.FormatReport
	case "/trend":
		format = func(r *model.Report) string {
			return fmt.Sprintf("%s: <b>%s</b>", html.EscapeString(r.Symbol), html.EscapeString(notifier.FormatTrend(r)))
		}
	case "/levels":
		format = func(r *model.Report) string {
			return fmt.Sprintf("<b>%s</b>\n%s", html.EscapeString(r.Symbol), notifier.FormatLevels(r))
		}
	default:
		return notifier.FormatHelp()
	}

	rep, err := s.analyze(ctx, target)
	if err != nil {
		logger.Error("command %s: %v", name, err)
		return fmt.Sprintf("❌ Analysis of %s failed: %s", html.EscapeString(target.Symbol), html.EscapeString(err.Error()))
	}
	return format(rep)
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		logger.Error("send notification: %v", err)
	}
}
