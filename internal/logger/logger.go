package logger

import (
	"fmt"

	"go.uber.org/zap"
)

var base = zap.NewNop()

var serviceName = "trendscope"

// Init builds the process logger. Debug mode uses zap's development config.
func Init(service string, debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		l, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("build zap logger: %w", err)
	}
	if service != "" {
		serviceName = service
	}
	base = l.With(zap.String("service", serviceName))
	return nil
}

// L returns the underlying zap logger for structured fields.
func L() *zap.Logger { return base }

// Sync flushes buffered entries.
func Sync() { _ = base.Sync() }

func Debug(format string, args ...interface{}) { base.Debug(fmt.Sprintf(format, args...)) }

func Info(format string, args ...interface{}) { base.Info(fmt.Sprintf(format, args...)) }

func Warn(format string, args ...interface{}) { base.Warn(fmt.Sprintf(format, args...)) }

func Error(format string, args ...interface{}) { base.Error(fmt.Sprintf(format, args...)) }

func Fatal(format string, args ...interface{}) { base.Fatal(fmt.Sprintf(format, args...)) }
