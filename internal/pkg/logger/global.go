package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	mu           sync.RWMutex
)

// SetGlobalLogger sets the process-wide logger. Call once during startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger, creating a no-op one if none is set
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		globalLogger = &ZapLogger{Logger: zap.NewNop()}
	}
	return globalLogger
}

func Info(msg string, fields ...Field) {
	GetGlobalLogger().Logger.Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Logger.Warn(msg, fields...)
}

func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Logger.Debug(msg, fields...)
}

func Error(msg string, fields ...Field) {
	GetGlobalLogger().Logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Logger.Fatal(msg, fields...)
}

// ctxLogger attaches New Relic trace ids when the context carries a transaction
func ctxLogger(ctx context.Context) *zap.Logger {
	l := GetGlobalLogger()
	if txn := newrelic.FromContext(ctx); txn != nil {
		return l.WithNewRelicContext(txn)
	}
	return l.Logger
}

func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	ctxLogger(ctx).Info(msg, fields...)
}

func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	ctxLogger(ctx).Warn(msg, fields...)
}

func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	ctxLogger(ctx).Error(msg, fields...)
}
