// Package logger wraps zap with a context-scoped logger so request and job
// fields follow the call chain without being passed around explicitly.
package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment logs human-readable output at debug level.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment logs JSON at info level.
	ProductionEnvironment = "production"
)

var (
	defaultLogger *zap.Logger     //nolint: gochecknoglobals
	level         zap.AtomicLevel //nolint: gochecknoglobals
)

// Setup builds the default logger for the given environment.
func Setup(environment string) {
	cfg := zap.NewDevelopmentConfig()
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}

	level = cfg.Level
	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	defaultLogger = l
}

// SetLevel changes the level of the default logger at runtime.
// An empty level keeps the environment default.
func SetLevel(lvl string) error {
	if lvl == "" {
		return nil
	}

	parsed, err := zapcore.ParseLevel(lvl)
	if err != nil {
		return fmt.Errorf("could not parse log level: %w", err)
	}
	level.SetLevel(parsed)

	return nil
}

type key struct{}

// Get returns the logger stored in ctx, or the default logger.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
		return l
	}

	return defaultLogger
}

// WithLogger stores l in the returned context.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields returns a context whose logger carries the given fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// IsDebug reports whether the context logger logs at debug level.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Core().Enabled(zap.DebugLevel)
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
