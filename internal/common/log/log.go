// Package log is a thin context-aware wrapper around zap. Every entry carries
// the correlation id from context so a whole consolidation run can be grepped
// by a single id.
package log

import (
	"context"
	"os"

	"github.com/torxlabs/go-treasury/internal/common/ctxdata"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var logger = zap.NewNop()

type options struct {
	env       string
	level     zapcore.Level
	addCaller bool
}

type Option func(*options)

func WithLogEnvOption(env string) Option {
	return func(o *options) { o.env = env }
}

func WithLevel(level string) Option {
	return func(o *options) {
		if l, err := zapcore.ParseLevel(level); err == nil {
			o.level = l
		}
	}
}

func WithCaller(enabled bool) Option {
	return func(o *options) { o.addCaller = enabled }
}

func Init(appName string, opts ...Option) {
	o := &options{level: zapcore.InfoLevel, addCaller: true}
	for _, opt := range opts {
		opt(o)
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg),
		zapcore.Lock(os.Stdout),
		o.level,
	)

	zapOpts := []zap.Option{zap.AddCallerSkip(1)}
	if o.addCaller {
		zapOpts = append(zapOpts, zap.AddCaller())
	}

	logger = zap.New(core, zapOpts...).
		With(zap.String("app", appName), zap.String("env", o.env))
}

// InitForTest installs a no-op logger so tests stay quiet.
func InitForTest() {
	logger = zap.NewNop()
}

// Base exposes the underlying zap logger for integrations (newrelic bridge).
func Base() *zap.Logger {
	return logger
}

func Sync() {
	_ = logger.Sync()
}

func withCtx(ctx context.Context, fields []Field) []Field {
	if id := ctxdata.GetCorrelationId(ctx); id != "" {
		fields = append(fields, zap.String("correlationId", id))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	logger.Debug(msg, withCtx(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	logger.Info(msg, withCtx(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	logger.Warn(msg, withCtx(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	logger.Error(msg, withCtx(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	logger.Sugar().Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	logger.Sugar().Infof(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	logger.Sugar().Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	logger.Sugar().Fatalf(format, args...)
}
