// Package adapters converts zap and zerolog loggers to *slog.Logger so that a consumer of the fixtures
// packages can pass its existing logger to log.Set(). Loggers made here share log.LogLevel and
// log.AddSource with the default logger, so FIXTURES_LOG_LEVEL and FIXTURES_LOG_SOURCE apply to
// them as well.
package adapters

import (
	"log/slog"

	"github.com/gostdlib/fixtures/telemetry/log"

	"github.com/rs/zerolog"
	slogzap "github.com/samber/slog-zap/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
	"go.uber.org/zap"
)

// Zap creates a new slog.Logger that writes to a Zap logger.
func Zap(l *zap.Logger) *slog.Logger {
	return slog.New(
		slogzap.Option{
			AddSource: log.AddSource,
			Level:     log.LogLevel,
			Logger:    l,
		}.NewZapHandler())
}

// ZeroLog creates a new slog.Logger that writes to a Zerolog logger.
func ZeroLog(l zerolog.Logger) *slog.Logger {
	return slog.New(
		slogzerolog.Option{
			AddSource: log.AddSource,
			Level:     log.LogLevel,
			Logger:    &l,
		}.NewZerologHandler())
}

// SetZap makes a Zap logger the default logger returned by log.Default(). Like log.Set(), this must
// be called before any logging is done.
func SetZap(l *zap.Logger) {
	log.Set(Zap(l))
}

// SetZeroLog makes a Zerolog logger the default logger returned by log.Default(). Like log.Set(),
// this must be called before any logging is done.
func SetZeroLog(l zerolog.Logger) {
	log.Set(ZeroLog(l))
}
