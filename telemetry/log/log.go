// Package log provides the slog based logger used by the fixtures packages. Library code should
// prefer returning errors over logging; this exists so that errors.Error.Log() and tests have a single
// logger to write to.
package log

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gostdlib/fixtures/internal/envvar"
)

// LogLevel is the log level for the program. It is initialized from the FIXTURES_LOG_LEVEL
// environment variable and defaults to Info. Loggers created by Set() or the adapters package
// should use this so that the level can be changed at runtime.
var LogLevel = new(slog.LevelVar)

// AddSource controls whether loggers built by this package and by the adapters package record the
// source file and line of the log call. It is read from the FIXTURES_LOG_SOURCE environment variable
// once at startup. Changing it only affects loggers created afterwards.
var AddSource = sourceFromEnv(os.Getenv(envvar.LogSource))

var defaultLog = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: AddSource, Level: LogLevel}))

func init() {
	if l, ok := levelFromEnv(os.Getenv(envvar.LogLevel)); ok {
		LogLevel.Set(l)
	}
}

// levelFromEnv converts the value of the FIXTURES_LOG_LEVEL environment variable to a slog.Level.
// An empty or unparsable value returns false.
func levelFromEnv(v string) (slog.Level, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return slog.LevelInfo, false
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		return slog.LevelInfo, false
	}
	return l, true
}

// sourceFromEnv converts the value of the FIXTURES_LOG_SOURCE environment variable to a bool.
// An empty or unparsable value is false.
func sourceFromEnv(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false
	}
	return b
}

// Default returns the default logger.
func Default() *slog.Logger {
	if defaultLog == nil {
		return slog.Default()
	}
	return defaultLog
}

// Set sets the logger returned by Default().
// This must be done in main() or TestMain() before any logging is done to avoid a
// concurrency issue.
func Set(l *slog.Logger) {
	defaultLog = l
	slog.SetDefault(l)
}
