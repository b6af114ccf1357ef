// Package envvar holds the environment variables used by all fixtures/ packages.
package envvar

const (
	// LogLevel is the environment variable that sets the initial level of telemetry/log.LogLevel.
	// Accepts the slog level names: DEBUG, INFO, WARN, ERROR, optionally with an offset such as "INFO+2".
	LogLevel = "FIXTURES_LOG_LEVEL"
	// LogSource is the environment variable that sets telemetry/log.AddSource. Accepts the values
	// of strconv.ParseBool. Defaults to false.
	LogSource = "FIXTURES_LOG_SOURCE"
)
