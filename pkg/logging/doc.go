// Package logging provides structured logging defaults for archpath commands.
//
// It wraps the standard library slog package with project conventions:
// JSON output to stderr, module/version context on every record, level
// configuration through the LOG_LEVEL environment variable, and source
// location tracking when running at debug level.
//
// Typical usage:
//
//	logging.SetDefaultStructuredLoggerWithLevel("archpath", version, "warn")
//	slog.Info("resolved subdirectory", "subdir", subdir)
//
// Logs never go to stdout: the resolve command's single-line contract
// reserves stdout for the resolved path.
package logging
