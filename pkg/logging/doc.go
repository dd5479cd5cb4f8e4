// Package logging provides structured logging utilities for the savor CLI.
//
// # Overview
//
// This package wraps the standard library slog package with savor-specific
// defaults: JSON output to stderr, environment-based log level
// configuration, module/version context injection, and source location
// tracking for debug logs. Stdout stays reserved for command output so the
// fetch commands can be piped.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: detailed diagnostic information with source location
//   - INFO: general informational messages (default)
//   - WARN/WARNING: potentially problematic situations
//   - ERROR: failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("savor", version)
//
//	    slog.Info("processing recipe", "slug", "pad-thai")
//	    slog.Error("request failed", "error", err)
//	}
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug savor auto-categorize-recipes --limit 5
//
// If LOG_LEVEL is not set, defaults to INFO level.
package logging
