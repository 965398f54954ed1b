// Package logging assembles structured slog loggers and attribute helpers used
// across srtcheck.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes a context helper that tags log lines with the run ID
// of the current invocation. The package also provides a no-op logger for
// tests and library callers that do not care about diagnostics.
//
// CLI diagnostics are written to stderr so stdout carries only the report.
package logging
