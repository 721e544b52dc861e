// Package logger provides structured logging functionality for the application.
//
// It configures a log/slog JSON handler with the configured level, installs it
// as the default logger and carries request-scoped loggers (enriched with the
// trace ID) through context.Context.
package logger
