// Package logging configures the process-wide structured logger.
//
// Components obtain loggers with slog.Default().With("component", ...),
// so Setup installs the configured handler as the slog default once at
// startup. Content text never reaches log output whole; callers pass it
// through Snippet first.
package logging
