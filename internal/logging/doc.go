// Package logging builds the zerolog loggers used by the tablekit CLI.
//
// It provides logger construction from configuration (console or JSON output,
// optional log file with console fallback), component tagging, and ULID trace
// IDs carried through context.Context.
package logging
