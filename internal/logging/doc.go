// Package logging provides concrete implementations of the schemafold.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: progress to stdout, errors to stderr, thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
