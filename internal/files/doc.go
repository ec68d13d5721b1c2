// Package files groups the migration I/O packages.
//
// Subpackages:
//   - filesystem: whole-file filesystem abstraction (OS and in-memory)
//   - scanner: baseline and additional migration discovery
//   - writer: output persistence
package files
