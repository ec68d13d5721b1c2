// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the whole-file operations the consolidator performs,
// enabling testability through an in-memory implementation while maintaining
// compatibility with the OS filesystem.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing, including
//     files whose reads fail on demand
package filesystem
