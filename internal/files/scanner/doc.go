// Package scanner discovers and reads migration files.
//
// The scanner package is responsible for:
//   - Reading the baseline migration, failing with ErrBaselineNotFound when absent
//   - Listing the additional *.sql migrations of a directory in file name order
//   - Reporting unreadable migrations as recoverable FileErrors
//
// The scanner is filesystem-agnostic through the filesystem.FileSystemProvider
// interface, enabling both production use with the OS filesystem and testing
// with in-memory filesystems.
package scanner
