package logging

import "io"

// NullLogger discards all messages. The zero value is ready to use.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Verbose(string, ...interface{}) {}
func (*NullLogger) Info(string, ...interface{})    {}
func (*NullLogger) Error(string, ...interface{})   {}

// NewErrorOnlyLogger keeps Error messages and drops progress output, for
// commands whose stdout is the result itself.
func NewErrorOnlyLogger(errOut io.Writer) *ConsoleLogger {
	return NewConsoleLoggerWithWriters(io.Discard, errOut, false)
}
