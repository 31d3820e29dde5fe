package logger

import "sync/atomic"

// NullLogger discards every entry. It counts Error calls so tests can check
// that a failure was reported without parsing output.
type NullLogger struct {
	errors atomic.Int64
}

var _ Logger = (*NullLogger)(nil)

func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Info(string, map[string]interface{})  {}
func (l *NullLogger) Debug(string, map[string]interface{}) {}
func (l *NullLogger) Fatal(error, map[string]interface{})  {}
func (l *NullLogger) SetLevel(Level)                       {}

func (l *NullLogger) Error(error, map[string]interface{}) {
	l.errors.Add(1)
}

// Errors returns how many times Error was called
func (l *NullLogger) Errors() int64 {
	return l.errors.Load()
}
