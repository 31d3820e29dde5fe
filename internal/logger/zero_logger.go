package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

type ZeroLogger struct {
	writer        io.Writer
	level         Level
	defaultFields Fields
	console       bool
	zl            zerolog.Logger
}

// NewZeroLogger returns a JSON logger writing to writer
func NewZeroLogger(writer io.Writer, level Level, defaultFields Fields) *ZeroLogger {
	return newZeroLogger(writer, level, defaultFields, false)
}

// NewConsoleLogger returns a human readable logger, used in development
func NewConsoleLogger(writer io.Writer, level Level, defaultFields Fields) *ZeroLogger {
	return newZeroLogger(writer, level, defaultFields, true)
}

func newZeroLogger(writer io.Writer, level Level, defaultFields Fields, console bool) *ZeroLogger {
	if defaultFields == nil {
		defaultFields = Fields{}
	}
	l := &ZeroLogger{writer: writer, level: level, defaultFields: defaultFields, console: console}
	l.configureLogger()
	return l
}

func (l *ZeroLogger) configureLogger() {
	var zLevel zerolog.Level
	switch l.level {
	case LevelDebug:
		zLevel = zerolog.DebugLevel
	case LevelInfo:
		zLevel = zerolog.InfoLevel
	case LevelError:
		zLevel = zerolog.ErrorLevel
	case LevelFatal:
		zLevel = zerolog.FatalLevel
	case LevelOff:
		zLevel = zerolog.Disabled
	default:
		zLevel = zerolog.InfoLevel
	}

	w := l.writer
	if l.console {
		w = zerolog.ConsoleWriter{Out: l.writer, TimeFormat: time.Kitchen}
	}

	props := make(map[string]interface{}, len(l.defaultFields))
	for k, v := range l.defaultFields {
		props[k] = v
	}

	l.zl = zerolog.New(w).With().Fields(props).Timestamp().Logger().Level(zLevel)
}

// Info only logs information
func (l *ZeroLogger) Info(message string, properties map[string]interface{}) {
	l.zl.Info().Fields(properties).Msg(message)
}

// Error reports all error at error level
func (l *ZeroLogger) Error(err error, properties map[string]interface{}) {
	l.zl.Error().Fields(properties).Err(err).Msg(err.Error())
}

// Fatal write the log to output and stop the process
func (l *ZeroLogger) Fatal(err error, properties map[string]interface{}) {
	l.zl.Fatal().Fields(properties).Err(err).Msg(err.Error())
}

// Debug this is for debugging and we use it to store some information in the log
func (l *ZeroLogger) Debug(message string, properties map[string]interface{}) {
	l.zl.Debug().Fields(properties).Msg(message)
}

func (l *ZeroLogger) SetLevel(level Level) {
	l.level = level
	l.configureLogger()
}
