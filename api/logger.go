package api

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/chinmay1088/raydium-go/logging"
)

// ErrorLogger receives one message per failed call.
type ErrorLogger interface {
	LogError(message string)
}

// ErrorLoggerFunc adapts a plain function to ErrorLogger.
type ErrorLoggerFunc func(message string)

// LogError implements ErrorLogger.
func (f ErrorLoggerFunc) LogError(message string) {
	f(message)
}

// NopLogger discards every message.
type NopLogger struct{}

// LogError implements ErrorLogger.
func (NopLogger) LogError(string) {}

// zerologLogger writes messages at error level.
type zerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger returns an ErrorLogger backed by a zerolog logger.
func NewZerologLogger(log zerolog.Logger) ErrorLogger {
	return &zerologLogger{log: log.With().Str("component", "raydium-api").Logger()}
}

func (l *zerologLogger) LogError(message string) {
	l.log.Error().Msg(message)
}

// restyLogger routes resty's own warnings through zerolog.
type restyLogger struct {
	log zerolog.Logger
}

func newRestyLogger(log zerolog.Logger) *restyLogger {
	return &restyLogger{log: log.With().Str("component", "resty").Logger()}
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error().Msg(fmt.Sprintf(format, v...))
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn().Msg(fmt.Sprintf(format, v...))
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug().Msg(fmt.Sprintf(format, v...))
}

// restyLoggerFor picks where resty's own messages go: the caller's logger
// when one was supplied, the process logger otherwise.
func restyLoggerFor(logger ErrorLogger) resty.Logger {
	if logger == nil {
		return newRestyLogger(*logging.Default())
	}
	return &restyBridge{logger: logger}
}

// restyBridge forwards resty errors and warnings to an ErrorLogger. Debug
// output is dropped.
type restyBridge struct {
	logger ErrorLogger
}

func (b *restyBridge) Errorf(format string, v ...interface{}) {
	b.logger.LogError(fmt.Sprintf(format, v...))
}

func (b *restyBridge) Warnf(format string, v ...interface{}) {
	b.logger.LogError(fmt.Sprintf(format, v...))
}

func (b *restyBridge) Debugf(string, ...interface{}) {}
