// Package logger provides zap-backed implementations of the
// contracts.Logger interface.
package logger

import (
	"go.uber.org/zap"

	"github.com/jameswenzel/Fractal-Midi/sdk/contracts"
)

// ZapLogger is an implementation of the Logger contract backed by Uber's
// zap logger.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger creates a production-configured zap logger. Pass debug
// to get the human-readable development configuration at debug level.
func NewZapLogger(debug bool) contracts.Logger {
	var l *zap.Logger
	if debug {
		l, _ = zap.NewDevelopment()
	} else {
		l, _ = zap.NewProduction()
	}
	return &ZapLogger{logger: l}
}

// NewNopLogger returns a logger that discards everything. It is the
// library default so the pipeline stays silent unless a caller opts in.
func NewNopLogger() contracts.Logger {
	return &ZapLogger{logger: zap.NewNop()}
}

// Info logs a message at the INFO level.
func (z *ZapLogger) Info(msg string, fields ...contracts.Field) {
	z.logger.Info(msg, zapFields(fields)...)
}

// Debug logs a message at the DEBUG level.
func (z *ZapLogger) Debug(msg string, fields ...contracts.Field) {
	z.logger.Debug(msg, zapFields(fields)...)
}

// Warn logs a message at the WARN level.
func (z *ZapLogger) Warn(msg string, fields ...contracts.Field) {
	z.logger.Warn(msg, zapFields(fields)...)
}

// Error logs a message at the ERROR level.
func (z *ZapLogger) Error(msg string, fields ...contracts.Field) {
	z.logger.Error(msg, zapFields(fields)...)
}

func zapFields(fields []contracts.Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}
