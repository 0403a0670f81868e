// pkg/logger/logger.go
package logger

import "go.uber.org/zap"

// Logger is what the statusfeed services and controllers log through.
// Production wires the zap implementation; tests use NewNop.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Fatal(msg string, fields ...zap.Field)
	With(fields ...zap.Field) Logger
	Sync() error
	GetZapLogger() *zap.Logger
}
