package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap with the error-first helpers used across the services.
type Logger struct {
	*zap.Logger
}

// NewLogger builds a JSON logger in production and a colored console logger
// elsewhere. LOG_LEVEL overrides the default level of either.
func NewLogger(env string) *Logger {
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if level, err := zapcore.ParseLevel(raw); err == nil {
			config.Level = zap.NewAtomicLevelAt(level)
		}
	}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	return &Logger{Logger: logger.With(zap.String("env", env))}
}

func NewNopLogger() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...)}
}

// ForRequest scopes entries to one caller and request. Empty values are left
// out so unauthenticated paths do not log blank owners.
func (l *Logger) ForRequest(ownerID, requestID string) *Logger {
	fields := make([]zap.Field, 0, 2)
	if ownerID != "" {
		fields = append(fields, zap.String("owner", ownerID))
	}
	if requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	return l.With(fields...)
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.Logger.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.Logger.Info(msg, fields...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.Logger.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.Logger.Warn(msg, fields...)
}

// Error attaches err under the standard "error" key.
func (l *Logger) Error(msg string, err error, fields ...zap.Field) {
	l.Logger.Error(msg, append(fields, zap.Error(err))...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Logger.Error(fmt.Sprintf(format, args...))
}

func (l *Logger) Fatal(msg string, err error, fields ...zap.Field) {
	l.Logger.Fatal(msg, append(fields, zap.Error(err))...)
}
