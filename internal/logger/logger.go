// Package logger - глобальный zap-логгер сервиса с необязательной записью в файл.
package logger

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"rtp_casino/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var (
	log         = zap.NewNop()
	atomicLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Init настраивает логгер: JSON в stdout и, если задан файл, ротируемый файл
func Init(cfg config.LogConfig) error {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	atomicLevel.SetLevel(parseLevel(cfg.Level()))

	enc := zapcore.NewJSONEncoder(encoderConfig)
	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(os.Stdout), atomicLevel),
	}

	if file := strings.TrimSpace(cfg.File()); file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return err
		}
		lw := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    cfg.MaxSizeMB(),
			MaxBackups: cfg.MaxBackups(),
			MaxAge:     cfg.MaxAgeDays(),
			Compress:   cfg.Compress(),
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(lw), atomicLevel))
	}

	log = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	return nil
}

// Set подменяет логгер, удобно в тестах (zaptest/observer)
func Set(l *zap.Logger) {
	log = l
}

func L() *zap.Logger {
	return log
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLevel меняет уровень без пересоздания логгера
func SetLevel(level string) {
	atomicLevel.SetLevel(parseLevel(level))
}

func Info(msg string, fields ...zap.Field)  { log.Info(msg, fields...) }
func Error(msg string, fields ...zap.Field) { log.Error(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { log.Warn(msg, fields...) }
func Debug(msg string, fields ...zap.Field) { log.Debug(msg, fields...) }
func Sync()                                 { _ = log.Sync() }

func withRequestID(ctx context.Context, fields []zap.Field) []zap.Field {
	if id := RequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	return fields
}

func InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	log.Info(msg, withRequestID(ctx, fields)...)
}

func WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	log.Warn(msg, withRequestID(ctx, fields)...)
}

func ErrorCtx(ctx context.Context, msg string, fields ...zap.Field) {
	log.Error(msg, withRequestID(ctx, fields)...)
}

func DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	log.Debug(msg, withRequestID(ctx, fields)...)
}
