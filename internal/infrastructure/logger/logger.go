package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zenndi/zenndi-ops/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger carries diagnostics. Operator-facing output goes through the
// console notifier instead, so the console core writes to stderr.
type Logger struct {
	*zap.SugaredLogger
}

func New(cfg *config.AppConfig) (*Logger, error) {
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), level),
	}

	if cfg.LogFile != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    20,
			MaxBackups: 5,
			MaxAge:     90,
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, level))
	}

	zapLogger := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	if cfg.Name != "" {
		zapLogger = zapLogger.With(zap.String("app", cfg.Name))
	}

	return &Logger{zapLogger.Sugar()}, nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

func (l *Logger) Close() {
	_ = l.Sync()
}
