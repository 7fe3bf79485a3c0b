package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls the rotating file sink.
type Config struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Level      zapcore.Level
}

func DefaultConfig(filename string) Config {
	return Config{
		Filename:   filename,
		MaxSizeMB:  100,
		MaxBackups: 3,
		MaxAgeDays: 28,
		Level:      zapcore.InfoLevel,
	}
}

// New builds a production logger writing JSON lines to a size-rotated
// file.
func New(cfg Config) *zap.Logger {
	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	})
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		sink,
		cfg.Level,
	)
	return zap.New(core)
}
