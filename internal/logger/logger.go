package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Параметры ротации лог-файла.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// New собирает SugaredLogger с заданным уровнем.
// Если file не пуст - лог пишется в файл с ротацией, иначе в stderr.
func New(level, file string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	var sink io.Writer = os.Stderr
	encCfg := zap.NewDevelopmentEncoderConfig()
	if file != "" {
		sink = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	return NewWithWriter(lvl, zapcore.AddSync(sink), encCfg, file != ""), nil
}

// NewWithWriter строит логгер поверх произвольного writer'а (используется и в тестах).
func NewWithWriter(lvl zapcore.Level, ws zapcore.WriteSyncer, encCfg zapcore.EncoderConfig, jsonOut bool) *zap.SugaredLogger {
	var enc zapcore.Encoder
	if jsonOut {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, ws, zap.NewAtomicLevelAt(lvl))
	return zap.New(core).Sugar()
}
