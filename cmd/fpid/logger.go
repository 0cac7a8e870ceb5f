package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newZapEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "channel",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func newLoggerEncoder() zapcore.Encoder {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return zapcore.NewConsoleEncoder(newZapEncoderConfig())
	}

	return zapcore.NewJSONEncoder(newZapEncoderConfig())
}

func createLogger(output zapcore.WriteSyncer) *zap.Logger {
	core := zapcore.NewCore(newLoggerEncoder(), output, zap.NewAtomicLevelAt(zap.InfoLevel))

	return zap.New(core)
}
