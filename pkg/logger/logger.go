// Package logger задаёт интерфейс логгера приложения и его реализацию поверх zap.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger — логгер в стиле printf, используемый всеми слоями приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger создаёт production-логгер zap с указанным уровнем (debug, info, warn, error).
func NewZapLogger(level string) (Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	config.Level = lvl

	l, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &zapLogger{sugar: l.Sugar()}, nil
}

// NewNop возвращает логгер, который ничего не пишет.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) Debugf(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

func (l *zapLogger) Infof(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Warnf(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

func (l *zapLogger) Errorf(err error, format string, args ...any) {
	l.sugar.With(zap.Error(err)).Errorf(format, args...)
}

// Sync сбрасывает буферы, если реализация их держит.
func Sync(l Logger) error {
	if z, ok := l.(*zapLogger); ok {
		return z.sugar.Sync()
	}
	return nil
}
