// SPDX-License-Identifier: MIT

package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Root is the logger name every zap backend is created under.
const Root = "urbandesign"

// DefaultLevel is the level a new zap backend starts at.
const DefaultLevel = WarnLevel

// NewZap returns a Logger writing console entries to stderr through a zap
// sugared logger named "urbandesign.<name>". The level can be changed at
// any time with SetLevel.
func NewZap(name string) Logger {
	level := zap.NewAtomicLevelAt(zapLevel(DefaultLevel))
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.Development = false
	cfg.DisableStacktrace = true
	base, err := cfg.Build()
	if err != nil {
		base = zap.NewNop()
	}
	return &zapLogger{
		level: level,
		s:     base.Named(Root).Named(name).Sugar(),
	}
}

type zapLogger struct {
	level zap.AtomicLevel
	s     *zap.SugaredLogger
}

// zapLevel panics on a Level outside the declared constants.
func zapLevel(l Level) zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case CriticalLevel:
		return zapcore.DPanicLevel
	}
	panic("logger: unknown level " + l.String())
}

func (z *zapLogger) SetLevel(l Level)                  { z.level.SetLevel(zapLevel(l)) }
func (z *zapLogger) Debugf(format string, args ...any) { z.s.Debugf(format, args...) }
func (z *zapLogger) Infof(format string, args ...any)  { z.s.Infof(format, args...) }
func (z *zapLogger) Warnf(format string, args ...any)  { z.s.Warnf(format, args...) }
func (z *zapLogger) Errorf(format string, args ...any) { z.s.Errorf(format, args...) }
func (z *zapLogger) Panicf(format string, args ...any) { z.s.Panicf(format, args...) }
