package log

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init builds a Logger from cfg. It never fails: an unparsable level falls
// back to info and a broken sink falls back to a no-op logger.
func Init(cfg ZapConfig) Logger {
	var zcfg zap.Config
	if cfg.Mode == ModeProduction {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	switch cfg.Encoding {
	case EncodingJSON:
		zcfg.Encoding = EncodingJSON
	default:
		zcfg.Encoding = EncodingConsole
	}

	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && zcfg.Encoding == EncodingConsole {
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	base, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		base = zap.NewNop()
	}

	return newZapLogger(base)
}

func newZapLogger(base *zap.Logger) *zapLogger {
	return &zapLogger{
		sugar:   base.Sugar(),
		kvSugar: base.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return newZapLogger(zap.NewNop())
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) { l.log(zapcore.DebugLevel, arg) }
func (l *zapLogger) Info(ctx context.Context, arg ...any)  { l.log(zapcore.InfoLevel, arg) }
func (l *zapLogger) Warn(ctx context.Context, arg ...any)  { l.log(zapcore.WarnLevel, arg) }
func (l *zapLogger) Error(ctx context.Context, arg ...any) { l.log(zapcore.ErrorLevel, arg) }
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	l.log(zapcore.DPanicLevel, arg)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { l.log(zapcore.PanicLevel, arg) }
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { l.log(zapcore.FatalLevel, arg) }

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.sugar.Debugf(template, arg...)
}

func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.sugar.Infof(template, arg...)
}

func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.sugar.Warnf(template, arg...)
}

func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.sugar.Errorf(template, arg...)
}

func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.sugar.DPanicf(template, arg...)
}

func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.sugar.Panicf(template, arg...)
}

func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.sugar.Fatalf(template, arg...)
}

// log treats a leading string followed by an even number of values with
// string keys as a message with key/value fields. A message ending in a
// colon ("Failed to connect: ", err) always means fmt.Sprint concatenation.
func (l *zapLogger) log(level zapcore.Level, arg []any) {
	msg, fields, ok := splitFields(arg)
	if !ok {
		msg = fmt.Sprint(arg...)
		fields = nil
	}
	l.kvSugar.Logw(level, msg, fields...)
}

func splitFields(arg []any) (string, []any, bool) {
	if len(arg) == 0 {
		return "", nil, true
	}
	msg, ok := arg[0].(string)
	if !ok {
		return "", nil, false
	}
	rest := arg[1:]
	if len(rest) > 0 && strings.HasSuffix(strings.TrimRight(msg, " "), ":") {
		return "", nil, false
	}
	if len(rest)%2 != 0 {
		return "", nil, false
	}
	for i := 0; i < len(rest); i += 2 {
		if _, ok := rest[i].(string); !ok {
			return "", nil, false
		}
	}
	return msg, rest, true
}
