package log

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init builds the process logger.
func Init(cfg ZapConfig) Logger {
	return &zapLogger{s: zap.New(newCore(cfg), zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{s: zap.NewNop().Sugar()}
}

func newCore(cfg ZapConfig) zapcore.Core {
	encCfg := zap.NewDevelopmentEncoderConfig()
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.TimeKey = keyTime
	encCfg.LevelKey = keyLevel
	encCfg.CallerKey = keyCaller
	encCfg.MessageKey = keyMessage
	encCfg.NameKey = keyLogger
	encCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(timeFormat))
	}

	var enc zapcore.Encoder
	if cfg.Encoding == EncodingConsole {
		if cfg.ColorEnabled {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var out zapcore.WriteSyncer = os.Stderr
	if cfg.Output != nil {
		out = zapcore.AddSync(cfg.Output)
	}
	return zapcore.NewCore(enc, out, zap.NewAtomicLevelAt(level))
}

type ctxKey struct{}

// WithContext stores l in ctx. Loggers called with the returned context log
// through l, keeping whatever fields l carries.
func WithContext(ctx context.Context, l Logger) context.Context {
	zl, ok := l.(*zapLogger)
	if !ok {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, zl.s)
}

func (l *zapLogger) from(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if s, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok && s != nil {
			return s
		}
	}
	return l.s
}

func (l *zapLogger) With(kv ...any) Logger {
	return &zapLogger{s: l.s.With(kv...)}
}

func (l *zapLogger) Debug(ctx context.Context, args ...any) { l.from(ctx).Debug(args...) }
func (l *zapLogger) Info(ctx context.Context, args ...any)  { l.from(ctx).Info(args...) }
func (l *zapLogger) Warn(ctx context.Context, args ...any)  { l.from(ctx).Warn(args...) }
func (l *zapLogger) Error(ctx context.Context, args ...any) { l.from(ctx).Error(args...) }
func (l *zapLogger) Fatal(ctx context.Context, args ...any) { l.from(ctx).Fatal(args...) }

func (l *zapLogger) Debugf(ctx context.Context, template string, args ...any) {
	l.from(ctx).Debugf(template, args...)
}

func (l *zapLogger) Infof(ctx context.Context, template string, args ...any) {
	l.from(ctx).Infof(template, args...)
}

func (l *zapLogger) Warnf(ctx context.Context, template string, args ...any) {
	l.from(ctx).Warnf(template, args...)
}

func (l *zapLogger) Errorf(ctx context.Context, template string, args ...any) {
	l.from(ctx).Errorf(template, args...)
}

func (l *zapLogger) Fatalf(ctx context.Context, template string, args ...any) {
	l.from(ctx).Fatalf(template, args...)
}
