// Package logger provides a context-aware structured logger backed by zap.
package logger

import (
	"context"
	"os"

	"github.com/KretovDmitry/bankaccount/internal/config"
	"github.com/go-chi/chi/v5/middleware"
	sqldblogger "github.com/simukti/sqldb-logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a logger that supports log levels, context and structured logging.
// It also satisfies sqldblogger.Logger so database queries can be traced.
type Logger interface {
	// With returns a logger based off the root logger and decorates it
	// with the given context and arguments.
	With(ctx context.Context, args ...interface{}) Logger

	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	// Log is called by sqldblogger for every database call.
	Log(ctx context.Context, level sqldblogger.Level, msg string, data map[string]interface{})

	// Sync flushes any buffered log entries.
	Sync() error
}

type logger struct {
	*zap.SugaredLogger
}

var _ Logger = (*logger)(nil)

// New creates a new logger using the application configuration.
// Entries go to stdout and, if a path is configured, to a rotated file.
func New(cfg *config.Config) Logger {
	level, err := zapcore.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.Lock(os.Stdout),
			level,
		),
	}

	if cfg.Logger.Path != "" {
		file := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Logger.Path,
			MaxSize:    cfg.Logger.MaxSizeMB,
			MaxBackups: cfg.Logger.MaxBackups,
			MaxAge:     cfg.Logger.MaxAgeDays,
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			file,
			level,
		))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller())

	return NewWithZap(l)
}

// NewWithZap creates a new logger using the pre-configured zap logger.
func NewWithZap(l *zap.Logger) Logger {
	return &logger{l.Sugar()}
}

// NewForTest returns a new logger and the corresponding observed logs
// which can be used in unit tests to verify log entries.
func NewForTest() (Logger, *observer.ObservedLogs) {
	core, recorded := observer.New(zapcore.DebugLevel)
	return NewWithZap(zap.New(core)), recorded
}

// With returns a logger based off the root logger and decorates it
// with the request ID found in ctx and the given arguments.
func (l *logger) With(ctx context.Context, args ...interface{}) Logger {
	if ctx != nil {
		if id := middleware.GetReqID(ctx); id != "" {
			args = append(args, zap.String("request_id", id))
		}
	}
	if len(args) > 0 {
		return &logger{l.SugaredLogger.With(args...)}
	}
	return l
}

func (l *logger) Log(_ context.Context, level sqldblogger.Level, msg string, data map[string]interface{}) {
	fields := make([]interface{}, 0, len(data)*2)
	for k, v := range data {
		fields = append(fields, k, v)
	}

	switch level {
	case sqldblogger.LevelError:
		l.Errorw(msg, fields...)
	case sqldblogger.LevelInfo:
		l.Infow(msg, fields...)
	default:
		l.Debugw(msg, fields...)
	}
}
