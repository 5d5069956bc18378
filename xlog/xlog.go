package xlog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xtree/lib/infra"
)

var _ XLogger = (*xLogger)(nil)

type xLogger struct {
	logger              *zap.Logger
	dynamicLevelEnabler zap.AtomicLevel
}

func (l *xLogger) zap() *zap.Logger {
	return l.logger
}

// IncreaseLogLevel we can increase or decrease the log level concurrently.
func (l *xLogger) IncreaseLogLevel(level zapcore.Level) {
	l.dynamicLevelEnabler.SetLevel(level)
}

func (l *xLogger) Level() string {
	return l.dynamicLevelEnabler.Level().String()
}

func (l *xLogger) Sync() error {
	return l.logger.Sync()
}

func (l *xLogger) Named(name string) XLogger {
	return &xLogger{
		logger:              l.logger.Named(name),
		dynamicLevelEnabler: l.dynamicLevelEnabler,
	}
}

func (l *xLogger) Debug(msg string, fields ...zap.Field) {
	l.logger.Debug(msg, fields...)
}

func (l *xLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Info(msg, fields...)
}

func (l *xLogger) Warn(msg string, fields ...zap.Field) {
	l.logger.Warn(msg, fields...)
}

func (l *xLogger) Error(err error, msg string, fields ...zap.Field) {
	newFields := make([]zap.Field, 0, len(fields)+1)
	if err != nil {
		newFields = append(newFields, zap.String("error", err.Error()))
	}
	newFields = append(newFields, fields...)
	l.logger.Error(msg, newFields...)
}

func errorStackFields(err error, extra int) []zap.Field {
	fields := make([]zap.Field, 0, extra+1)
	var es infra.ErrorStack
	if errors.As(err, &es) && es != nil {
		return append(fields, zap.Inline(es))
	}
	if err != nil {
		return append(fields, zap.String("error", err.Error()))
	}
	return fields
}

func (l *xLogger) ErrorStack(err error, msg string, fields ...zap.Field) {
	newFields := errorStackFields(err, len(fields))
	newFields = append(newFields, fields...)
	l.logger.Error(msg, newFields...)
}

func (l *xLogger) Logf(lvl zapcore.Level, format string, args ...any) {
	l.logger.Log(lvl, fmt.Sprintf(format, args...))
}

func (l *xLogger) ErrorStackf(err error, format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...), errorStackFields(err, 0)...)
}

type loggerCfg struct {
	encoderType *logEncoderType
	writerType  *logOutWriterType
	ws          zapcore.WriteSyncer
	lvlEncoder  zapcore.LevelEncoder
	tsEncoder   zapcore.TimeEncoder
	level       *zapcore.Level
}

func (cfg *loggerCfg) apply(l *xLogger) zapcore.Core {
	encoder := JSON
	if cfg.encoderType != nil {
		encoder = *cfg.encoderType
	}

	if cfg.level != nil {
		l.dynamicLevelEnabler = zap.NewAtomicLevelAt(*cfg.level)
	} else {
		l.dynamicLevelEnabler = zap.NewAtomicLevelAt(getLogLevelOrDefault(os.Getenv(envLogLevel)))
	}

	if cfg.lvlEncoder == nil {
		cfg.lvlEncoder = zapcore.CapitalLevelEncoder
	}

	if cfg.tsEncoder == nil {
		cfg.tsEncoder = zapcore.ISO8601TimeEncoder
	}

	if cfg.ws == nil {
		writer := StdOut
		if cfg.writerType != nil {
			writer = *cfg.writerType
		}
		cfg.ws = getOutWriterByType(writer)
	}

	return newConsoleCore(
		l.dynamicLevelEnabler,
		encoder,
		cfg.ws,
		cfg.lvlEncoder,
		cfg.tsEncoder,
	)
}

type XLoggerOption func(*loggerCfg) error

func NewXLogger(opts ...XLoggerOption) XLogger {
	cfg := &loggerCfg{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(cfg); err != nil {
			panic(err)
		}
	}
	xl := &xLogger{}
	core := cfg.apply(xl)

	// Disable zap logger error stack.
	xl.logger = zap.New(
		core,
		zap.AddCallerSkip(1), // Use caller filename as service
		zap.AddCaller(),
	)
	return xl
}

// NewNopXLogger discards everything.
func NewNopXLogger() XLogger {
	return &xLogger{
		logger:              zap.NewNop(),
		dynamicLevelEnabler: zap.NewAtomicLevelAt(zapcore.ErrorLevel),
	}
}

func WithXLoggerEncoder(logEnc logEncoderType) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if logEnc >= _encMax {
			return infra.NewErrorStack("[XLogger] unknown encoder")
		}
		cfg.encoderType = &logEnc
		return nil
	}
}

func WithXLoggerWriter(w logOutWriterType) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if w >= _writerMax {
			return infra.NewErrorStack("[XLogger] unknown writer")
		}
		cfg.writerType = &w
		return nil
	}
}

// WithXLoggerWriteSyncer takes precedence over WithXLoggerWriter.
func WithXLoggerWriteSyncer(ws zapcore.WriteSyncer) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if ws == nil {
			return infra.NewErrorStack("[XLogger] nil write syncer")
		}
		cfg.ws = ws
		return nil
	}
}

func WithXLoggerLevel(lvl logLevel) XLoggerOption {
	return func(cfg *loggerCfg) error {
		_lvl := lvl.zapLevel()
		cfg.level = &_lvl
		return nil
	}
}

func WithXLoggerLevelEncoder(lvlEnc zapcore.LevelEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if lvlEnc == nil {
			lvlEnc = zapcore.CapitalColorLevelEncoder
		}
		cfg.lvlEncoder = lvlEnc
		return nil
	}
}

func WithXLoggerTimeEncoder(tsEnc zapcore.TimeEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if tsEnc == nil {
			tsEnc = zapcore.ISO8601TimeEncoder
		}
		cfg.tsEncoder = tsEnc
		return nil
	}
}

// ParseLogLevel is case-insensitive, unknown names fall back to DEBUG.
func ParseLogLevel(level string) logLevel {
	switch lvl := logLevel(strings.ToUpper(strings.TrimSpace(level))); lvl {
	case LogLevelInfo, LogLevelWarn, LogLevelError:
		return lvl
	default:
	}
	return LogLevelDebug
}

func getLogLevelOrDefault(level string) zapcore.Level {
	return ParseLogLevel(level).zapLevel()
}
