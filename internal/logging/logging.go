// Package logging provides the diagnostic logger shared by the pipeline stages.
//
// Diagnostics are plain human-readable lines on standard output. When a log
// file is configured the same entries are also written to it as JSON.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ginjaninja78/xml-to-bom/internal/config"
)

// Logger is the printf-style interface the pipeline stages log through.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// ZapLogger implements Logger on top of a zap.SugaredLogger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
	file  *os.File
}

// New builds a logger writing plain lines to stdout and, when
// cfg.LogFile is set, JSON entries carrying fields to that file.
func New(cfg config.LoggingConfig, fields ...zap.Field) (*ZapLogger, error) {
	return NewWithWriter(os.Stdout, cfg, fields...)
}

// NewWithWriter is New with an explicit console destination.
func NewWithWriter(w io.Writer, cfg config.LoggingConfig, fields ...zap.Field) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zapcore.InfoLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig()), zapcore.AddSync(w), level),
	}

	var f *os.File
	if cfg.LogFile != "" {
		f, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		// Context fields go to the file only; stdout stays plain text.
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(f),
			level,
		).With(fields))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	return &ZapLogger{sugar: logger.Sugar(), file: f}, nil
}

// consoleEncoderConfig emits only the message, so stdout reads like plain prints.
func consoleEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

// Nop returns a logger that discards everything.
func Nop() *ZapLogger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *ZapLogger) Debug(msg string, args ...interface{}) { l.sugar.Debugf(msg, args...) }
func (l *ZapLogger) Info(msg string, args ...interface{})  { l.sugar.Infof(msg, args...) }
func (l *ZapLogger) Warn(msg string, args ...interface{})  { l.sugar.Warnf(msg, args...) }
func (l *ZapLogger) Error(msg string, args ...interface{}) { l.sugar.Errorf(msg, args...) }

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

// Close flushes buffered entries and closes the log file, if any. Sync
// errors are ignored since stdout may not support fsync.
func (l *ZapLogger) Close() error {
	_ = l.sugar.Sync()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
