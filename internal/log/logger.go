// Package log wraps logrus behind the small API the rest of reseq uses.
// A package-level logger serves most callers; NewLogger builds isolated
// loggers for tests and for front ends that log to a file.
package log

import (
	"io"
	"os"

	"reseq/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single structured key/value pair
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger is a logrus entry plus the resources it owns
type Logger struct {
	base  *logrus.Logger
	entry *logrus.Entry
	file  *os.File
}

// Option configures a Logger
type Option func(*Logger)

// WithOutput sends log lines to w
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.base.SetOutput(w)
	}
}

// WithJSON switches to JSON lines with timestamp, level and message keys
func WithJSON() Option {
	return func(l *Logger) {
		l.base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}
}

// WithFile appends log lines to the file at path instead of stdout.
// If the file cannot be opened the logger keeps its current output.
func WithFile(path string) Option {
	return func(l *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			l.entry.WithField("error", err).Warn("could not open log file")
			return
		}
		l.file = f
		l.base.SetOutput(f)
	}
}

// NewLogger creates a logger writing text lines to stdout
func NewLogger(opts ...Option) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stdout)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	l := &Logger{base: base, entry: logrus.NewEntry(base)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Configure replaces the package-level logger. A log file held by the
// previous logger is closed.
func Configure(opts ...Option) {
	prev := logger
	logger = NewLogger(opts...)
	prev.Close()
}

// Close releases the package-level logger's file, if any
func Close() error {
	return logger.Close()
}

// SetDebug toggles debug output for every logger
func SetDebug(debug bool) {
	isDebug = debug
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.file != nil {
		f := l.file
		l.file = nil
		return f.Close()
	}
	return nil
}

// With returns a child logger carrying fields
func (l *Logger) With(fields ...Field) *Logger {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return &Logger{base: l.base, entry: l.entry.WithFields(lf), file: l.file}
}

// WithError returns a child logger describing err
func (l *Logger) WithError(err error) *Logger {
	return l.With(errorFields(err)...)
}

func (l *Logger) Info(msg string)                           { l.entry.Info(msg) }
func (l *Logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *Logger) Warn(msg string)                           { l.entry.Warn(msg) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *Logger) Error(msg string)                          { l.entry.Error(msg) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// Debug logs only when debug output is enabled
func (l *Logger) Debug(msg string) {
	if isDebug {
		l.entry.Debug(msg)
	}
}

// Debugf logs a formatted message only when debug output is enabled
func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		l.entry.Debugf(format, args...)
	}
}

func errorFields(err error) []Field {
	if err == nil {
		return []Field{F("error", "<nil>")}
	}

	fields := []Field{
		F("error", err.Error()),
		F("error_kind", errors.KindOf(err).String()),
	}

	var fileErr *errors.FileError
	if errors.As(err, &fileErr) && fileErr.Path() != "" {
		fields = append(fields, F("path", fileErr.Path()))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		fields = append(fields, F("param", configErr.Param()))
	}
	var renameErr *errors.RenameError
	if errors.As(err, &renameErr) {
		fields = append(fields, F("from", renameErr.From()), F("to", renameErr.To()), F("completed", renameErr.Completed()))
	}
	return fields
}

// LogWithFields returns the package logger with fields attached
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError returns the package logger describing err
func LogWithError(err error) *Logger {
	return logger.WithError(err)
}

// LogError logs err at error level with msg
func LogError(err error, msg string) {
	logger.WithError(err).Error(msg)
}

func Info(msg string)                           { logger.Info(msg) }
func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }
func Warn(msg string)                           { logger.Warn(msg) }
func Warnf(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Error(msg string)                          { logger.Error(msg) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
func Debug(msg string)                          { logger.Debug(msg) }
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }
