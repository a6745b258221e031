package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is the logging surface services depend on.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// LogrusLogger implements Logger on top of logrus.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger builds a text logger at the given level ("debug", "info", ...).
// An unknown level falls back to info.
func NewLogrusLogger(level string) *LogrusLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

// NewDiscardLogger returns a logger that writes nowhere, used by tests and CLI seeding.
func NewDiscardLogger() *LogrusLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

// WriteToDir mirrors output into dir/app-YYYY-MM-DD.log, creating dir if needed.
// Closing the result stops the mirroring and closes the file.
func (l *LogrusLogger) WriteToDir(dir string, day time.Time) (io.Closer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	name := filepath.Join(dir, fmt.Sprintf("app-%s.log", day.Format("2006-01-02")))
	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, err
	}
	prev := l.entry.Logger.Out
	l.entry.Logger.SetOutput(io.MultiWriter(prev, file))
	return &logFile{logger: l.entry.Logger, prev: prev, file: file}, nil
}

type logFile struct {
	logger *logrus.Logger
	prev   io.Writer
	file   *os.File
}

func (f *logFile) Close() error {
	f.logger.SetOutput(f.prev)
	return f.file.Close()
}

// WithField returns a child logger carrying one structured field.
func (l *LogrusLogger) WithField(key string, value interface{}) *LogrusLogger {
	return &LogrusLogger{entry: l.entry.WithField(key, value)}
}

// Logrus exposes the underlying entry for middleware that needs structured fields.
func (l *LogrusLogger) Logrus() *logrus.Entry {
	return l.entry
}

func (l *LogrusLogger) Debug(format string, v ...interface{}) {
	l.entry.Debugf(format, v...)
}

func (l *LogrusLogger) Info(format string, v ...interface{}) {
	l.entry.Infof(format, v...)
}

func (l *LogrusLogger) Warn(format string, v ...interface{}) {
	l.entry.Warnf(format, v...)
}

func (l *LogrusLogger) Error(format string, v ...interface{}) {
	l.entry.Errorf(format, v...)
}
