// Package logger provides prefixed, colored leveled loggers backed by logrus.
package logger

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/beka-birhanu/amazeing/config"
	"github.com/sirupsen/logrus"
)

const timeLayout = "2006/01/02 15:04:05"

// ErrEmptyPrefix is returned when a logger is created without a prefix.
var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger writes "[PREFIX] [LEVEL] message" lines.
type Logger struct {
	log *logrus.Logger
}

// New creates a logger whose lines carry prefix rendered in color.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, ErrEmptyPrefix
	}
	if out == nil {
		return nil, errors.New("logger output must not be nil")
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})

	return &Logger{log: l}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.log.Info(msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.log.Warn(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.log.Error(msg)
}

// prefixFormatter renders entries the way the rest of the application prints its logs.
type prefixFormatter struct {
	prefix string
	color  string
}

// Format implements logrus.Formatter.
func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(e.Time.Format(timeLayout))
	buf.WriteString(" ")
	buf.WriteString(f.color + "[" + f.prefix + "]" + config.ColorReset)
	buf.WriteString(" ")
	buf.WriteString(levelColor(e.Level) + "[" + strings.ToUpper(e.Level.String()) + "]" + config.LogColorReset)
	buf.WriteString(" ")
	buf.WriteString(e.Message)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func levelColor(level logrus.Level) string {
	switch level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return config.LogErrorColor
	case logrus.WarnLevel:
		return config.LogWarningColor
	default:
		return config.LogInfoColor
	}
}
