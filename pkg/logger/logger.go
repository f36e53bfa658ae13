package logger

import (
	"fmt"
	"os"

	"document-extraction-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// AppLogger implements the domain.Logger interface on top of logrus.
type AppLogger struct {
	logger *logrus.Logger
}

// NewLogger creates a new logger instance
func NewLogger(levelStr string) domain.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return &AppLogger{logger: log}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	l.logger.WithFields(toLogrusFields(fields...)).Info(msg)
}

// Error logs an error message with its cause attached
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	l.logger.WithError(err).WithFields(toLogrusFields(fields...)).Error(msg)
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	l.logger.WithFields(toLogrusFields(fields...)).Debug(msg)
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	l.logger.WithFields(toLogrusFields(fields...)).Warn(msg)
}

// toLogrusFields converts variadic key/value pairs into structured fields.
// A trailing key without a value is dropped.
func toLogrusFields(fields ...interface{}) logrus.Fields {
	out := make(logrus.Fields, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		out[key] = fields[i+1]
	}
	return out
}
