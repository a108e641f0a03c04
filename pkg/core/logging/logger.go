// ============================================================================
// tzgrid - Terminal time zone grid
// ============================================================================
//
// Package:     logging
// Description: Levelled key/value logger writing to stderr
// Author:      dpb1
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"sync"
	"time"
)

// Config holds configuration for creating loggers
type Config struct {
	Name   string
	Level  Level
	Format Format
	Output io.Writer
}

// Logger writes levelled entries with key/value pairs
type Logger struct {
	name      string
	level     Level
	formatter Formatter
	output    io.Writer
	fields    Fields
	now       func() time.Time

	mu *sync.Mutex
}

// NewWithConfig creates a logger from an explicit configuration
func NewWithConfig(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	return &Logger{
		name:      cfg.Name,
		level:     cfg.Level,
		formatter: GetFormatter(cfg.Format),
		output:    cfg.Output,
		fields:    make(Fields),
		now:       time.Now,
		mu:        &sync.Mutex{},
	}
}

// New creates a text logger at warn level on stderr
func New(name string) *Logger {
	return NewWithConfig(Config{Name: name, Level: LevelWarn})
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return NewWithConfig(Config{Level: LevelError + 1, Output: io.Discard})
}

// Named returns a child logger with a different name sharing the output
func (l *Logger) Named(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// With returns a child logger that adds the key/value pairs to every entry
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	clone := l.clone()
	for k, v := range toFields(keysAndValues...) {
		clone.fields[k] = v
	}
	return clone
}

// Level returns the minimum level that is written
func (l *Logger) Level() Level {
	return l.level
}

// Enabled reports whether entries at level are written
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log(LevelDebug, msg, keysAndValues)
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.log(LevelInfo, msg, keysAndValues)
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.log(LevelWarn, msg, keysAndValues)
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.log(LevelError, msg, keysAndValues)
}

func (l *Logger) log(level Level, msg string, keysAndValues []interface{}) {
	if !l.Enabled(level) {
		return
	}

	fields := make(Fields, len(l.fields)+len(keysAndValues)/2)
	for k, v := range l.fields {
		fields[k] = v
	}
	for k, v := range toFields(keysAndValues...) {
		fields[k] = v
	}

	entry := &Entry{
		Timestamp: l.now(),
		Level:     level,
		Logger:    l.name,
		Message:   msg,
		Fields:    fields,
	}

	data, err := l.formatter.Format(entry)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.output.Write(data)
}

func (l *Logger) clone() *Logger {
	fields := make(Fields, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	return &Logger{
		name:      l.name,
		level:     l.level,
		formatter: l.formatter,
		output:    l.output,
		fields:    fields,
		now:       l.now,
		mu:        l.mu,
	}
}

// toFields converts key-value pairs to Fields
func toFields(keysAndValues ...interface{}) Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
