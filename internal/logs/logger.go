package logs

import (
	"fmt"
	"sync"
	"time"
)

type Level string

const (
	DEBUG Level = "DEBUG"
	INFO  Level = "INFO"
	WARN  Level = "WARN"
	ERROR Level = "ERROR"
)

// levelPriority orders levels by severity; higher value means more severe.
var levelPriority = map[Level]int{
	DEBUG: 1,
	INFO:  2,
	WARN:  3,
	ERROR: 4,
}

// ParseLevel maps a configured level name to a Level, defaulting to INFO
// for anything unrecognized.
func ParseLevel(s string) Level {
	switch Level(s) {
	case DEBUG, INFO, WARN, ERROR:
		return Level(s)
	default:
		return INFO
	}
}

// Entry is one recorded log line.
type Entry struct {
	TimeStamp time.Time `json:"timestamp"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
}

// Logger keeps the last maxSize entries at or above the configured level in
// an in-memory ring buffer. The health analyzer reads the buffer back to
// derive log-based signals.
type Logger struct {
	mu      sync.Mutex
	entries []Entry
	maxSize int
	level   Level
}

// NewLogger creates a logger keeping at most maxSize entries at or above
// the given minimum level.
func NewLogger(maxSize int, level Level) *Logger {
	return &Logger{
		entries: make([]Entry, 0, maxSize),
		maxSize: maxSize,
		level:   level,
	}
}

func (l *Logger) log(level Level, msg string) {
	if levelPriority[level] < levelPriority[l.level] {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) >= l.maxSize {
		// Drop the oldest entry (ring behavior).
		l.entries = l.entries[1:]
	}

	l.entries = append(l.entries, Entry{
		TimeStamp: time.Now(),
		Level:     level,
		Message:   msg,
	})
}

func (l *Logger) Debug(msg string) { l.log(DEBUG, msg) }
func (l *Logger) Info(msg string)  { l.log(INFO, msg) }
func (l *Logger) Warn(msg string)  { l.log(WARN, msg) }
func (l *Logger) Error(msg string) { l.log(ERROR, msg) }

func (l *Logger) Debugf(format string, args ...any) { l.log(DEBUG, fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...any)  { l.log(INFO, fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...any)  { l.log(WARN, fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...any) { l.log(ERROR, fmt.Sprintf(format, args...)) }

// GetLast returns a copy of up to n most recent entries, oldest first.
func (l *Logger) GetLast(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n > len(l.entries) {
		out := make([]Entry, len(l.entries))
		copy(out, l.entries)
		return out
	}

	start := len(l.entries) - n
	out := make([]Entry, n)
	copy(out, l.entries[start:])
	return out
}
