// Package logger writes structured JSON-lines logs for floatinput.
// Entries below the configured minimum level are dropped.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/VarunSharma3520/floatinput/internal/fs"
)

// LogLevel is the severity of an entry.
type LogLevel string

const (
	Debug LogLevel = "DEBUG"
	Info  LogLevel = "INFO"
	Warn  LogLevel = "WARN"
	Error LogLevel = "ERROR"
)

var levelRank = map[LogLevel]int{
	Debug: 0,
	Info:  1,
	Warn:  2,
	Error: 3,
}

// ParseLevel resolves a level name, ignoring case and surrounding spaces.
func ParseLevel(s string) (LogLevel, error) {
	level := LogLevel(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := levelRank[level]; !ok {
		return "", fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// LogEntry is one line of output.
type LogEntry struct {
	Timestamp time.Time       `json:"timestamp"`
	Level     LogLevel        `json:"level"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Logger encodes entries to a writer, one JSON document per line.
// Methods may be called from several goroutines.
type Logger struct {
	mu      sync.Mutex
	encoder *json.Encoder
	closer  io.Closer
	min     LogLevel
	now     func() time.Time
}

// Option configures a Logger.
type Option func(*Logger)

// WithLevel drops entries less severe than level.
func WithLevel(level LogLevel) Option {
	return func(l *Logger) {
		if _, ok := levelRank[level]; ok {
			l.min = level
		}
	}
}

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// NewLogger appends to the file at logPath, creating its directory first.
//
// Example:
//
//	appLogger, err := logger.NewLogger(cfg.LogPath, logger.WithLevel(logger.Warn))
//	if err != nil {
//	    log.Fatalf("Failed to initialize logger: %v", err)
//	}
//	defer appLogger.Close()
func NewLogger(logPath string, opts ...Option) (*Logger, error) {
	if err := fs.EnsureDirExists(filepath.Dir(logPath)); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := New(file, opts...)
	l.closer = file
	return l, nil
}

// New writes to w. Close leaves w open.
func New(w io.Writer, opts ...Option) *Logger {
	l := &Logger{
		encoder: json.NewEncoder(w),
		min:     Debug,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Close closes the log file when the logger opened one. Later calls are no-ops
// and later entries are discarded.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.encoder = nil
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// Enabled reports whether entries at level are written.
func (l *Logger) Enabled(level LogLevel) bool {
	return levelRank[level] >= levelRank[l.min]
}

func (l *Logger) write(level LogLevel, message string, data interface{}) {
	if !l.Enabled(level) {
		return
	}

	entry := LogEntry{
		Timestamp: l.now().UTC(),
		Level:     level,
		Message:   message,
	}
	if data != nil {
		// Unmarshalable data is dropped, the message still goes out.
		if raw, err := json.Marshal(data); err == nil {
			entry.Data = raw
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.encoder != nil {
		_ = l.encoder.Encode(entry)
	}
}

// Info logs at INFO.
//
// Example:
//
//	appLogger.Info("form submitted", map[string]interface{}{
//	    "fields": []string{"username", "pin"},
//	})
func (l *Logger) Info(message string, data interface{}) {
	l.write(Info, message, data)
}

// Error logs at ERROR with err stored under the "error" key of data. A map
// that already carries "error" keeps its value. The caller's map is not
// modified. A nil err is logged at WARN.
func (l *Logger) Error(message string, err error, data interface{}) {
	if err == nil {
		l.write(Warn, message+" (no error provided)", data)
		return
	}

	switch d := data.(type) {
	case nil:
		data = map[string]interface{}{"error": err.Error()}
	case map[string]interface{}:
		if _, exists := d["error"]; !exists {
			withErr := make(map[string]interface{}, len(d)+1)
			for k, v := range d {
				withErr[k] = v
			}
			withErr["error"] = err.Error()
			data = withErr
		}
	}
	l.write(Error, message, data)
}

// Warn logs at WARN.
func (l *Logger) Warn(message string, data interface{}) {
	l.write(Warn, message, data)
}

// Debug logs at DEBUG.
func (l *Logger) Debug(message string, data interface{}) {
	l.write(Debug, message, data)
}
