// Package log provides structured, category-based logging for strata.
// Logging is off unless enabled with --debug or STRATA_DEBUG; entries are
// written to a file (the terminal belongs to the TUI) and also published on
// a pubsub broker for in-process listeners.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/strata-labs/strata/internal/pubsub"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatTable   Category = "table"   // Tabular projection and rendering
	CatData    Category = "data"    // Mock dataset loading and filtering
	CatConfig  Category = "config"  // Configuration loading/saving
	CatUI      Category = "ui"      // UI component updates
	CatMode    Category = "mode"    // Marketing/dashboard mode switches
	CatWatcher Category = "watcher" // Data directory watcher events
	CatCache   Category = "cache"   // Dataset cache
	CatTrace   Category = "trace"   // Tracing provider lifecycle
)

// Logger writes formatted entries to a writer.
type Logger struct {
	mu       sync.Mutex
	closer   io.Closer
	writer   io.Writer
	enabled  bool
	minLevel Level
	broker   *pubsub.Broker[string]
}

var (
	stdMu sync.RWMutex
	std   *Logger
)

// Init opens path for appending and installs it as the global logger.
// The returned func closes the file.
func Init(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G304: user-chosen debug log path
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	install(&Logger{closer: f, writer: f, enabled: true, minLevel: LevelDebug, broker: pubsub.NewBroker[string]()})
	return func() { _ = f.Close() }, nil
}

// InitWithTeaLog routes logging through tea.LogToFile with the given prefix.
func InitWithTeaLog(path, prefix string) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, err
	}
	install(&Logger{closer: f, writer: f, enabled: true, minLevel: LevelDebug, broker: pubsub.NewBroker[string]()})
	return func() { _ = f.Close() }, nil
}

// InitWriter installs a logger writing to w. Used by tests.
func InitWriter(w io.Writer, minLevel Level) {
	install(&Logger{writer: w, enabled: true, minLevel: minLevel, broker: pubsub.NewBroker[string]()})
}

// Reset removes the global logger.
func Reset() {
	stdMu.Lock()
	old := std
	std = nil
	stdMu.Unlock()
	if old != nil && old.broker != nil {
		old.broker.Close()
	}
}

func install(l *Logger) {
	stdMu.Lock()
	old := std
	std = l
	stdMu.Unlock()
	if old != nil && old.broker != nil {
		old.broker.Close()
	}
}

func current() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields...)
}

// ErrorErr logs msg at error level with err attached as the "error" field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	errText := "<nil>"
	if err != nil {
		errText = err.Error()
	}
	write(LevelError, cat, msg, append(fields, "error", errText)...)
}

// Format renders one entry line. Format:
// 2026-01-02T15:04:05 [INFO] [data] loaded dataset name=streams rows=12
func Format(ts time.Time, level Level, cat Category, msg string, fields ...any) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] [%s] %s", ts.Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&sb, " %v=<missing>", fields[len(fields)-1])
	}
	sb.WriteString("\n")
	return sb.String()
}

func write(level Level, cat Category, msg string, fields ...any) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	if !l.enabled || level < l.minLevel {
		l.mu.Unlock()
		return
	}
	entry := Format(time.Now(), level, cat, msg, fields...)
	if l.writer != nil {
		_, _ = io.WriteString(l.writer, entry)
	}
	l.mu.Unlock()

	if l.broker != nil {
		l.broker.Publish(pubsub.KindLogged, entry)
	}
}

// Entry is a log line delivered to listeners.
type Entry = pubsub.Event[string]

// NewListener subscribes to log entries for the lifetime of ctx.
// Returns nil when logging is not initialized.
func NewListener(ctx context.Context) *pubsub.Listener[string] {
	l := current()
	if l == nil || l.broker == nil {
		return nil
	}
	return pubsub.Listen(ctx, l.broker)
}
