// Package logging is a small leveled logger that writes timestamped lines to
// a file. The package-level helpers are no-ops until Init is called, so
// library code can log unconditionally.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes leveled, timestamped lines to out. It is safe for
// concurrent use.
type Logger struct {
	out   io.Writer
	mutex sync.Mutex
	now   func() time.Time
}

var (
	globalMu     sync.Mutex
	globalLogger *Logger
	globalFile   *os.File
	globalName   string
)

// New returns a logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{out: w, now: time.Now}
}

// Init opens path for appending and makes it the target of the package-level
// helpers. name is written in the start and stop banners.
func Init(path, name string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalFile != nil {
		globalFile.Close()
	}
	globalFile = f
	globalName = name
	globalLogger = New(f)

	globalLogger.Info("=== %s started ===", name)
	return nil
}

// Close ends the log started by Init. Later package-level calls are dropped.
func Close() {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		return
	}
	globalLogger.Info("=== %s stopped ===", globalName)
	globalFile.Close()
	globalLogger, globalFile = nil, nil
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.write("INFO", format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.write("ERROR", format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.write("DEBUG", format, args...)
}

// Panic records a value returned by recover, tagged with where it was caught.
func (l *Logger) Panic(value interface{}, where string) {
	l.write("PANIC", "%s: %v", where, value)
}

// write emits one line per call; a nil logger drops it. File targets are
// synced so the tail survives a crash.
func (l *Logger) write(level, format string, args ...interface{}) {
	if l == nil {
		return
	}
	line := fmt.Sprintf("[%s] %s: %s\n",
		l.now().Format("2006-01-02 15:04:05.000"), level, fmt.Sprintf(format, args...))

	l.mutex.Lock()
	defer l.mutex.Unlock()
	io.WriteString(l.out, line)
	if f, ok := l.out.(*os.File); ok {
		f.Sync()
	}
}

func current() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalLogger
}

// LogInfo and the other Log helpers write to the logger set up by Init.
func LogInfo(format string, args ...interface{}) {
	current().Info(format, args...)
}

func LogError(format string, args ...interface{}) {
	current().Error(format, args...)
}

func LogDebug(format string, args ...interface{}) {
	current().Debug(format, args...)
}

func LogPanic(value interface{}, where string) {
	current().Panic(value, where)
}
