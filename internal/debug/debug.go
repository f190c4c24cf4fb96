package debug

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "GUI_DEBUG"

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var (
	loggerPtr atomic.Pointer[slog.Logger]

	mu      sync.Mutex
	logFile *os.File
)

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
	if path := os.Getenv(EnvVar); path != "" {
		// A bad path leaves logging disabled.
		_ = Init(path)
	}
}

// Init opens path for appending and routes debug records to it.
// If path is empty, uses "gui-debug.log" in the current directory.
func Init(path string) error {
	if path == "" {
		path = "gui-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	mu.Lock()
	old := logFile
	logFile = f
	mu.Unlock()
	if old != nil {
		old.Close()
	}

	loggerPtr.Store(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return nil
}

// Close closes the debug log file, if any, and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	loggerPtr.Store(slog.New(nopHandler{}))
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// SetLogger installs l as the debug logger. Passing nil disables logging.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the active debug logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Enabled reports whether debug records are currently recorded.
func Enabled() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}

// Log formats a message and writes it at debug level.
func Log(format string, args ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// Event writes a structured debug record.
func Event(msg string, attrs ...any) {
	Logger().Debug(msg, attrs...)
}
