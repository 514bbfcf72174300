package eventlog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/term"

	"github.com/Mavwarf/luwidget/internal/paths"
)

var (
	mu  sync.RWMutex
	std Store = nopStore{}
)

// OpenDefault installs the process-wide store. When enabled is false the
// log is discarded. Lines are mirrored to stderr when it is a terminal.
func OpenDefault(enabled bool) {
	if !enabled {
		SetDefault(nopStore{})
		return
	}
	fs := NewFileStore(logPath())
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fs = fs.WithMirror(os.Stderr)
	}
	SetDefault(fs)
}

// SetDefault replaces the process-wide store.
func SetDefault(s Store) {
	mu.Lock()
	std = s
	mu.Unlock()
}

// Default returns the process-wide store.
func Default() Store {
	mu.RLock()
	defer mu.RUnlock()
	return std
}

// Startup records the app name and the autostart state read at launch.
func Startup(appName string, autostart bool) {
	report(Default().LogStartup(appName, autostart))
}

// Toggle records an autostart toggle from source ("menu", "ui", ...).
func Toggle(source string, enabled bool, err error) {
	report(Default().LogToggle(source, enabled, err))
}

// Notification records a notification show attempt.
func Notification(message string, err error) {
	report(Default().LogNotification(message, err))
}

// Window records a window operation, typically a swallowed failure.
func Window(label, op string, err error) {
	report(Default().LogWindow(label, op, err))
}

// Menu records a tray menu event.
func Menu(id string, handled bool) {
	report(Default().LogMenu(id, handled))
}

// report prints write failures to stderr. Logging is best-effort and
// never returns errors to callers.
func report(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "eventlog: %v\n", err)
	}
}

// logPath returns the log file location:
//   - Windows: %APPDATA%\luwidget\luwidget.log
//   - Unix:    ~/.config/luwidget/luwidget.log
func logPath() string {
	return filepath.Join(paths.DataDir(), paths.LogFileName)
}
