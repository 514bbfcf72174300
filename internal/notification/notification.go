// Package notification shows the transient notification window. At most
// one exists at a time; a new request replaces the current one.
package notification

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Mavwarf/luwidget/internal/eventlog"
	"github.com/Mavwarf/luwidget/internal/window"
)

// View is the separately addressed page rendered in the notification window.
const View = "notification.html"

// MessageVar is the global the view reads its message from.
const MessageVar = "window.__NOTIFICATION_MESSAGE__"

// Options returns the fixed notification window configuration.
func Options() window.Options {
	return window.Options{
		Title:       "Notification",
		URL:         View,
		Width:       600,
		Height:      200,
		Decorations: false,
		Transparent: true,
		AlwaysOnTop: true,
		Resizable:   false,
		SkipTaskbar: true, // no effect under Wails v2
		Center:      true,
	}
}

// Manager creates, replaces and closes the notification window. Calls
// are serialized so concurrent requests cannot race on the label.
type Manager struct {
	mu      sync.Mutex
	windows window.Registry
}

// NewManager returns a Manager over the given registry.
func NewManager(r window.Registry) *Manager {
	return &Manager{windows: r}
}

// Show replaces any open notification with a new window carrying message.
func (m *Manager) Show(message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeExisting()

	w, err := m.windows.Create(window.Notification, Options())
	if err != nil {
		err = fmt.Errorf("create notification window: %w", err)
		eventlog.Notification(message, err)
		return err
	}

	script, err := payloadScript(message)
	if err != nil {
		return err
	}
	// Delivery is best-effort once the window exists.
	if err := w.Eval(script); err != nil {
		eventlog.Window(window.Notification, "eval", err)
	}
	eventlog.Notification(message, nil)
	return nil
}

// Close closes the notification window if one is open. Failures are
// logged, never returned.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeExisting()
}

func (m *Manager) closeExisting() {
	w, ok := m.windows.Get(window.Notification)
	if !ok {
		return
	}
	if err := w.Close(); err != nil {
		eventlog.Window(window.Notification, "close", err)
	}
}

// payloadScript assigns message, JSON-encoded, to MessageVar.
func payloadScript(message string) (string, error) {
	b, err := json.Marshal(message)
	if err != nil {
		return "", fmt.Errorf("encode notification message: %w", err)
	}
	return MessageVar + " = " + string(b), nil
}
