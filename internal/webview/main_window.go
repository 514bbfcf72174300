package webview

import (
	"context"
	"errors"
	"sync"

	"github.com/Mavwarf/luwidget/internal/window"
)

// ErrNotReady is returned by window operations before Wails has started.
var ErrNotReady = errors.New("window not ready")

// MainWindow adapts the Wails application window to window.Window.
// Wails v2 does not report visibility, so it is tracked from the calls
// made through this adapter.
type MainWindow struct {
	mu      sync.Mutex
	ctx     context.Context
	ops     windowOps
	visible bool
}

// NewMainWindow returns an adapter for a window that starts hidden or
// shown.
func NewMainWindow(startHidden bool) *MainWindow {
	return &MainWindow{ops: wailsOps{}, visible: !startHidden}
}

// Startup records the Wails context. Call it from OnStartup.
func (m *MainWindow) Startup(ctx context.Context) {
	m.mu.Lock()
	m.ctx = ctx
	m.mu.Unlock()
}

// BeforeClose intercepts the window close event and hides to tray
// instead. Use it as OnBeforeClose.
func (m *MainWindow) BeforeClose(ctx context.Context) bool {
	if err := m.Hide(); err != nil {
		return false
	}
	return true // prevent close → hide to tray
}

func (m *MainWindow) Label() string { return window.Main }

func (m *MainWindow) context() (context.Context, error) {
	if m.ctx == nil {
		return nil, ErrNotReady
	}
	return m.ctx, nil
}

func (m *MainWindow) IsVisible() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.context(); err != nil {
		return false, err
	}
	return m.visible, nil
}

func (m *MainWindow) Show() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ctx, err := m.context()
	if err != nil {
		return err
	}
	m.ops.Show(ctx)
	m.visible = true
	return nil
}

func (m *MainWindow) Hide() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ctx, err := m.context()
	if err != nil {
		return err
	}
	m.ops.Hide(ctx)
	m.visible = false
	return nil
}

// SetFocus restores a minimised window and raises it.
func (m *MainWindow) SetFocus() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ctx, err := m.context()
	if err != nil {
		return err
	}
	m.ops.Unminimise(ctx)
	m.ops.Show(ctx)
	m.visible = true
	return nil
}

func (m *MainWindow) Eval(script string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ctx, err := m.context()
	if err != nil {
		return err
	}
	m.ops.ExecJS(ctx, script)
	return nil
}

// Close hides the main window; it lives as long as the application.
func (m *MainWindow) Close() error {
	return m.Hide()
}
