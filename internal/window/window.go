// Package window defines the contract between the lifecycle coordinator and
// the platform layer that owns real windows.
package window

import "errors"

// Reserved window labels.
const (
	Main         = "main"
	Notification = "notification"
)

var (
	// ErrNotFound is returned when no window is registered under a label.
	ErrNotFound = errors.New("window not found")
	// ErrLabelInUse is returned when creating a window whose label is taken.
	ErrLabelInUse = errors.New("window label already in use")
)

// Window is a live platform window.
type Window interface {
	Label() string
	IsVisible() (bool, error)
	Show() error
	Hide() error
	SetFocus() error
	// Eval runs a script in the window's web content.
	Eval(script string) error
	// Close destroys the window and removes it from its registry.
	Close() error
}

// Options describes a window to create.
type Options struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Decorations bool   `json:"decorations"`
	Transparent bool   `json:"transparent"`
	AlwaysOnTop bool   `json:"always_on_top"`
	Resizable   bool   `json:"resizable"`
	// SkipTaskbar is carried for platform layers that support it. Wails v2
	// has no such option, so the webview host ignores it.
	SkipTaskbar bool   `json:"skip_taskbar"`
	Center      bool   `json:"center"`
}

// Registry maps labels to at most one live window each.
type Registry interface {
	Get(label string) (Window, bool)
	Create(label string, opts Options) (Window, error)
}
