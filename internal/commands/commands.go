// Package commands is the set of actions the web UI and the OS can invoke.
package commands

import (
	"fmt"

	"github.com/Mavwarf/luwidget/internal/eventlog"
)

// Name identifies an exposed command.
type Name string

// Exposed commands.
const (
	ExitApp           Name = "exit_app"
	ShowNotification  Name = "show_notification"
	CloseNotification Name = "close_notification"
	ToggleAutoLaunch  Name = "toggle_auto_launch"
)

// Notifier shows and closes the notification window.
type Notifier interface {
	Show(message string) error
	Close()
}

// AutoLauncher is the autostart registration.
type AutoLauncher interface {
	IsEnabled() bool
	Toggle() (bool, error)
}

// Surface implements the exposed commands over injected components.
type Surface struct {
	notifier Notifier
	launcher AutoLauncher
	exit     func(code int)

	// onToggle, when set, is told the new state after a successful toggle
	// so the tray checkbox can follow.
	onToggle func(enabled bool)
}

// New returns a Surface. exit terminates the process.
func New(n Notifier, l AutoLauncher, exit func(code int)) *Surface {
	return &Surface{notifier: n, launcher: l, exit: exit}
}

// OnToggle registers fn to run after every successful toggle.
func (s *Surface) OnToggle(fn func(enabled bool)) {
	s.onToggle = fn
}

// ExitApp terminates the process with code 0 without waiting for
// in-flight work.
func (s *Surface) ExitApp() {
	s.exit(0)
}

// ShowNotification replaces any open notification with message.
func (s *Surface) ShowNotification(message string) error {
	return s.notifier.Show(message)
}

// CloseNotification closes the notification window if open.
func (s *Surface) CloseNotification() {
	s.notifier.Close()
}

// ToggleAutoLaunch flips the autostart registration and returns the new
// state.
func (s *Surface) ToggleAutoLaunch() (bool, error) {
	on, err := s.launcher.Toggle()
	eventlog.Toggle("ui", on, err)
	if err != nil {
		return false, err
	}
	if s.onToggle != nil {
		s.onToggle(on)
	}
	return on, nil
}

// IsAutoLaunchEnabled reports the current registration.
func (s *Surface) IsAutoLaunchEnabled() bool {
	return s.launcher.IsEnabled()
}

// Invoke runs a command by name. arg is the message for show_notification
// and ignored otherwise. The result is the new state for
// toggle_auto_launch and nil for the rest.
func (s *Surface) Invoke(name Name, arg string) (any, error) {
	switch name {
	case ExitApp:
		s.ExitApp()
		return nil, nil
	case ShowNotification:
		return nil, s.ShowNotification(arg)
	case CloseNotification:
		s.CloseNotification()
		return nil, nil
	case ToggleAutoLaunch:
		return s.ToggleAutoLaunch()
	default:
		return nil, fmt.Errorf("unknown command %q", name)
	}
}
