// Package autolaunch registers the application to start at user login.
// Each platform has its own Launcher implementation file.
package autolaunch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"
)

// ErrNotInitialized is returned by every operation on a registrar whose
// platform launcher could not be built.
var ErrNotInitialized = errors.New("AutoLaunch not initialized")

// Launcher is the OS startup registration for one executable.
type Launcher interface {
	IsEnabled() (bool, error)
	Enable() error
	Disable() error
}

// Registrar guards a Launcher with a mutex so that toggles from the tray
// menu and from the UI are serialized. A nil launcher means platform setup
// failed; the registrar then reports ErrNotInitialized.
type Registrar struct {
	mu       sync.Mutex
	launcher Launcher
}

// New wraps an already-built launcher. A nil launcher yields a degraded
// registrar.
func New(l Launcher) *Registrar {
	return &Registrar{launcher: l}
}

// Init builds a registrar for appName bound to exePath. It never fails:
// an unusable path or an unsupported platform yields a degraded registrar.
func Init(appName, exePath string) *Registrar {
	path, err := checkExePath(exePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "autolaunch: %v\n", err)
		return New(nil)
	}
	l, err := newLauncher(appName, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "autolaunch: %v\n", err)
		return New(nil)
	}
	return New(l)
}

// FromExecutable resolves the running executable and calls Init.
func FromExecutable(appName string) *Registrar {
	exe, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "autolaunch: executable path: %v\n", err)
		return New(nil)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return Init(appName, exe)
}

func checkExePath(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("empty executable path")
	}
	if !utf8.ValidString(p) {
		return "", fmt.Errorf("executable path is not valid UTF-8: %q", p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("abs path: %w", err)
	}
	return abs, nil
}

// Initialized reports whether a platform launcher is available.
func (r *Registrar) Initialized() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.launcher != nil
}

// IsEnabled queries the OS. Query errors and a degraded registrar both
// report false.
func (r *Registrar) IsEnabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.launcher == nil {
		return false
	}
	on, err := r.launcher.IsEnabled()
	if err != nil {
		return false
	}
	return on
}

// Enable registers the executable to start at login.
func (r *Registrar) Enable() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.launcher == nil {
		return ErrNotInitialized
	}
	return r.launcher.Enable()
}

// Disable removes the login registration.
func (r *Registrar) Disable() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.launcher == nil {
		return ErrNotInitialized
	}
	return r.launcher.Disable()
}

// Toggle flips the registration and returns the new state. The read and
// the write happen under one lock. A failed write leaves the OS state as
// it was and returns the error.
func (r *Registrar) Toggle() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.launcher == nil {
		return false, ErrNotInitialized
	}
	on, err := r.launcher.IsEnabled()
	if err != nil {
		on = false
	}
	if on {
		if err := r.launcher.Disable(); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := r.launcher.Enable(); err != nil {
		return false, err
	}
	return true, nil
}
