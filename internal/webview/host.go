// Package webview is the platform window layer: it registers the Wails
// main window and runs every other window as a child process of the
// same executable, driven over its stdin.
package webview

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Mavwarf/luwidget/internal/eventlog"
	"github.com/Mavwarf/luwidget/internal/window"
)

const (
	// closeGrace is how long a closed child may take to exit before it
	// is killed.
	closeGrace = 2 * time.Second

	// readyTimeout bounds how long a child may take to build its window.
	readyTimeout = 15 * time.Second
)

// Host is the window registry. At most one window exists per label;
// closing or exiting removes it.
type Host struct {
	mu       sync.Mutex
	windows  map[string]window.Window
	starting map[string]bool
	start    starter

	readyTimeout time.Duration
}

// NewHost returns a Host that starts child windows from exePath.
func NewHost(exePath string) *Host {
	return newHost(execStarter(exePath))
}

func newHost(start starter) *Host {
	return &Host{
		windows:      map[string]window.Window{},
		starting:     map[string]bool{},
		start:        start,
		readyTimeout: readyTimeout,
	}
}

// Attach registers a window created by the surrounding application,
// normally the main window.
func (h *Host) Attach(w window.Window) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.windows[w.Label()]; ok {
		return fmt.Errorf("%s: %w", w.Label(), window.ErrLabelInUse)
	}
	h.windows[w.Label()] = w
	return nil
}

// Get returns the live window registered under label.
func (h *Host) Get(label string) (window.Window, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	w, ok := h.windows[label]
	return w, ok
}

// Create starts a child window process and waits until it reports its
// window built. A child that exits or stays silent past the ready timeout
// is an error and leaves nothing registered. The main window label is
// reserved for Attach.
func (h *Host) Create(label string, opts window.Options) (window.Window, error) {
	if label == window.Main {
		return nil, fmt.Errorf("%s is reserved: %w", label, window.ErrLabelInUse)
	}
	h.mu.Lock()
	if _, ok := h.windows[label]; ok || h.starting[label] {
		h.mu.Unlock()
		return nil, fmt.Errorf("%s: %w", label, window.ErrLabelInUse)
	}
	h.starting[label] = true
	h.mu.Unlock()

	w, err := h.launch(label, opts)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.starting, label)
	if err != nil {
		return nil, err
	}
	h.windows[label] = w
	go w.wait()
	return w, nil
}

// launch starts the child and blocks until it is ready, has exited or
// the ready timeout has passed.
func (h *Host) launch(label string, opts window.Options) (*childWindow, error) {
	p, err := h.start(label, opts)
	if err != nil {
		return nil, fmt.Errorf("start %s window: %w", label, err)
	}
	exited := make(chan error, 1)
	go func() { exited <- p.Wait() }()

	t := time.NewTimer(h.readyTimeout)
	defer t.Stop()
	select {
	case <-p.Ready():
		return &childWindow{
			label:   label,
			host:    h,
			proc:    p,
			visible: true,
			exited:  exited,
			done:    make(chan struct{}),
		}, nil
	case err := <-exited:
		if err == nil {
			err = errors.New("no window was built")
		}
		return nil, fmt.Errorf("%s window exited before it was ready: %w", label, err)
	case <-t.C:
		p.Kill()
		return nil, fmt.Errorf("%s window not ready after %s", label, h.readyTimeout)
	}
}

// remove unregisters w if it is still the window under its label.
func (h *Host) remove(label string, w window.Window) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cur, ok := h.windows[label]; ok && cur == w {
		delete(h.windows, label)
	}
}

// childWindow is a window running in a child process.
type childWindow struct {
	label string
	host  *Host
	proc  process

	exited chan error    // receives the process exit status
	done   chan struct{} // closed once the exit is handled

	mu      sync.Mutex
	visible bool
	closed  bool
}

func (w *childWindow) wait() {
	if err := <-w.exited; err != nil {
		eventlog.Window(w.label, "exit", err)
	}
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.host.remove(w.label, w)
	close(w.done)
}

func (w *childWindow) Label() string { return w.label }

func (w *childWindow) send(f frame) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fmt.Errorf("%s: %w", w.label, window.ErrNotFound)
	}
	return writeFrame(w.proc, f)
}

func (w *childWindow) IsVisible() (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false, fmt.Errorf("%s: %w", w.label, window.ErrNotFound)
	}
	return w.visible, nil
}

func (w *childWindow) setVisible(v bool) {
	w.mu.Lock()
	w.visible = v
	w.mu.Unlock()
}

func (w *childWindow) Show() error {
	if err := w.send(frame{Op: opShow}); err != nil {
		return err
	}
	w.setVisible(true)
	return nil
}

func (w *childWindow) Hide() error {
	if err := w.send(frame{Op: opHide}); err != nil {
		return err
	}
	w.setVisible(false)
	return nil
}

func (w *childWindow) SetFocus() error {
	return w.send(frame{Op: opFocus})
}

func (w *childWindow) Eval(script string) error {
	return w.send(frame{Op: opEval, Script: script})
}

// Close unregisters the window at once, asks the child to quit and kills
// it if it has not exited within closeGrace.
func (w *childWindow) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return fmt.Errorf("%s: %w", w.label, window.ErrNotFound)
	}
	w.closed = true
	sendErr := writeFrame(w.proc, frame{Op: opClose})
	closeErr := w.proc.Close()
	w.mu.Unlock()

	w.host.remove(w.label, w)

	go func() {
		select {
		case <-w.done:
		case <-time.After(closeGrace):
			w.proc.Kill()
		}
	}()

	if sendErr != nil {
		return fmt.Errorf("close %s: %w", w.label, sendErr)
	}
	return closeErr
}
