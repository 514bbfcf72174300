package notification

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/Mavwarf/luwidget/internal/window"
)

type fakeWindow struct {
	label    string
	opts     window.Options
	reg      *fakeRegistry
	scripts  []string
	evalErr  error
	closeErr error
	closed   bool
}

func (w *fakeWindow) Label() string            { return w.label }
func (w *fakeWindow) IsVisible() (bool, error) { return !w.closed, nil }
func (w *fakeWindow) Show() error              { return nil }
func (w *fakeWindow) Hide() error              { return nil }
func (w *fakeWindow) SetFocus() error          { return nil }

func (w *fakeWindow) Eval(script string) error {
	w.scripts = append(w.scripts, script)
	return w.evalErr
}

func (w *fakeWindow) Close() error {
	w.closed = true
	delete(w.reg.windows, w.label)
	return w.closeErr
}

type fakeRegistry struct {
	windows   map[string]*fakeWindow
	createErr error
	created   []*fakeWindow
	closeErr  error
	evalErr   error
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{windows: map[string]*fakeWindow{}}
}

func (r *fakeRegistry) Get(label string) (window.Window, bool) {
	w, ok := r.windows[label]
	if !ok {
		return nil, false
	}
	return w, true
}

func (r *fakeRegistry) Create(label string, opts window.Options) (window.Window, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.windows[label]; ok {
		return nil, window.ErrLabelInUse
	}
	w := &fakeWindow{label: label, opts: opts, reg: r, closeErr: r.closeErr, evalErr: r.evalErr}
	r.windows[label] = w
	r.created = append(r.created, w)
	return w, nil
}

// decodeMessage extracts the JSON string assigned by a payload script.
func decodeMessage(t *testing.T, script string) string {
	t.Helper()
	prefix := MessageVar + " = "
	if !strings.HasPrefix(script, prefix) {
		t.Fatalf("script %q does not assign %s", script, MessageVar)
	}
	var msg string
	if err := json.Unmarshal([]byte(strings.TrimPrefix(script, prefix)), &msg); err != nil {
		t.Fatalf("payload is not a JSON string: %v", err)
	}
	return msg
}

func TestShowCreatesConfiguredWindow(t *testing.T) {
	reg := newFakeRegistry()
	m := NewManager(reg)

	if err := m.Show("Hello"); err != nil {
		t.Fatalf("Show() = %v", err)
	}
	if len(reg.windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(reg.windows))
	}
	w, ok := reg.windows[window.Notification]
	if !ok {
		t.Fatal("no window registered as notification")
	}
	o := w.opts
	if o.Width != 600 || o.Height != 200 {
		t.Errorf("size = %dx%d, want 600x200", o.Width, o.Height)
	}
	if o.Decorations || o.Resizable {
		t.Errorf("window should be undecorated and fixed size: %+v", o)
	}
	if !o.Transparent || !o.AlwaysOnTop || !o.SkipTaskbar || !o.Center {
		t.Errorf("unexpected options: %+v", o)
	}
	if o.URL != View {
		t.Errorf("URL = %q, want %q", o.URL, View)
	}
	if len(w.scripts) != 1 {
		t.Fatalf("expected 1 eval, got %d", len(w.scripts))
	}
	if got := decodeMessage(t, w.scripts[0]); got != "Hello" {
		t.Errorf("payload = %q, want Hello", got)
	}
}

func TestShowReplacesExisting(t *testing.T) {
	reg := newFakeRegistry()
	m := NewManager(reg)

	if err := m.Show("first"); err != nil {
		t.Fatal(err)
	}
	first := reg.windows[window.Notification]
	if err := m.Show("second"); err != nil {
		t.Fatal(err)
	}

	if !first.closed {
		t.Error("previous notification window should be closed")
	}
	if len(reg.windows) != 1 {
		t.Fatalf("expected exactly 1 window, got %d", len(reg.windows))
	}
	cur := reg.windows[window.Notification]
	if got := decodeMessage(t, cur.scripts[len(cur.scripts)-1]); got != "second" {
		t.Errorf("payload = %q, want second", got)
	}
}

func TestShowIgnoresCloseFailure(t *testing.T) {
	reg := newFakeRegistry()
	reg.closeErr = errors.New("already gone")
	m := NewManager(reg)

	if err := m.Show("a"); err != nil {
		t.Fatal(err)
	}
	if err := m.Show("b"); err != nil {
		t.Fatalf("Show() after failed close = %v", err)
	}
	if len(reg.created) != 2 {
		t.Errorf("expected 2 windows created, got %d", len(reg.created))
	}
}

func TestShowCreateFailureSkipsPayload(t *testing.T) {
	reg := newFakeRegistry()
	reg.createErr = errors.New("webview unavailable")
	m := NewManager(reg)

	err := m.Show("Hello")
	if err == nil || !strings.Contains(err.Error(), "webview unavailable") {
		t.Fatalf("Show() = %v, want create error", err)
	}
	if len(reg.windows) != 0 {
		t.Errorf("no window should remain, got %d", len(reg.windows))
	}
}

func TestShowEvalFailureStillSucceeds(t *testing.T) {
	reg := newFakeRegistry()
	reg.evalErr = errors.New("page not loaded")
	m := NewManager(reg)

	if err := m.Show("x"); err != nil {
		t.Fatalf("Show() = %v, want nil once the window exists", err)
	}
	if _, ok := reg.windows[window.Notification]; !ok {
		t.Error("window should stay open")
	}
}

func TestConcurrentShowLeavesOneWindow(t *testing.T) {
	reg := newFakeRegistry()
	m := NewManager(reg)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, msg := range []string{"first", "second"} {
		wg.Add(1)
		go func(i int, msg string) {
			defer wg.Done()
			errs[i] = m.Show(msg)
		}(i, msg)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("Show #%d = %v", i, err)
		}
	}
	if len(reg.windows) != 1 {
		t.Fatalf("expected exactly 1 live window, got %d", len(reg.windows))
	}
	w, ok := reg.windows[window.Notification]
	if !ok {
		t.Fatal("no notification window")
	}
	got := decodeMessage(t, w.scripts[len(w.scripts)-1])
	if got != "first" && got != "second" {
		t.Errorf("payload = %q, want one of the shown messages", got)
	}
	if len(reg.created) != 2 || !reg.created[0].closed {
		t.Error("the earlier window should have been replaced")
	}
}

func TestCloseWithoutWindow(t *testing.T) {
	reg := newFakeRegistry()
	m := NewManager(reg)
	m.Close()
	m.Close()
	if len(reg.windows) != 0 {
		t.Errorf("expected no windows, got %d", len(reg.windows))
	}
}

func TestCloseRemovesWindow(t *testing.T) {
	reg := newFakeRegistry()
	m := NewManager(reg)
	if err := m.Show("bye"); err != nil {
		t.Fatal(err)
	}
	m.Close()
	if _, ok := reg.windows[window.Notification]; ok {
		t.Error("notification window should be gone")
	}
}

func TestPayloadScriptEscapes(t *testing.T) {
	tests := []string{
		`plain`,
		`quote " and backslash \`,
		"line\nbreak",
		`</script><script>alert(1)</script>`,
		"ünïcödé ✓",
	}
	for _, msg := range tests {
		script, err := payloadScript(msg)
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(script, "\n") {
			t.Errorf("script for %q contains a raw newline", msg)
		}
		if got := decodeMessage(t, script); got != msg {
			t.Errorf("round trip = %q, want %q", got, msg)
		}
	}
}
