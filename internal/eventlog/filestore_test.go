package eventlog

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

// Compile-time interface checks.
var (
	_ Store = (*FileStore)(nil)
	_ Store = nopStore{}
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "luwidget.log"))
}

func readAll(t *testing.T, s Store) string {
	t.Helper()
	content, err := s.ReadContent()
	if err != nil {
		t.Fatal(err)
	}
	return content
}

func TestFileStoreReadMissing(t *testing.T) {
	s := tempStore(t)
	if got := readAll(t, s); got != "" {
		t.Errorf("ReadContent() = %q, want empty", got)
	}
}

func TestFileStoreLogStartup(t *testing.T) {
	s := tempStore(t)
	if err := s.LogStartup("luWidget", true); err != nil {
		t.Fatal(err)
	}
	got := readAll(t, s)
	if !strings.Contains(got, "event=startup  app=luWidget  autostart=true") {
		t.Errorf("unexpected log:\n%s", got)
	}
}

func TestFileStoreLogToggle(t *testing.T) {
	s := tempStore(t)
	if err := s.LogToggle("menu", true, nil); err != nil {
		t.Fatal(err)
	}
	if err := s.LogToggle("ui", false, errors.New("access denied")); err != nil {
		t.Fatal(err)
	}
	got := readAll(t, s)
	if !strings.Contains(got, "source=menu  enabled=true") {
		t.Errorf("missing success line:\n%s", got)
	}
	if !strings.Contains(got, `source=ui  error="access denied"`) {
		t.Errorf("missing failure line:\n%s", got)
	}
	if lines := strings.Count(got, "\n"); lines != 2 {
		t.Errorf("expected 2 lines, got %d", lines)
	}
}

func TestFileStoreLogNotificationTruncates(t *testing.T) {
	s := tempStore(t)
	long := strings.Repeat("x", maxMessageLen+20)
	if err := s.LogNotification(long, nil); err != nil {
		t.Fatal(err)
	}
	got := readAll(t, s)
	if strings.Contains(got, long) {
		t.Error("message should be truncated")
	}
	if !strings.Contains(got, strings.Repeat("x", maxMessageLen)+"...") {
		t.Errorf("unexpected log:\n%s", got)
	}
}

func TestFileStoreLogWindow(t *testing.T) {
	s := tempStore(t)
	if err := s.LogWindow("notification", "close", errors.New("gone")); err != nil {
		t.Fatal(err)
	}
	got := readAll(t, s)
	if !strings.Contains(got, `window=notification  op=close  error="gone"`) {
		t.Errorf("unexpected log:\n%s", got)
	}
}

func TestFileStoreMirror(t *testing.T) {
	var buf bytes.Buffer
	s := tempStore(t).WithMirror(&buf)
	if err := s.LogMenu("quit", true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "event=menu  id=quit  handled=true") {
		t.Errorf("mirror = %q", buf.String())
	}
	if readAll(t, s) != buf.String() {
		t.Error("mirror and file content differ")
	}
}

func TestDefaultIsNop(t *testing.T) {
	SetDefault(nopStore{})
	t.Cleanup(func() { SetDefault(nopStore{}) })

	// Must not panic or write anywhere.
	Toggle("menu", true, nil)
	Window("main", "show", errors.New("x"))
	if Default().Path() != "" {
		t.Errorf("nop store path = %q", Default().Path())
	}
}

func TestSetDefaultRoutesHelpers(t *testing.T) {
	s := tempStore(t)
	SetDefault(s)
	t.Cleanup(func() { SetDefault(nopStore{}) })

	Notification("Hello", nil)
	if got := readAll(t, s); !strings.Contains(got, `event=notification  message="Hello"`) {
		t.Errorf("unexpected log:\n%s", got)
	}
}
