//go:build linux

package autolaunch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDesktopLauncherRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	r := Init("luWidget", "/opt/lu widget/luwidget")
	if !r.Initialized() {
		t.Fatal("registrar should be initialized on linux")
	}
	if r.IsEnabled() {
		t.Fatal("fresh config dir should report disabled")
	}

	on, err := r.Toggle()
	if err != nil || !on {
		t.Fatalf("Toggle() = %v, %v", on, err)
	}
	entry := filepath.Join(dir, "autostart", "luWidget.desktop")
	data, err := os.ReadFile(entry)
	if err != nil {
		t.Fatalf("entry not written: %v", err)
	}
	if !strings.Contains(string(data), `Exec="/opt/lu widget/luwidget"`) {
		t.Errorf("entry missing quoted Exec:\n%s", data)
	}
	if !r.IsEnabled() {
		t.Error("IsEnabled() = false after enable")
	}

	on, err = r.Toggle()
	if err != nil || on {
		t.Fatalf("second Toggle() = %v, %v", on, err)
	}
	if _, err := os.Stat(entry); !os.IsNotExist(err) {
		t.Errorf("entry should be removed, stat err = %v", err)
	}
}

func TestDesktopLauncherDisableMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	r := Init("luWidget", "/usr/bin/luwidget")
	if err := r.Disable(); err != nil {
		t.Errorf("Disable() with no entry = %v, want nil", err)
	}
}

func TestQuoteExec(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/usr/bin/luwidget", "/usr/bin/luwidget"},
		{"/opt/my app/lu", `"/opt/my app/lu"`},
		{`/opt/$x/lu`, `"/opt/\$x/lu"`},
	}
	for _, tt := range tests {
		if got := quoteExec(tt.in); got != tt.want {
			t.Errorf("quoteExec(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
