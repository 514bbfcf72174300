//go:build linux

package autolaunch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Mavwarf/luwidget/internal/paths"
)

// desktopLauncher writes an XDG autostart entry:
// $XDG_CONFIG_HOME/autostart/<name>.desktop
type desktopLauncher struct {
	name    string
	exePath string
}

func newLauncher(appName, exePath string) (Launcher, error) {
	if appName == "" {
		return nil, fmt.Errorf("empty app name")
	}
	return &desktopLauncher{name: appName, exePath: exePath}, nil
}

func (l *desktopLauncher) entryPath() (string, error) {
	base, err := paths.ConfigHome()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(base, "autostart", l.name+".desktop"), nil
}

func (l *desktopLauncher) IsEnabled() (bool, error) {
	p, err := l.entryPath()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (l *desktopLauncher) Enable() error {
	p, err := l.entryPath()
	if err != nil {
		return err
	}
	if err := paths.AtomicWrite(p, []byte(l.entry())); err != nil {
		return fmt.Errorf("write autostart entry: %w", err)
	}
	return nil
}

func (l *desktopLauncher) Disable() error {
	p, err := l.entryPath()
	if err != nil {
		return err
	}
	if err := paths.RemoveIfExists(p); err != nil {
		return fmt.Errorf("remove autostart entry: %w", err)
	}
	return nil
}

func (l *desktopLauncher) entry() string {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	b.WriteString("Version=1.0\n")
	fmt.Fprintf(&b, "Name=%s\n", l.name)
	fmt.Fprintf(&b, "Comment=%s startup script\n", l.name)
	fmt.Fprintf(&b, "Exec=%s\n", quoteExec(l.exePath))
	b.WriteString("StartupNotify=false\n")
	b.WriteString("Terminal=false\n")
	return b.String()
}

// quoteExec quotes a path for a desktop entry Exec key when it contains
// characters the desktop entry format reserves.
func quoteExec(p string) string {
	if !strings.ContainsAny(p, " \t\"'\\`$") {
		return p
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`)
	return `"` + r.Replace(p) + `"`
}
