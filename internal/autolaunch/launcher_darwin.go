//go:build darwin

package autolaunch

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mavwarf/luwidget/internal/paths"
)

// agentLauncher writes a per-user LaunchAgent:
// ~/Library/LaunchAgents/<name>.plist
type agentLauncher struct {
	name    string
	exePath string
}

func newLauncher(appName, exePath string) (Launcher, error) {
	if appName == "" {
		return nil, fmt.Errorf("empty app name")
	}
	return &agentLauncher{name: appName, exePath: exePath}, nil
}

func (l *agentLauncher) plistPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, "Library", "LaunchAgents", l.name+".plist"), nil
}

func (l *agentLauncher) IsEnabled() (bool, error) {
	p, err := l.plistPath()
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

func (l *agentLauncher) Enable() error {
	p, err := l.plistPath()
	if err != nil {
		return err
	}
	data, err := l.plist()
	if err != nil {
		return err
	}
	if err := paths.AtomicWrite(p, data); err != nil {
		return fmt.Errorf("write launch agent: %w", err)
	}
	return nil
}

func (l *agentLauncher) Disable() error {
	p, err := l.plistPath()
	if err != nil {
		return err
	}
	if err := paths.RemoveIfExists(p); err != nil {
		return fmt.Errorf("remove launch agent: %w", err)
	}
	return nil
}

func (l *agentLauncher) plist() ([]byte, error) {
	var name, exe bytes.Buffer
	if err := xml.EscapeText(&name, []byte(l.name)); err != nil {
		return nil, err
	}
	if err := xml.EscapeText(&exe, []byte(l.exePath)); err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
  <key>Label</key>
  <string>%s</string>
  <key>ProgramArguments</key>
  <array>
    <string>%s</string>
  </array>
  <key>RunAtLoad</key>
  <true/>
</dict>
</plist>
`, name.String(), exe.String())), nil
}
