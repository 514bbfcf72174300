//go:build windows

package autolaunch

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const runKey = `Software\Microsoft\Windows\CurrentVersion\Run`

// runKeyLauncher stores the launch command under the current user's Run key.
type runKeyLauncher struct {
	name    string
	command string
}

func newLauncher(appName, exePath string) (Launcher, error) {
	if appName == "" {
		return nil, fmt.Errorf("empty app name")
	}
	// Quote the path to handle spaces.
	return &runKeyLauncher{name: appName, command: fmt.Sprintf(`"%s"`, exePath)}, nil
}

func (l *runKeyLauncher) IsEnabled() (bool, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKey, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("open run key: %w", err)
	}
	defer k.Close()

	_, _, err = k.GetStringValue(l.name)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read run value: %w", err)
	}
	return true, nil
}

func (l *runKeyLauncher) Enable() error {
	k, _, err := registry.CreateKey(registry.CURRENT_USER, runKey, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("create run key: %w", err)
	}
	defer k.Close()

	if err := k.SetStringValue(l.name, l.command); err != nil {
		return fmt.Errorf("set run value: %w", err)
	}
	return nil
}

func (l *runKeyLauncher) Disable() error {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKey, registry.SET_VALUE)
	if err != nil {
		// Key doesn't exist = already disabled
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open run key: %w", err)
	}
	defer k.Close()

	if err := k.DeleteValue(l.name); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("delete run value: %w", err)
	}
	return nil
}
