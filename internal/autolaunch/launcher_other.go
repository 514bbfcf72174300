//go:build !windows && !linux && !darwin

package autolaunch

import (
	"fmt"
	"runtime"
)

func newLauncher(appName, exePath string) (Launcher, error) {
	return nil, fmt.Errorf("autostart is not supported on %s", runtime.GOOS)
}
