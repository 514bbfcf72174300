package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName     = "luwidget"
	ConfigFileName = "luwidget-config.json"
	LogFileName    = "luwidget.log"
	DirPerm        = 0755
	FilePerm       = 0644
)

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// RemoveIfExists deletes path, treating a missing file as success.
func RemoveIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// DataDir returns the platform-specific data directory for luwidget:
//   - Windows: %APPDATA%\luwidget
//   - Unix:    ~/.config/luwidget
//
// Falls back to os.TempDir()/luwidget if neither is available.
func DataDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}

// ConfigHome returns the XDG config base directory: $XDG_CONFIG_HOME when
// set and absolute, otherwise ~/.config.
func ConfigHome() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" && filepath.IsAbs(dir) {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}
