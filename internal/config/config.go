package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Mavwarf/luwidget/internal/paths"
)

// DefaultAppName is the name registered with the OS startup mechanism.
const DefaultAppName = "luWidget"

// Default main window size in pixels.
const (
	DefaultWindowWidth  = 400
	DefaultWindowHeight = 600
)

// WindowOptions holds the main window geometry.
type WindowOptions struct {
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// MQTTOptions configures the optional remote notification subscriber.
// An empty Broker disables it.
type MQTTOptions struct {
	Broker   string `json:"broker,omitempty"`
	Topic    string `json:"topic,omitempty"`
	ClientID string `json:"client_id,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	QoS      int    `json:"qos,omitempty"`
}

// Enabled reports whether a broker is configured.
func (m MQTTOptions) Enabled() bool { return m.Broker != "" }

// Config holds the widget settings.
type Config struct {
	AppName     string        `json:"app_name,omitempty"`
	Tooltip     string        `json:"tooltip,omitempty"`
	TrayMenu    bool          `json:"tray_menu"`
	StartHidden bool          `json:"start_hidden,omitempty"`
	MainWindow  WindowOptions `json:"main_window,omitempty"`
	Log         bool          `json:"log"`
	MQTT        MQTTOptions   `json:"mqtt,omitempty"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	var c Config
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.AppName = DefaultAppName
	c.TrayMenu = true
	c.Log = true
	c.MainWindow = WindowOptions{Width: DefaultWindowWidth, Height: DefaultWindowHeight}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	c.setDefaults()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// TooltipText returns the tray tooltip, falling back to the app name.
func (c Config) TooltipText() string {
	if c.Tooltip != "" {
		return c.Tooltip
	}
	return c.AppName
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty; must exist)
//  2. luwidget-config.json next to the running binary
//  3. ~/.config/luwidget/luwidget-config.json (%APPDATA% on Windows)
//
// When neither implicit location has a file, Default() is returned.
func Load(explicitPath string) (Config, error) {
	p, err := FindPath(explicitPath)
	if err != nil {
		return Config{}, err
	}
	if p == "" {
		return Default(), nil
	}
	return readConfig(p)
}

// FindPath returns the config file Load would read, or "" when none of the
// implicit locations has one.
func FindPath(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config %s: %w", explicitPath, err)
		}
		return explicitPath, nil
	}
	for _, p := range candidatePaths() {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

func candidatePaths() []string {
	var out []string
	if exe, err := os.Executable(); err == nil {
		out = append(out, filepath.Join(filepath.Dir(exe), paths.ConfigFileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		if runtime.GOOS == "windows" {
			out = append(out, filepath.Join(home, "AppData", "Roaming", paths.AppDirName, paths.ConfigFileName))
		} else {
			out = append(out, filepath.Join(home, ".config", paths.AppDirName, paths.ConfigFileName))
		}
	}
	return out
}

// Validate checks settings that would otherwise fail later at runtime.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.AppName) == "" {
		return fmt.Errorf("app_name must not be empty")
	}
	if strings.ContainsAny(cfg.AppName, `/\:`) {
		return fmt.Errorf("app_name %q must not contain path separators", cfg.AppName)
	}
	if cfg.MainWindow.Width <= 0 || cfg.MainWindow.Height <= 0 {
		return fmt.Errorf("main_window size must be positive, got %dx%d",
			cfg.MainWindow.Width, cfg.MainWindow.Height)
	}
	if cfg.MQTT.Enabled() {
		if cfg.MQTT.Topic == "" {
			return fmt.Errorf("mqtt: topic is required when broker is set")
		}
		if cfg.MQTT.QoS < 0 || cfg.MQTT.QoS > 2 {
			return fmt.Errorf("mqtt: qos must be 0, 1 or 2, got %d", cfg.MQTT.QoS)
		}
	}
	return nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
