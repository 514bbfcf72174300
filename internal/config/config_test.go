package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUnmarshalEmptyKeepsDefaults(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal([]byte(`{}`), &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.AppName != DefaultAppName {
		t.Errorf("AppName = %q, want %q", cfg.AppName, DefaultAppName)
	}
	if !cfg.TrayMenu {
		t.Error("TrayMenu should default to true")
	}
	if !cfg.Log {
		t.Error("Log should default to true")
	}
	if cfg.MainWindow.Width != DefaultWindowWidth || cfg.MainWindow.Height != DefaultWindowHeight {
		t.Errorf("MainWindow = %+v", cfg.MainWindow)
	}
	if cfg.MQTT.Enabled() {
		t.Error("MQTT should be disabled by default")
	}
}

func TestUnmarshalOverrides(t *testing.T) {
	data := []byte(`{
		"app_name": "myWidget",
		"tooltip": "My Widget",
		"tray_menu": false,
		"start_hidden": true,
		"main_window": {"width": 800, "height": 300},
		"log": false,
		"mqtt": {"broker": "tcp://localhost:1883", "topic": "widget/notify", "qos": 1}
	}`)

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.AppName != "myWidget" || cfg.Tooltip != "My Widget" {
		t.Errorf("names = %q/%q", cfg.AppName, cfg.Tooltip)
	}
	if cfg.TrayMenu || cfg.Log || !cfg.StartHidden {
		t.Errorf("flags = %+v", cfg)
	}
	if cfg.MainWindow.Width != 800 || cfg.MainWindow.Height != 300 {
		t.Errorf("MainWindow = %+v", cfg.MainWindow)
	}
	if !cfg.MQTT.Enabled() || cfg.MQTT.Topic != "widget/notify" || cfg.MQTT.QoS != 1 {
		t.Errorf("MQTT = %+v", cfg.MQTT)
	}
}

func TestTooltipTextFallsBackToAppName(t *testing.T) {
	cfg := Default()
	if got := cfg.TooltipText(); got != DefaultAppName {
		t.Errorf("TooltipText() = %q, want %q", got, DefaultAppName)
	}
	cfg.Tooltip = "custom"
	if got := cfg.TooltipText(); got != "custom" {
		t.Errorf("TooltipText() = %q, want custom", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"empty app name", func(c *Config) { c.AppName = "  " }, "app_name"},
		{"path app name", func(c *Config) { c.AppName = "a/b" }, "path separators"},
		{"zero width", func(c *Config) { c.MainWindow.Width = 0 }, "main_window"},
		{"mqtt without topic", func(c *Config) { c.MQTT.Broker = "tcp://h:1883" }, "topic"},
		{"mqtt bad qos", func(c *Config) {
			c.MQTT = MQTTOptions{Broker: "tcp://h:1883", Topic: "t", QoS: 3}
		}, "qos"},
		{"mqtt ok", func(c *Config) {
			c.MQTT = MQTTOptions{Broker: "tcp://h:1883", Topic: "t", QoS: 2}
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadExplicitPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(p, []byte(`{"app_name": "fromFile"}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppName != "fromFile" {
		t.Errorf("AppName = %q, want fromFile", cfg.AppName)
	}
}

func TestLoadExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(p, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(p)
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Fatalf("Load() = %v, want parse error", err)
	}
}
