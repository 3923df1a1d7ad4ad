// ABOUTME: Balance configuration management and store construction.
// ABOUTME: Handles preferences, defaults, and building the session store.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/harperreed/balance/internal/steps"
	"github.com/harperreed/balance/internal/store"
	"go.uber.org/zap"
)

// Config stores balance preferences. Tracked data itself is never
// written to disk; only these settings are.
type Config struct {
	// Height is the default profile height in centimeters.
	Height float64 `json:"height,omitempty"`

	// Nickname is the default profile nickname.
	Nickname string `json:"nickname,omitempty"`

	// ExportDir is where export files are written.
	// Supports ~ expansion for home directory. Defaults to the current directory.
	ExportDir string `json:"export_dir,omitempty"`

	// ExportFormat selects json (default), yaml, or markdown.
	ExportFormat string `json:"export_format,omitempty"`

	// LogLevel is a zap level name: debug, info, warn, error. Defaults to warn.
	LogLevel string `json:"log_level,omitempty"`

	// DemoData seeds every new session with sample data.
	DemoData bool `json:"demo_data,omitempty"`

	// StepsGoal is the daily step target. Defaults to 10000.
	StepsGoal int `json:"steps_goal,omitempty"`

	// WaterGoal is the daily glass target. Defaults to 8.
	WaterGoal int `json:"water_goal,omitempty"`
}

// Keys lists the settable configuration keys.
var Keys = []string{"height", "nickname", "export_dir", "export_format", "log_level", "demo_data", "steps_goal", "water_goal"}

// GetHeight returns the configured height, defaulting to store.DefaultHeight.
func (c *Config) GetHeight() float64 {
	if c.Height <= 0 {
		return store.DefaultHeight
	}
	return c.Height
}

// GetExportDir returns the export directory with ~ expanded, defaulting to ".".
func (c *Config) GetExportDir() string {
	if c.ExportDir == "" {
		return "."
	}
	return ExpandPath(c.ExportDir)
}

// GetExportFormat returns the configured export format.
func (c *Config) GetExportFormat() (store.Format, error) {
	return store.ParseFormat(c.ExportFormat)
}

// GetLogLevel returns the configured log level, defaulting to "warn".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// GetStepsGoal returns the daily step goal, defaulting to steps.DefaultGoal.
func (c *Config) GetStepsGoal() int {
	if c.StepsGoal <= 0 {
		return steps.DefaultGoal
	}
	return c.StepsGoal
}

// GetWaterGoal returns the daily water goal, defaulting to store.DefaultWaterGoal.
func (c *Config) GetWaterGoal() int {
	if c.WaterGoal <= 0 {
		return store.DefaultWaterGoal
	}
	return c.WaterGoal
}

// Set assigns a configuration key from its string form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "height":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("invalid height: %s", value)
		}
		c.Height = v
	case "nickname":
		c.Nickname = value
	case "export_dir":
		c.ExportDir = value
	case "export_format":
		f, err := store.ParseFormat(value)
		if err != nil {
			return err
		}
		c.ExportFormat = string(f)
	case "log_level":
		if _, err := parseLevel(value); err != nil {
			return err
		}
		c.LogLevel = value
	case "demo_data":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid demo_data: %s", value)
		}
		c.DemoData = v
	case "steps_goal":
		v, err := strconv.Atoi(value)
		if err != nil || v <= 0 {
			return fmt.Errorf("invalid steps_goal: %s", value)
		}
		c.StepsGoal = v
	case "water_goal":
		v, err := strconv.Atoi(value)
		if err != nil || v <= 0 || v > store.MaxWaterGlasses {
			return fmt.Errorf("invalid water_goal: %s", value)
		}
		c.WaterGoal = v
	default:
		return fmt.Errorf("unknown config key: %q (valid: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// NewStore creates the session store from the configured profile defaults.
func (c *Config) NewStore(logger *zap.Logger) *store.Store {
	s := store.New(
		store.WithLogger(logger),
		store.WithHeight(c.GetHeight()),
		store.WithNickname(c.Nickname),
	)
	if c.DemoData {
		store.SeedDemo(s)
	}
	return s
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "balance", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
