package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences
type Config struct {
	ConfirmDelete bool   `yaml:"confirm_delete" json:"confirm_delete"` // Require confirmation for delete
	DefaultColor  string `yaml:"default_color" json:"default_color"`   // Color for new counters
	UndoWindowMS  int    `yaml:"undo_window_ms" json:"undo_window_ms"` // How long a deleted counter stays restorable
	ListenAddr    string `yaml:"listen_addr" json:"listen_addr"`       // Address for the local HTTP API

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"`     // DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`       // Path to log file
	LogConsole bool   `yaml:"log_console" json:"log_console"` // Enable console logging
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	logPath := ""
	if home != "" {
		logPath = filepath.Join(home, ".tally", "logs", "tally.log")
	}

	return &Config{
		ConfirmDelete: true,
		DefaultColor:  "#007AFF",
		UndoWindowMS:  getEnvInt("TALLY_UNDO_WINDOW_MS", 5000),
		ListenAddr:    getEnv("TALLY_LISTEN_ADDR", "127.0.0.1:7412"),
		LogLevel:      getEnv("TALLY_LOG_LEVEL", "INFO"),
		LogFile:       getEnv("TALLY_LOG_FILE", logPath),
		LogConsole:    getEnv("TALLY_LOG_CONSOLE", "false") == "true",
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tally", "config.yaml"), nil
}

// Load loads config from ~/.tally/config.yaml, falling back to defaults
// when no file exists.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves config to ~/.tally/config.yaml
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
