package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/existflow/mynotes/internal/validate"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds user preferences
type Config struct {
	DBPath        string `yaml:"db_path" json:"db_path" validate:"required"`              // SQLite database file
	ConfirmDelete bool   `yaml:"confirm_delete" json:"confirm_delete"`                    // Require confirmation for permanent deletes
	WatchChanges  bool   `yaml:"watch_changes" json:"watch_changes"`                      // Refresh the TUI when another process writes
	ServerAddr    string `yaml:"server_addr" json:"server_addr" validate:"hostname_port"` // Listen address of mynotes-server

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level" validate:"loglevel"` // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`                       // Path to log file
	LogConsole bool   `yaml:"log_console" json:"log_console"`                 // Enable console logging
}

// Home returns the application directory, $MYNOTES_HOME or ~/.mynotes
func Home() string {
	if home := os.Getenv("MYNOTES_HOME"); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mynotes"
	}
	return filepath.Join(home, ".mynotes")
}

// Path returns the location of config.yaml
func Path() string {
	return filepath.Join(Home(), "config.yaml")
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	home := Home()
	return &Config{
		DBPath:        filepath.Join(home, "notes.db"),
		ConfirmDelete: true,
		WatchChanges:  true,
		ServerAddr:    "127.0.0.1:8765",
		LogLevel:      "INFO",
		LogFile:       filepath.Join(home, "logs", "mynotes.log"),
		LogConsole:    false,
	}
}

// LoadEnv reads .env from the working directory and the app home. Variables
// already set in the environment win.
func LoadEnv() {
	_ = godotenv.Load()
	_ = godotenv.Load(filepath.Join(Home(), ".env"))
}

// Load loads config from $MYNOTES_HOME/config.yaml
func Load() (*Config, error) {
	LoadEnv()
	return LoadFrom(Path())
}

// LoadFrom reads the config at path. A missing file yields the defaults.
// MYNOTES_* environment variables override whatever the file says.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.DBPath = getEnv("MYNOTES_DB_PATH", c.DBPath)
	c.ServerAddr = getEnv("MYNOTES_SERVER_ADDR", c.ServerAddr)
	c.LogLevel = getEnv("MYNOTES_LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("MYNOTES_LOG_FILE", c.LogFile)
	c.LogConsole = getEnvBool("MYNOTES_LOG_CONSOLE", c.LogConsole)
	c.ConfirmDelete = getEnvBool("MYNOTES_CONFIRM_DELETE", c.ConfirmDelete)
	c.WatchChanges = getEnvBool("MYNOTES_WATCH_CHANGES", c.WatchChanges)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// Validate checks field formats
func (c *Config) Validate() error {
	return validate.New().Struct(c)
}

// Save saves config to $MYNOTES_HOME/config.yaml
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo writes the config as YAML to path
func (c *Config) SaveTo(path string) error {
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

// Default color file path
func colorFilePath() string {
	return filepath.Join(Home(), "color")
}

// DefaultColorID returns the color id new entries start with, 0 if unset
func DefaultColorID() int64 {
	data, err := os.ReadFile(colorFilePath())
	if err != nil {
		return 0
	}
	id, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// SetDefaultColorID saves the color id new entries start with
func SetDefaultColorID(id int64) error {
	path := colorFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.FormatInt(id, 10)), 0644)
}

// ClearDefaultColorID removes the saved default color
func ClearDefaultColorID() error {
	if err := os.Remove(colorFilePath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
