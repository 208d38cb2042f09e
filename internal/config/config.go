// Package config handles configuration resolution: command-line flags
// override environment variables, which override the optional TOML
// config file in the XDG config directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// AppName is the application directory name.
	AppName = "cuimport"

	// ConfigFile is the optional TOML config filename.
	ConfigFile = "config.toml"

	// EnvAPIToken is the environment fallback for the API token.
	EnvAPIToken = "CLICKUP_API_TOKEN"

	// EnvListID is the environment fallback for the target list ID.
	EnvListID = "CLICKUP_LIST_ID"
)

// Config holds resolved settings for one run.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// APIToken authenticates against the ClickUp API.
	APIToken string

	// ListID is the list tasks are created under.
	ListID string

	// BaseURL overrides the API base URL. Empty means the production API.
	BaseURL string

	// DryRun performs all transformation and bookkeeping without any
	// network mutation calls.
	DryRun bool

	// Quiet suppresses informational output.
	Quiet bool

	// Verbose enables debug logging.
	Verbose bool
}

// fileConfig is the TOML shape of config.toml.
type fileConfig struct {
	APIToken string `toml:"api_token"`
	ListID   string `toml:"list_id"`
	BaseURL  string `toml:"base_url"`
}

// Error is a configuration error: required settings that are absent
// after all sources have been merged.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// New creates a Config from the config file and environment.
// If configDir is empty, uses XDG_CONFIG_HOME/cuimport or
// $HOME/.config/cuimport. Flag values are layered on top by the caller.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	if tok := os.Getenv(EnvAPIToken); tok != "" {
		cfg.APIToken = tok
	}
	if list := os.Getenv(EnvListID); list != "" {
		cfg.ListID = list
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the TOML config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// loadFile reads config.toml if it exists. A missing file is not an
// error; a malformed one is.
func (c *Config) loadFile() error {
	data, err := os.ReadFile(c.ConfigPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", c.ConfigPath(), err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", c.ConfigPath(), err)
	}
	c.APIToken = fc.APIToken
	c.ListID = fc.ListID
	c.BaseURL = fc.BaseURL
	return nil
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.APIToken == "" {
		return &Error{Message: fmt.Sprintf("API token is required (set -token, %s, or api_token in %s)", EnvAPIToken, ConfigFile)}
	}
	if c.ListID == "" {
		return &Error{Message: fmt.Sprintf("list ID is required (set -list, %s, or list_id in %s)", EnvListID, ConfigFile)}
	}
	return nil
}
