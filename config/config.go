package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"leetterm/log"
)

const ConfigFileName = "config.json"

const (
	defaultLanguage = "golang"
	defaultEditor   = "vim"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".leetterm"), nil
}

// Config represents the application configuration
type Config struct {
	// WorkspaceDir is the directory problem projects are scaffolded into.
	WorkspaceDir string `json:"workspace_dir"`
	// Language is the language slug used for code snippets and submissions.
	Language string `json:"language"`
	// Editor is the command used to open scaffolded solution files.
	Editor string `json:"editor"`
	// Session is the LEETCODE_SESSION cookie value. Optional; unauthenticated
	// sessions can browse but not run or submit.
	Session string `json:"leetcode_session,omitempty"`
	// CSRFToken is the csrftoken cookie value, sent as the x-csrftoken header.
	CSRFToken string `json:"csrf_token,omitempty"`
}

// Authenticated reports whether a session cookie is configured. It does not
// validate the cookie; the API does that on first use.
func (c *Config) Authenticated() bool {
	return c.Session != ""
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get home directory: %v", err)
		home = "."
	}
	return &Config{
		WorkspaceDir: filepath.Join(home, "leetcode"),
		Language:     defaultLanguage,
		Editor:       defaultEditor,
	}
}

// LoadConfig reads the config file, falling back to defaults if it is missing
// or unreadable. The second return value reports whether a config file
// existed; first runs use it to enter the setup screen.
func LoadConfig() (*Config, bool) {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig(), false
	}

	data, err := os.ReadFile(filepath.Join(configDir, ConfigFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			log.WarningLog.Printf("failed to read config file: %v", err)
		}
		return DefaultConfig(), false
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		log.ErrorLog.Printf("failed to parse config file: %v", err)
		return DefaultConfig(), false
	}

	// Merge with defaults for fields added after the file was written.
	defaults := DefaultConfig()
	if config.WorkspaceDir == "" {
		config.WorkspaceDir = defaults.WorkspaceDir
	}
	if config.Language == "" {
		config.Language = defaults.Language
	}
	if config.Editor == "" {
		config.Editor = defaults.Editor
	}

	return &config, true
}

// SaveConfig saves the configuration to disk
func SaveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Config holds the session cookie, so keep it user-only.
	return os.WriteFile(filepath.Join(configDir, ConfigFileName), data, 0600)
}

// Reset removes the config file. Used by the `reset` subcommand.
func Reset() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(configDir, ConfigFileName))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
