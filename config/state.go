package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"leetterm/log"
)

const StateFileName = "state.json"

// AppState stores persistent application state that is not user-editable
// configuration, like which one-time help screens have been seen.
type AppState struct {
	// HelpScreensSeen is a bitmask of seen help screens.
	HelpScreensSeen uint32 `json:"help_screens_seen"`
	// LastSlug is the slug of the problem that was open when the app exited.
	LastSlug string `json:"last_slug,omitempty"`
}

// LoadState loads the app state, defaulting to the zero state on any error.
func LoadState() AppState {
	var state AppState
	configDir, err := GetConfigDir()
	if err != nil {
		return state
	}
	data, err := os.ReadFile(filepath.Join(configDir, StateFileName))
	if err != nil {
		return state
	}
	if err := json.Unmarshal(data, &state); err != nil {
		log.WarningLog.Printf("failed to parse state file: %v", err)
	}
	return state
}

// SaveState persists the app state. Failures are logged and swallowed; losing
// state is never worth interrupting the user for.
func SaveState(state AppState) {
	configDir, err := GetConfigDir()
	if err != nil {
		log.WarningLog.Printf("failed to get config directory: %v", err)
		return
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		log.WarningLog.Printf("failed to create config directory: %v", err)
		return
	}
	data, err := json.Marshal(state)
	if err != nil {
		log.WarningLog.Printf("failed to marshal state: %v", err)
		return
	}
	if err := os.WriteFile(filepath.Join(configDir, StateFileName), data, 0644); err != nil {
		log.WarningLog.Printf("failed to write state file: %v", err)
	}
}
