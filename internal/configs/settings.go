package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// UserSettings are optional per-user CLI preferences, stored as TOML at
// $XDG_CONFIG_HOME/envage/config.toml.
type UserSettings struct {
	Defaults DefaultsConfig `toml:"defaults"`
}

// DefaultsConfig controls fallbacks for flags the user omits.
type DefaultsConfig struct {
	// EnvFile is the file that file-taking commands (encrypt, set, list)
	// operate on when no --file flag is given.
	EnvFile string `toml:"env_file"`

	// KeyName selects a project key like AGE_KEY_NAME does, for users who
	// prefer config over environment variables. The environment variable
	// still wins when both are set.
	KeyName string `toml:"key_name"`
}

// DefaultEnvFile is used when neither the flag nor the settings name a file.
const DefaultEnvFile = ".env.local"

// SettingsPath returns the user settings file location.
func SettingsPath() string {
	return filepath.Join(configDir(), "envage", "config.toml")
}

// LoadUserSettings reads the user settings file. A missing file is not an
// error; it yields the built-in defaults.
func LoadUserSettings() (*UserSettings, error) {
	settings := &UserSettings{
		Defaults: DefaultsConfig{EnvFile: DefaultEnvFile},
	}

	path := SettingsPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}
	if err := LoadTOML(path, settings); err != nil {
		return nil, fmt.Errorf("loading settings from %s: %w", path, err)
	}
	if settings.Defaults.EnvFile == "" {
		settings.Defaults.EnvFile = DefaultEnvFile
	}
	return settings, nil
}

// SaveUserSettings writes the user settings file.
func SaveUserSettings(settings *UserSettings) error {
	if err := SaveTOML(SettingsPath(), settings); err != nil {
		return fmt.Errorf("saving settings to %s: %w", SettingsPath(), err)
	}
	return nil
}

func configDir() string {
	if p := os.Getenv("XDG_CONFIG_HOME"); p != "" {
		return p
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}
	return "."
}
