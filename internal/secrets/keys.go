package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kowhai-dev/envage/internal/envfile"
	eerrors "github.com/kowhai-dev/envage/internal/errors"
)

// Environment variables consulted when loading a key.
const (
	envageKeyVar = "ENVAGE_AGE_KEY"
	ageKeyVar    = "AGE_KEY"
	keyNameVar   = "AGE_KEY_NAME"
)

// LoadManager loads the identity from standard locations, in order:
//
//  1. ENVAGE_AGE_KEY environment variable (full identity string)
//  2. AGE_KEY environment variable (full identity string)
//  3. Key file at the path derived from AGE_KEY_NAME, auto-discovered from
//     .env.local or .env in the current directory when the variable is unset
//  4. Default key file under the XDG state directory
//
// Returns ErrKeyNotFound when no key exists in any location, or
// ErrInvalidIdentity when one is found but cannot be parsed.
func LoadManager() (*Manager, error) {
	if data := os.Getenv(envageKeyVar); data != "" {
		return FromIdentityString(data)
	}
	if data := os.Getenv(ageKeyVar); data != "" {
		return FromIdentityString(data)
	}

	keyPath := KeyPathFromEnvOrDefault()
	if _, err := os.Stat(keyPath); err == nil {
		data, err := os.ReadFile(keyPath)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", eerrors.ErrKeyNotFound, keyPath, err)
		}
		return FromIdentityString(string(data))
	}
	return nil, fmt.Errorf("%w: set %s or %s, or create a key file at %s",
		eerrors.ErrKeyNotFound, envageKeyVar, ageKeyVar, keyPath)
}

// SaveKey writes the identity to path, creating parent directories 0700 and
// the file itself 0600 so only the owner can read the secret key.
func (m *Manager) SaveKey(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("creating key directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(m.IdentityString()+"\n"), 0600); err != nil {
		return fmt.Errorf("writing key file %s: %w", path, err)
	}
	return nil
}

// KeyPathFromEnvOrDefault returns the key file path for the configured key
// name. AGE_KEY_NAME may name a project-specific key (e.g. "myapp/production"
// maps to $XDG_STATE_HOME/myapp/production.key); when it is unset, the name
// is discovered from .env.local or .env in the current directory. Without a
// name, DefaultKeyPath is used.
func KeyPathFromEnvOrDefault() string {
	name := strings.TrimSpace(os.Getenv(keyNameVar))
	if name == "" {
		name = discoverKeyName(".")
	}
	if name == "" {
		return DefaultKeyPath()
	}
	return filepath.Join(stateDir(), name+".key")
}

// DefaultKeyPath returns the default key file location, typically
// ~/.local/state/envage/envage.key.
func DefaultKeyPath() string {
	return filepath.Join(stateDir(), "envage", "envage.key")
}

// discoverKeyName searches .env.local then .env for an AGE_KEY_NAME or
// *_AGE_KEY_NAME variable, letting projects pin their key without any
// process environment setup. Values are read raw; key names are never
// stored encrypted.
func discoverKeyName(dir string) string {
	for _, name := range []string{".env.local", ".env"} {
		vars, err := envfile.Load(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		for _, v := range vars {
			if (v.Key == keyNameVar || strings.HasSuffix(v.Key, "_"+keyNameVar)) && v.Value != "" {
				return v.Value
			}
		}
	}
	return ""
}

// stateDir resolves the base directory for key storage:
// XDG_STATE_HOME, then XDG_CONFIG_HOME, then ~/.local/state.
func stateDir() string {
	if p := os.Getenv("XDG_STATE_HOME"); p != "" {
		return p
	}
	if p := os.Getenv("XDG_CONFIG_HOME"); p != "" {
		return p
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state")
	}
	return "."
}
