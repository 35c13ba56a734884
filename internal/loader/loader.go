package loader

import (
	"fmt"
	"sort"

	"github.com/kowhai-dev/envage/internal/envfile"
	"github.com/kowhai-dev/envage/internal/secrets"
)

// Loader discovers, parses, merges, and decrypts env files in a directory.
// Results are computed fresh on every call; a Loader holds no state beyond
// its immutable manager and is safe for concurrent use.
type Loader struct {
	manager *secrets.Manager
}

// WithManager returns a Loader that decrypts values with the given manager.
func WithManager(manager *secrets.Manager) *Loader {
	return &Loader{manager: manager}
}

// ResolveEnvPaths returns the ordered candidate files in dir. No files are
// read and nothing is decrypted.
func (l *Loader) ResolveEnvPaths(dir string) []string {
	return ResolveEnvPaths(dir)
}

// LoadFromDir resolves, parses, merges, and decrypts the env files in dir
// and returns the ordered list of file paths actually read. No candidate
// files is not an error; the returned list is simply empty.
func (l *Loader) LoadFromDir(dir string) ([]string, error) {
	paths, merged, err := l.mergeDir(dir)
	if err != nil {
		return nil, err
	}
	if _, err := l.decryptAll(merged); err != nil {
		return nil, err
	}
	return paths, nil
}

// GetAllVariablesFromDir runs the same pipeline as LoadFromDir and returns
// the final key to decrypted value mapping.
func (l *Loader) GetAllVariablesFromDir(dir string) (map[string]string, error) {
	_, merged, err := l.mergeDir(dir)
	if err != nil {
		return nil, err
	}
	return l.decryptAll(merged)
}

// GetAllVariableNamesFromDir returns the sorted key names of the final
// merged mapping. Values are never decrypted, so callers can audit which
// variables a directory defines without touching any secrets.
func (l *Loader) GetAllVariableNamesFromDir(dir string) ([]string, error) {
	_, merged, err := l.mergeDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(merged))
	for key := range merged {
		names = append(names, key)
	}
	sort.Strings(names)
	return names, nil
}

// rawVar is a merged raw value plus the file that supplied it, kept so
// decryption failures can name the offending key and path.
type rawVar struct {
	value string
	path  string
}

// mergeDir parses every resolved file in precedence order and merges the
// pairs, later files overriding earlier ones per key.
func (l *Loader) mergeDir(dir string) ([]string, map[string]rawVar, error) {
	paths := ResolveEnvPaths(dir)
	merged := make(map[string]rawVar)
	for _, path := range paths {
		vars, err := envfile.Load(path)
		if err != nil {
			return nil, nil, err
		}
		for _, v := range vars {
			merged[v.Key] = rawVar{value: v.Value, path: path}
		}
	}
	return paths, merged, nil
}

// decryptAll decrypts every merged value. A value that fails to decrypt is
// fatal: silently dropping it or passing ciphertext through would mask key
// rotation problems or tampering.
func (l *Loader) decryptAll(merged map[string]rawVar) (map[string]string, error) {
	vars := make(map[string]string, len(merged))
	for key, rv := range merged {
		plain, err := l.manager.DecryptValue(rv.value)
		if err != nil {
			return nil, fmt.Errorf("decrypting %s in %s: %w", key, rv.path, err)
		}
		vars[key] = plain
	}
	return vars, nil
}
