package envfile

import (
	"fmt"
	"os"
	"strings"

	eerrors "github.com/kowhai-dev/envage/internal/errors"
)

// Variable is a single KEY=VALUE pair from an env file, in file order.
// The value is raw: it may be plaintext or an encryption envelope.
type Variable struct {
	Key   string
	Value string
}

// Parse parses env file content into an ordered sequence of variables.
//
// Blank lines and lines whose first non-whitespace character is '#' are
// skipped. Lines without '=' are silently skipped as well; dotenv files in
// the wild contain junk and a hard failure here helps nobody. Values wrapped
// in matching single or double quotes have the quotes stripped with no
// escape processing. Duplicate keys are preserved in order so that callers
// merging into a map get last-wins semantics.
func Parse(content string) []Variable {
	var vars []Variable
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		vars = append(vars, Variable{
			Key:   strings.TrimSpace(key),
			Value: unquote(strings.TrimSpace(value)),
		})
	}
	return vars
}

// Load reads and parses the env file at path.
func Load(path string) ([]Variable, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", eerrors.ErrEnvFileRead, path, err)
	}
	return Parse(string(content)), nil
}

// ToMap collapses ordered variables into a map, later entries overriding
// earlier ones for the same key.
func ToMap(vars []Variable) map[string]string {
	m := make(map[string]string, len(vars))
	for _, v := range vars {
		m[v.Key] = v.Value
	}
	return m
}

// unquote strips one pair of matching surrounding quotes, if present.
func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
