package envfile

import (
	"os"
	"sort"
	"strings"
)

// Format renders variables as env file content with sorted keys.
// Values containing whitespace, '$', or quotes are double-quoted with
// backslash escaping for '"' and '\'.
func Format(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		value := vars[key]
		if needsQuoting(value) {
			b.WriteString(key + "=\"" + escapeQuoted(value) + "\"\n")
		} else {
			b.WriteString(key + "=" + value + "\n")
		}
	}
	return b.String()
}

// Write writes variables to the env file at path, replacing its contents.
func Write(path string, vars map[string]string) error {
	// #nosec G306 -- env files are meant to be user-editable; secrets inside
	// them are protected by the envelope, not by file permissions.
	return os.WriteFile(path, []byte(Format(vars)), 0644)
}

func needsQuoting(value string) bool {
	return strings.ContainsAny(value, " \t\n$\"'")
}

func escapeQuoted(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `"`, `\"`)
}
