package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	eerrors "github.com/kowhai-dev/envage/internal/errors"
)

// ResolveFiles takes user-provided paths/globs and returns matching env files.
// If patterns is empty, returns nil (caller should use default behavior).
// Relative patterns are resolved against baseDir.
func ResolveFiles(patterns []string, baseDir string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern, baseDir)
		if err != nil {
			return nil, err
		}
		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, eerrors.ErrNoFilesFound
	}
	return files, nil
}

func resolvePattern(pattern string, baseDir string) ([]string, error) {
	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		absPattern = filepath.Join(baseDir, pattern)
	}

	if strings.ContainsAny(pattern, "*?[") {
		return expandGlob(absPattern)
	}

	info, err := os.Stat(absPattern)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", eerrors.ErrFileNotFound, pattern)
		}
		return nil, fmt.Errorf("%w: %s: %v", eerrors.ErrEnvFileRead, pattern, err)
	}
	if info.IsDir() {
		return expandGlob(filepath.Join(absPattern, ".env*"))
	}
	return []string{absPattern}, nil
}

func expandGlob(absPattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", absPattern, err)
	}

	var filtered []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if IsEnvFile(m) {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// IsEnvFile reports whether a path names a dotenv-style file.
func IsEnvFile(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".env")
}
