package loader

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ResolveEnvPaths returns the ordered list of env files that exist in dir,
// lowest to highest override priority:
//
//  1. .env
//  2. .env.<ENV>
//  3. .env.<ENV>-<ARCH>
//  4. .env.<ENV>.<USER>, then .env.<ENV>-<ARCH>.<USER>
//  5. .env.pr-<N> (GitHub Actions pull requests only)
//
// Each placeholder layer is probed with both '.' and '-' separators (so
// .env.local and .env-local both work) and filename matching is
// case-insensitive. Only existing files are returned; an empty or
// nonexistent directory yields an empty list.
func ResolveEnvPaths(dir string) []string {
	var paths []string

	addExactIfExists(dir, &paths, ".env")

	env := ResolveEnv()
	addNamesIfExist(dir, &paths, env)

	arch := ResolveArch()
	if arch != "" {
		addNamesIfExist(dir, &paths, env, arch)
	}

	user := ResolveUser()
	if user != "" {
		addNamesIfExist(dir, &paths, env, user)
		if arch != "" {
			addNamesIfExist(dir, &paths, env, arch, user)
		}
	}

	if pr := ResolvePRNumber(); pr != "" {
		addExactIfExists(dir, &paths, ".env.pr-"+pr)
	}

	return paths
}

// genNames enumerates every separator combination for the placeholder parts:
// for parts [prod, alice] it yields .env.prod.alice, .env-prod.alice,
// .env.prod-alice, and .env-prod-alice.
func genNames(parts []string) []string {
	names := make([]string, 0, 1<<len(parts))
	for mask := 0; mask < 1<<len(parts); mask++ {
		name := ".env"
		for i, part := range parts {
			sep := "."
			if mask>>i&1 == 1 {
				sep = "-"
			}
			name += sep + part
		}
		names = append(names, name)
	}
	return names
}

func addNamesIfExist(dir string, paths *[]string, parts ...string) {
	for _, name := range genNames(parts) {
		if p := findFileCaseInsensitive(dir, name); p != "" && !slices.Contains(*paths, p) {
			*paths = append(*paths, p)
		}
	}
}

func addExactIfExists(dir string, paths *[]string, filename string) {
	if p := findFileCaseInsensitive(dir, filename); p != "" && !slices.Contains(*paths, p) {
		*paths = append(*paths, p)
	}
}

func findFileCaseInsensitive(dir, filename string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	target := strings.ToLower(filename)
	for _, entry := range entries {
		if !entry.IsDir() && strings.ToLower(entry.Name()) == target {
			return filepath.Join(dir, entry.Name())
		}
	}
	return ""
}

// ResolveEnv resolves the <ENV> placeholder: ENVAGE_ENV, then VERCEL_ENV,
// then NODE_ENV, defaulting to "local". Always lowercased.
func ResolveEnv() string {
	for _, v := range []string{"ENVAGE_ENV", "VERCEL_ENV", "NODE_ENV"} {
		if val := os.Getenv(v); val != "" {
			return strings.ToLower(val)
		}
	}
	return "local"
}

// ResolveArch resolves the optional <ARCH> placeholder: ENVAGE_ARCH, then
// TARGETARCH (Docker), then the arch part of TARGETPLATFORM (e.g.
// "linux/arm64"), then RUNNER_ARCH (GitHub Actions). The value is lowercased
// and normalized so x64, x86_64, and amd64 all become amd64 and aarch64
// becomes arm64. Returns "" when no source is set.
func ResolveArch() string {
	arch := os.Getenv("ENVAGE_ARCH")
	if arch == "" {
		arch = os.Getenv("TARGETARCH")
	}
	if arch == "" {
		if platform := os.Getenv("TARGETPLATFORM"); platform != "" {
			if _, after, ok := strings.Cut(platform, "/"); ok {
				arch = after
			}
		}
	}
	if arch == "" {
		arch = os.Getenv("RUNNER_ARCH")
	}
	if arch == "" {
		return ""
	}

	switch arch = strings.ToLower(arch); arch {
	case "x64", "x86_64":
		return "amd64"
	case "aarch64":
		return "arm64"
	default:
		return arch
	}
}

// ResolveUser resolves the optional <USER> placeholder from the first set
// variable among ENVAGE_USER, GITHUB_ACTOR, GITHUB_TRIGGERING_ACTOR,
// GITHUB_REPOSITORY_OWNER, USER, and USERNAME. Always lowercased; ""
// when none is set.
func ResolveUser() string {
	for _, v := range []string{
		"ENVAGE_USER",
		"GITHUB_ACTOR",
		"GITHUB_TRIGGERING_ACTOR",
		"GITHUB_REPOSITORY_OWNER",
		"USER",
		"USERNAME",
	} {
		if val := os.Getenv(v); val != "" {
			return strings.ToLower(val)
		}
	}
	return ""
}

// ResolvePRNumber resolves the <PR_NUMBER> placeholder in GitHub Actions
// pull request contexts: PR_NUMBER when GITHUB_EVENT_NAME starts with
// "pull_request", else the number parsed from GITHUB_REF
// (refs/pull/123/merge). Returns "" outside PR contexts.
func ResolvePRNumber() string {
	if strings.HasPrefix(os.Getenv("GITHUB_EVENT_NAME"), "pull_request") {
		if pr := os.Getenv("PR_NUMBER"); pr != "" {
			return pr
		}
	}

	ref := os.Getenv("GITHUB_REF")
	if _, after, ok := strings.Cut(ref, "/pull/"); ok {
		var digits strings.Builder
		for _, c := range after {
			if c < '0' || c > '9' {
				break
			}
			digits.WriteRune(c)
		}
		if digits.Len() > 0 {
			return digits.String()
		}
	}
	return ""
}
