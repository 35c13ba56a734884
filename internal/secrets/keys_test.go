package secrets

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	eerrors "github.com/kowhai-dev/envage/internal/errors"
)

// clearKeyEnv blanks every variable the key loading path consults so tests
// are isolated from the developer's real environment.
func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{"ENVAGE_AGE_KEY", "AGE_KEY", "AGE_KEY_NAME", "XDG_STATE_HOME", "XDG_CONFIG_HOME"} {
		t.Setenv(v, "")
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	})
}

func TestLoadManager_FromEnvVar(t *testing.T) {
	clearKeyEnv(t)
	chdir(t, t.TempDir())

	original, err := Generate()
	if err != nil {
		t.Fatalf("Failed to generate manager: %v", err)
	}
	t.Setenv("ENVAGE_AGE_KEY", original.IdentityString())

	loaded, err := LoadManager()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if loaded.PublicKeyString() != original.PublicKeyString() {
		t.Error("Expected loaded manager to match the env var identity")
	}
}

func TestLoadManager_FromKeyFile(t *testing.T) {
	clearKeyEnv(t)
	chdir(t, t.TempDir())

	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)

	original, err := Generate()
	if err != nil {
		t.Fatalf("Failed to generate manager: %v", err)
	}
	if err := original.SaveKey(DefaultKeyPath()); err != nil {
		t.Fatalf("SaveKey failed: %v", err)
	}

	loaded, err := LoadManager()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if loaded.PublicKeyString() != original.PublicKeyString() {
		t.Error("Expected loaded manager to match the saved key")
	}
}

func TestLoadManager_NoKeyAnywhere(t *testing.T) {
	clearKeyEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	_, err := LoadManager()
	if !errors.Is(err, eerrors.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got: %v", err)
	}
}

func TestKeyPathFromEnvOrDefault_WithKeyName(t *testing.T) {
	clearKeyEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("XDG_STATE_HOME", "/tmp/xdg-state")
	t.Setenv("AGE_KEY_NAME", "myproject/myapp")

	got := KeyPathFromEnvOrDefault()
	want := filepath.Join("/tmp/xdg-state", "myproject", "myapp.key")
	if got != want {
		t.Errorf("Expected %s, got: %s", want, got)
	}
}

func TestKeyPathFromEnvOrDefault_Default(t *testing.T) {
	clearKeyEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("XDG_STATE_HOME", "/tmp/xdg-state")

	got := KeyPathFromEnvOrDefault()
	want := filepath.Join("/tmp/xdg-state", "envage", "envage.key")
	if got != want {
		t.Errorf("Expected %s, got: %s", want, got)
	}
}

func TestKeyPathFromEnvOrDefault_DiscoversNameFromEnvFile(t *testing.T) {
	clearKeyEnv(t)
	tmpDir := t.TempDir()
	chdir(t, tmpDir)
	t.Setenv("XDG_STATE_HOME", "/tmp/xdg-state")

	content := "# project config\nMYAPP_AGE_KEY_NAME=myapp/production\n"
	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	got := KeyPathFromEnvOrDefault()
	want := filepath.Join("/tmp/xdg-state", "myapp", "production.key")
	if got != want {
		t.Errorf("Expected %s, got: %s", want, got)
	}
}

func TestSaveKey_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file permission bits are not meaningful on Windows")
	}
	manager, err := Generate()
	if err != nil {
		t.Fatalf("Failed to generate manager: %v", err)
	}
	path := filepath.Join(t.TempDir(), "keys", "envage.key")
	if err := manager.SaveKey(path); err != nil {
		t.Fatalf("SaveKey failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat key file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected 0600 permissions, got: %o", info.Mode().Perm())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read key file: %v", err)
	}
	restored, err := FromIdentityString(string(data))
	if err != nil {
		t.Fatalf("Failed to parse saved key: %v", err)
	}
	if restored.PublicKeyString() != manager.PublicKeyString() {
		t.Error("Expected saved key to round-trip")
	}
}
