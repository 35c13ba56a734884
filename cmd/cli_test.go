package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kowhai-dev/envage/internal/envfile"
	"github.com/kowhai-dev/envage/internal/secrets"
)

// setupTestEnvironment isolates a test from the real user environment:
// fresh working directory, temp XDG dirs so no real settings or keys are
// touched, and a known identity in ENVAGE_AGE_KEY.
func setupTestEnvironment(t *testing.T) *secrets.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	})

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tempDir, "state"))
	t.Setenv("AGE_KEY", "")
	t.Setenv("AGE_KEY_NAME", "")
	t.Setenv("ENVAGE_ENV", "")
	t.Setenv("VERCEL_ENV", "")
	t.Setenv("NODE_ENV", "")

	manager, err := secrets.Generate()
	if err != nil {
		t.Fatalf("Failed to generate manager: %v", err)
	}
	t.Setenv("ENVAGE_AGE_KEY", manager.IdentityString())
	return manager
}

// runCommand executes the CLI with the given args, resetting flag state
// that persists on the package-level command variables between runs.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	setFile = ""
	getFile = ""
	listFile = ""
	listShowValues = false
	dumpFile = ""
	dumpBash = false
	dumpMake = false
	dumpExport = false
	encryptKeys = nil
	encryptAuto = true
	keygenOutput = ""
	keygenForce = false

	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

// captureStdout captures everything written to stdout while fn runs.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	original := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	os.Stdout = original
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close pipe: %v", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("Failed to read captured output: %v", err)
	}
	return string(out), fnErr
}

func TestKeygenCommand_CreatesKeyFile(t *testing.T) {
	setupTestEnvironment(t)

	if err := runCommand(t, "keygen"); err != nil {
		t.Fatalf("keygen failed: %v", err)
	}

	keyPath := secrets.DefaultKeyPath()
	info, err := os.Stat(keyPath)
	if err != nil {
		t.Fatalf("Expected key file at %s: %v", keyPath, err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected key file mode 0600, got %v", info.Mode().Perm())
	}
}

func TestKeygenCommand_RefusesOverwriteWithoutForce(t *testing.T) {
	setupTestEnvironment(t)

	if err := runCommand(t, "keygen"); err != nil {
		t.Fatalf("keygen failed: %v", err)
	}
	before, err := os.ReadFile(secrets.DefaultKeyPath())
	if err != nil {
		t.Fatalf("Failed to read key file: %v", err)
	}

	if err := runCommand(t, "keygen"); err != nil {
		t.Fatalf("keygen without --force should not return an error: %v", err)
	}
	after, err := os.ReadFile(secrets.DefaultKeyPath())
	if err != nil {
		t.Fatalf("Failed to read key file: %v", err)
	}
	if string(before) != string(after) {
		t.Error("Expected key file to be unchanged without --force")
	}

	if err := runCommand(t, "keygen", "--force"); err != nil {
		t.Fatalf("keygen --force failed: %v", err)
	}
	forced, err := os.ReadFile(secrets.DefaultKeyPath())
	if err != nil {
		t.Fatalf("Failed to read key file: %v", err)
	}
	if string(before) == string(forced) {
		t.Error("Expected a new key after --force")
	}
}

func TestSetCommand_EncryptsSensitiveName(t *testing.T) {
	manager := setupTestEnvironment(t)

	if err := runCommand(t, "set", "API_KEY=super-secret"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	vars, err := envfile.Load(".env.local")
	if err != nil {
		t.Fatalf("Failed to load .env.local: %v", err)
	}
	stored := envfile.ToMap(vars)["API_KEY"]
	if !secrets.IsEncrypted(stored) {
		t.Errorf("Expected API_KEY to be stored encrypted, got %q", stored)
	}
	plain, err := manager.DecryptValue(stored)
	if err != nil {
		t.Fatalf("Failed to decrypt stored value: %v", err)
	}
	if plain != "super-secret" {
		t.Errorf("Expected decrypted value %q, got %q", "super-secret", plain)
	}
}

func TestSetCommand_LeavesPlainNamePlain(t *testing.T) {
	setupTestEnvironment(t)

	if err := runCommand(t, "set", "APP_NAME=myapp"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	vars, err := envfile.Load(".env.local")
	if err != nil {
		t.Fatalf("Failed to load .env.local: %v", err)
	}
	if got := envfile.ToMap(vars)["APP_NAME"]; got != "myapp" {
		t.Errorf("Expected APP_NAME stored as plaintext, got %q", got)
	}
}

func TestGetCommand_PrintsDecryptedValue(t *testing.T) {
	setupTestEnvironment(t)

	if err := runCommand(t, "set", "DB_PASSWORD=hunter2"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	output, err := captureStdout(t, func() error {
		return runCommand(t, "get", "DB_PASSWORD")
	})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !strings.Contains(output, "hunter2") {
		t.Errorf("Expected output to contain decrypted value, got %q", output)
	}
}

func TestGetCommand_MissingVariable(t *testing.T) {
	setupTestEnvironment(t)

	if err := runCommand(t, "get", "NO_SUCH_VAR"); err == nil {
		t.Error("Expected an error for a missing variable")
	}
}

func TestEncryptCommand_EncryptsOnlySensitiveKeys(t *testing.T) {
	setupTestEnvironment(t)

	content := "API_KEY=abc123\nAPP_NAME=myapp\nDATABASE_URL=postgres://localhost/db\n"
	if err := os.WriteFile(".env.local", []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	if err := runCommand(t, "encrypt"); err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}

	vars, err := envfile.Load(".env.local")
	if err != nil {
		t.Fatalf("Failed to load .env.local: %v", err)
	}
	m := envfile.ToMap(vars)
	if !secrets.IsEncrypted(m["API_KEY"]) {
		t.Errorf("Expected API_KEY encrypted, got %q", m["API_KEY"])
	}
	if m["APP_NAME"] != "myapp" {
		t.Errorf("Expected APP_NAME untouched, got %q", m["APP_NAME"])
	}
	if m["DATABASE_URL"] != "postgres://localhost/db" {
		t.Errorf("Expected DATABASE_URL untouched, got %q", m["DATABASE_URL"])
	}
}

func TestEncryptCommand_Idempotent(t *testing.T) {
	setupTestEnvironment(t)

	if err := os.WriteFile(".env.local", []byte("SECRET_TOKEN=tok\n"), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	if err := runCommand(t, "encrypt"); err != nil {
		t.Fatalf("First encrypt failed: %v", err)
	}
	first, err := os.ReadFile(".env.local")
	if err != nil {
		t.Fatalf("Failed to read env file: %v", err)
	}

	if err := runCommand(t, "encrypt"); err != nil {
		t.Fatalf("Second encrypt failed: %v", err)
	}
	second, err := os.ReadFile(".env.local")
	if err != nil {
		t.Fatalf("Failed to read env file: %v", err)
	}
	if string(first) != string(second) {
		t.Error("Expected second encrypt to leave the file unchanged")
	}
}

func TestDumpCommand_DecryptsValues(t *testing.T) {
	setupTestEnvironment(t)

	if err := runCommand(t, "set", "API_KEY=plaintext-value"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	output, err := captureStdout(t, func() error {
		return runCommand(t, "dump", "--file", ".env.local")
	})
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	if !strings.Contains(output, "API_KEY=plaintext-value") {
		t.Errorf("Expected dump to contain decrypted assignment, got %q", output)
	}
}

func TestDumpCommand_ExportMode(t *testing.T) {
	setupTestEnvironment(t)

	if err := runCommand(t, "set", "APP_NAME=myapp"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	output, err := captureStdout(t, func() error {
		return runCommand(t, "dump", "--file", ".env.local", "--export")
	})
	if err != nil {
		t.Fatalf("dump --export failed: %v", err)
	}
	if !strings.Contains(output, "export APP_NAME=myapp") {
		t.Errorf("Expected export-prefixed assignment, got %q", output)
	}
}
