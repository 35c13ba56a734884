package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kowhai-dev/envage/internal/envfile"
	"github.com/kowhai-dev/envage/internal/patterns"
	"github.com/kowhai-dev/envage/internal/secrets"
)

var (
	encryptKeys []string
	encryptAuto bool
)

func init() {
	encryptCmd.Flags().StringSliceVarP(&encryptKeys, "keys", "k", nil, "specific keys to encrypt (comma-separated)")
	encryptCmd.Flags().BoolVarP(&encryptAuto, "auto", "a", true, "auto-detect sensitive keys by name")
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt [file...]",
	Short: "Encrypt sensitive values in environment files",
	Long: `Encrypts values in-place, leaving non-sensitive configuration readable.

By default keys are selected by name heuristics (names containing KEY,
SECRET, PASSWORD, TOKEN, PRIVATE, AUTH, or CREDENTIAL). Pass --keys to
select keys explicitly. Values that are already encrypted are skipped, so
the command is safe to run repeatedly. File arguments may be globs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		spinner, cleanup := startSpinner("Encrypting values...", verbose)
		defer cleanup()

		manager, err := loadManager()
		if err != nil {
			Logger.Errorf("Failed to load encryption key: %v", err)
			spinner.FinalMSG = keyHint(err)
			return nil
		}

		files, err := envfile.ResolveFiles(args, ".")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve files: %v", err)
		}
		if files == nil {
			files = []string{defaultEnvFile()}
		}
		Logger.Debugf("Encrypting files: %v", files)

		totalEncrypted := 0
		var encryptedKeys []string
		for _, file := range files {
			count, keys, err := encryptFile(manager, file)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to encrypt %s: %v", file, err)
			}
			totalEncrypted += count
			for _, k := range keys {
				encryptedKeys = append(encryptedKeys, fmt.Sprintf("%s (%s)", k, file))
			}
		}

		finalMessage := color.GreenString("✓") + fmt.Sprintf(" Encrypted %d value(s) in %d file(s)", totalEncrypted, len(files))
		if totalEncrypted > 0 {
			finalMessage += "\nEncrypted keys:"
			for _, k := range encryptedKeys {
				finalMessage += "\n    - " + color.CyanString(k)
			}
			finalMessage += "\n" + color.CyanString("→") + " Encrypted files are safe to commit to version control"
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}

// encryptFile rewrites one env file with selected values encrypted and
// returns how many values changed and which keys they belonged to.
func encryptFile(manager *secrets.Manager, path string) (int, []string, error) {
	fileVars, err := envfile.Load(path)
	if err != nil {
		return 0, nil, err
	}
	vars := envfile.ToMap(fileVars)

	selected := encryptKeys
	if len(selected) == 0 {
		if !encryptAuto {
			return 0, nil, fmt.Errorf("either --keys or --auto must be given")
		}
		for key := range vars {
			if patterns.ShouldEncrypt(key) {
				selected = append(selected, key)
			}
		}
		sort.Strings(selected)
	}

	count := 0
	var changed []string
	for _, key := range selected {
		value, ok := vars[key]
		if !ok {
			Logger.Warnf("Key %s not found in %s", key, path)
			continue
		}
		if secrets.IsEncrypted(value) {
			continue
		}
		encrypted, err := manager.EncryptValue(value)
		if err != nil {
			return 0, nil, fmt.Errorf("encrypting %s: %w", key, err)
		}
		vars[key] = encrypted
		changed = append(changed, key)
		count++
	}

	if count == 0 {
		return 0, nil, nil
	}
	if err := envfile.Write(path, vars); err != nil {
		return 0, nil, err
	}
	return count, changed, nil
}
