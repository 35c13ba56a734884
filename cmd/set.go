package cmd

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kowhai-dev/envage/internal/envfile"
	"github.com/kowhai-dev/envage/internal/patterns"
	"github.com/kowhai-dev/envage/internal/secrets"
)

var setFile string

func init() {
	setCmd.Flags().StringVarP(&setFile, "file", "f", "", "environment file to update (default: the configured env file)")
}

var setCmd = &cobra.Command{
	Use:   "set KEY=VALUE",
	Short: "Set a variable, encrypting it when the name looks sensitive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting set command")
		spinner, cleanup := startSpinner("Setting variable...", verbose)
		defer cleanup()

		key, value, ok := strings.Cut(args[0], "=")
		if !ok || key == "" {
			return Logger.ErrorfAndReturn("invalid argument %q: expected KEY=VALUE", args[0])
		}

		file := setFile
		if file == "" {
			file = defaultEnvFile()
		}

		vars := map[string]string{}
		if _, err := os.Stat(file); err == nil {
			fileVars, err := envfile.Load(file)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read %s: %v", file, err)
			}
			vars = envfile.ToMap(fileVars)
		}

		finalValue := value
		if patterns.ShouldEncrypt(key) {
			manager, err := loadManager()
			if err != nil {
				Logger.Errorf("Failed to load encryption key: %v", err)
				spinner.FinalMSG = keyHint(err)
				return nil
			}
			finalValue, err = manager.EncryptValue(value)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to encrypt value: %v", err)
			}
			Logger.Debugf("Encrypted value for %s", key)
		}

		vars[key] = finalValue
		if err := envfile.Write(file, vars); err != nil {
			return Logger.ErrorfAndReturn("failed to write %s: %v", file, err)
		}

		status := "plain"
		if secrets.IsEncrypted(finalValue) {
			status = "encrypted"
		}
		finalMessage := color.GreenString("✓") + " Set " + color.CyanString(key) +
			" (" + status + ") in " + color.YellowString(file)
		spinner.FinalMSG = finalMessage
		return nil
	},
}
