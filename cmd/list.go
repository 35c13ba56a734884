package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kowhai-dev/envage/internal/envfile"
	"github.com/kowhai-dev/envage/internal/secrets"
	"github.com/kowhai-dev/envage/internal/ui"
)

var (
	listFile       string
	listShowValues bool
)

func init() {
	listCmd.Flags().StringVarP(&listFile, "file", "f", "", "environment file to list (default: the configured env file)")
	listCmd.Flags().BoolVar(&listShowValues, "values", false, "show decrypted values")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List variables and their encryption status",
	RunE: func(cmd *cobra.Command, args []string) error {
		file := listFile
		if file == "" {
			file = defaultEnvFile()
		}
		Logger.Infof("Listing variables in %s", file)

		fileVars, err := envfile.Load(file)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read %s: %v", file, err)
		}
		vars := envfile.ToMap(fileVars)

		// Decryption is only needed (and only attempted) when values are shown.
		var manager *secrets.Manager
		if listShowValues {
			manager, err = loadManager()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to load encryption key: %v", err)
			}
		}

		keys := make([]string, 0, len(vars))
		for key := range vars {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Printf("Environment variables in %s:\n\n", ui.Path.Sprint(file))
		for _, key := range keys {
			value := vars[key]
			encrypted := secrets.IsEncrypted(value)
			marker := "  "
			if encrypted {
				marker = ui.Success.Sprint("🔒")
			}
			if !listShowValues {
				fmt.Printf("%s %s\n", marker, ui.Highlight.Sprint(key))
				continue
			}
			display := value
			if encrypted {
				display, err = manager.DecryptValue(value)
				if err != nil {
					display = ui.Error.Sprint("<decryption failed>")
				}
			}
			fmt.Printf("%s %s = %s\n", marker, ui.Highlight.Sprint(key), display)
		}
		return nil
	},
}
