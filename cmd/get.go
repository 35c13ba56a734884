package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kowhai-dev/envage/internal/envfile"
	eerrors "github.com/kowhai-dev/envage/internal/errors"
	"github.com/kowhai-dev/envage/internal/loader"
)

var getFile string

func init() {
	getCmd.Flags().StringVarP(&getFile, "file", "f", "", "specific file to read from (default: scan .env files in order)")
}

var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a decrypted variable value",
	Long: `Prints the decrypted value of one variable to stdout.

Without --file, the current directory's env files are scanned in precedence
order and the highest-priority occurrence wins, matching what an
application loading this directory would see.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		Logger.Infof("Looking up %s", key)

		manager, err := loadManager()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load encryption key: %v", err)
		}

		var raw string
		found := false
		if getFile != "" {
			vars, err := envfile.Load(getFile)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read %s: %v", getFile, err)
			}
			raw, found = envfile.ToMap(vars)[key]
		} else {
			for _, path := range loader.ResolveEnvPaths(".") {
				vars, err := envfile.Load(path)
				if err != nil {
					return Logger.ErrorfAndReturn("failed to read %s: %v", path, err)
				}
				if value, ok := envfile.ToMap(vars)[key]; ok {
					raw = value
					found = true
				}
			}
		}
		if !found {
			return Logger.ErrorfAndReturn("%v: %s", eerrors.ErrVarNotFound, key)
		}

		value, err := manager.DecryptValue(raw)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to decrypt %s: %v", key, err)
		}

		// Value only, so output can be piped or substituted.
		fmt.Println(value)
		return nil
	},
}
