package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kowhai-dev/envage/internal/envfile"
	"github.com/kowhai-dev/envage/internal/loader"
	"github.com/kowhai-dev/envage/internal/secrets"
)

var (
	dumpFile   string
	dumpBash   bool
	dumpMake   bool
	dumpExport bool
)

func init() {
	dumpCmd.Flags().StringVarP(&dumpFile, "file", "f", "", "specific file to dump (default: scan .env files in order)")
	dumpCmd.Flags().BoolVarP(&dumpBash, "bash", "b", false, "use bash-compliant quoting and escaping")
	dumpCmd.Flags().BoolVarP(&dumpMake, "make", "m", false, "output GNU Make assignments (VAR := value)")
	dumpCmd.Flags().BoolVarP(&dumpExport, "export", "e", false, "prefix lines with 'export' for shell sourcing")
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print env files with all values decrypted",
	Long: `Dumps decrypted variables to stdout for sourcing or piping.

Without --file, every env file resolved for the current directory is dumped
in precedence order with a comment header per file. --bash applies strict
shell quoting, --make emits GNU Make assignments, and --export prefixes
each line for 'source <(envage dump --export)' style use.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := loadManager()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load encryption key: %v", err)
		}

		if dumpFile != "" {
			vars, err := envfile.Load(dumpFile)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read %s: %v", dumpFile, err)
			}
			return dumpVars(manager, envfile.ToMap(vars))
		}

		first := true
		for _, path := range loader.ResolveEnvPaths(".") {
			fileVars, err := envfile.Load(path)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read %s: %v", path, err)
			}
			if len(fileVars) == 0 {
				continue
			}
			// Make output stays comment-free so it can be include'd directly.
			if !dumpMake {
				if !first {
					fmt.Println()
				}
				fmt.Printf("# %s\n", path)
			}
			if err := dumpVars(manager, envfile.ToMap(fileVars)); err != nil {
				return err
			}
			first = false
		}
		return nil
	},
}

func dumpVars(manager *secrets.Manager, vars map[string]string) error {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	prefix := ""
	if dumpExport {
		prefix = "export "
	}

	for _, key := range keys {
		value, err := manager.DecryptValue(vars[key])
		if err != nil {
			return Logger.ErrorfAndReturn("failed to decrypt %s: %v", key, err)
		}

		switch {
		case dumpMake:
			fmt.Printf("%s%s := %s\n", prefix, key, envfile.EscapeMake(value))
		case dumpBash || dumpExport:
			if envfile.NeedsBashQuoting(value) {
				fmt.Printf("%s%s=\"%s\"\n", prefix, key, envfile.EscapeBash(value))
			} else {
				fmt.Printf("%s%s=%s\n", prefix, key, value)
			}
		default:
			if envfile.NeedsSimpleQuoting(value) {
				fmt.Printf("%s=\"%s\"\n", key, envfile.EscapeSimple(value))
			} else {
				fmt.Printf("%s=%s\n", key, value)
			}
		}
	}
	return nil
}
