package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/kowhai-dev/envage/internal/configs"
	logger "github.com/kowhai-dev/envage/internal/logging"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// settings holds the loaded user settings; flag defaults fall back to it.
	settings = &configs.UserSettings{Defaults: configs.DefaultsConfig{EnvFile: configs.DefaultEnvFile}}

	RootCmd = &cobra.Command{
		Use:   "envage",
		Short: "Dotenv with age encryption",
		Long: `Envage keeps secrets inside .env files encrypted at rest and decrypts
them transparently when loaded.

Sensitive values are wrapped as ENC[AGE:b64:...] envelopes under a single
age X25519 keypair, so env files can be committed to version control while
plaintext configuration stays readable next to them.

Run 'envage help <command>' for more details on a specific command.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing envage with verbose=%t, debug=%t", verbose, debug)

			loaded, err := configs.LoadUserSettings()
			if err != nil {
				Logger.WarnfAlways("Ignoring unreadable settings file: %v", err)
				return
			}
			settings = loaded

			// The config file is a convenience alternative to AGE_KEY_NAME;
			// the environment variable wins when both are set.
			if settings.Defaults.KeyName != "" && os.Getenv("AGE_KEY_NAME") == "" {
				Logger.Debugf("Using key name %s from settings", settings.Defaults.KeyName)
				os.Setenv("AGE_KEY_NAME", settings.Defaults.KeyName)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewColorFigure("envage", "alligator2", "green", true)
			banner.Print()
			fmt.Println("Run 'envage --help' to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(keygenCmd)
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(setCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(dumpCmd)
}

// defaultEnvFile returns the file a command should operate on when the user
// gave no --file flag.
func defaultEnvFile() string {
	if settings.Defaults.EnvFile != "" {
		return settings.Defaults.EnvFile
	}
	return configs.DefaultEnvFile
}
