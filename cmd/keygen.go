package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kowhai-dev/envage/internal/secrets"
)

var (
	keygenOutput string
	keygenForce  bool
)

func init() {
	keygenCmd.Flags().StringVarP(&keygenOutput, "output", "o", "", "key file path (default: XDG state directory)")
	keygenCmd.Flags().BoolVarP(&keygenForce, "force", "f", false, "overwrite an existing key file")
}

var keygenCmd = &cobra.Command{
	Use:     "keygen",
	Aliases: []string{"gen"},
	Short:   "Generate a new encryption keypair",
	Long: `Generates a fresh age X25519 identity and saves it to the key file.

The printed public recipient (age1...) can be shared freely; the key file
holds the secret identity and is written readable only by you.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keygen command")
		spinner, cleanup := startSpinner("Generating keypair...", verbose)
		defer cleanup()

		manager, err := secrets.Generate()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to generate keypair: %v", err)
		}

		out := keygenOutput
		if out == "" {
			out = secrets.DefaultKeyPath()
		}
		Logger.Debugf("Key output path: %s", out)

		if _, err := os.Stat(out); err == nil && !keygenForce {
			finalMessage := color.RedString("✗") + " Key file already exists at " + color.YellowString(out) + "\n" +
				color.CyanString("→") + " Use " + color.YellowString("--force") + " to overwrite it"
			spinner.FinalMSG = finalMessage
			return nil
		}

		if err := manager.SaveKey(out); err != nil {
			return Logger.ErrorfAndReturn("failed to save key: %v", err)
		}
		Logger.Infof("Key saved to %s", out)

		finalMessage := color.GreenString("✓") + " Private key saved to: " + color.YellowString(out) + "\n" +
			"Public recipient: " + color.CyanString(manager.PublicKeyString()) + "\n" +
			color.CyanString("→") + " You can now encrypt values with " + color.YellowString("envage encrypt")
		spinner.FinalMSG = finalMessage
		return nil
	},
}
