package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/kowhai-dev/envage/internal/secrets"
	"github.com/kowhai-dev/envage/internal/ui"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines: the cleanup
// function calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// loadManager loads the user's identity from the standard locations and
// logs where key discovery ended up.
func loadManager() (*secrets.Manager, error) {
	Logger.Debugf("Loading encryption key")
	manager, err := secrets.LoadManager()
	if err != nil {
		return nil, err
	}
	Logger.Infof("Loaded key with recipient %s", manager.PublicKeyString())
	return manager, nil
}

// keyHint is the final message shown when no key could be loaded.
func keyHint(err error) string {
	return color.RedString("✗") + " Failed to load your encryption key\n" +
		color.RedString("Error: ") + err.Error() + "\n" +
		color.CyanString("→") + " Run " + color.YellowString("envage keygen") + " to create one"
}
