package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/sealbox/sealbox/internal/ui"
	"github.com/sealbox/sealbox/internal/utils"

	"github.com/briandowns/spinner"
)

// PasswordEnvVar lets scripts and CI supply the password without a
// terminal prompt.
const PasswordEnvVar = "SEALBOX_PASSWORD"

// startSpinner creates and starts a spinner with the given message.
// Returns the spinner and a cleanup function that should be deferred.
//
// spinner.FinalMSG values do NOT need trailing newlines; the cleanup
// function calls ui.EnsureNewline() before printing.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

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

// resolvePassword returns the password for an operation: the --password
// flag if set, then the SEALBOX_PASSWORD environment variable, then an
// interactive prompt. When confirm is true the interactive path asks
// twice, since a typo while encrypting produces an envelope nobody can
// open.
func resolvePassword(flagValue string, confirm bool) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	if envPassword := os.Getenv(PasswordEnvVar); envPassword != "" {
		Logger.Debugf("Using password from %s", PasswordEnvVar)
		return envPassword, nil
	}

	if !utils.IsTerminal() {
		return "", fmt.Errorf("no password given: use --password, %s, or run interactively", PasswordEnvVar)
	}

	var password []byte
	var err error
	if confirm {
		password, err = utils.ReadPasswordWithConfirm("Password: ", "Confirm password: ")
	} else {
		password, err = utils.ReadPassword("Password: ")
	}
	if err != nil {
		return "", err
	}

	return string(password), nil
}
