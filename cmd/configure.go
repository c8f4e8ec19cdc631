package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sealbox/sealbox/internal/configs"
	"github.com/sealbox/sealbox/internal/document"
	serrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/keys"
	"github.com/sealbox/sealbox/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	configurePassword  string
	configureDest      string
	configureOverwrite bool

	configureCmd = &cobra.Command{
		Use:   "configure",
		Short: "Decrypts a shared key document into a local .env file",
		Long: `One-time setup for working from a repository with shared encrypted keys.

Walks up from the current directory to find the keys directory, picks one
encrypted document at random, decrypts it with your password, and flattens
it into a .env file (nested objects become PARENT__CHILD entries). If the
.env file already exists nothing is touched unless --overwrite is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting configure command")

			settings, err := configs.LoadSettings()
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to load settings: %v", err)
			}
			Logger.Debugf("Settings: keys dir %q, pattern %q, env file %q",
				settings.KeysDirName, settings.EncryptedPattern, settings.EnvFileName)

			envPath := filepath.Join(configureDest, settings.EnvFileName)
			if !configureOverwrite {
				if _, err := os.Stat(envPath); err == nil {
					Logger.Infof("Env file already present at %s", envPath)
					return nil // already configured, nothing to do
				}
			}

			password, err := resolvePassword(configurePassword, false)
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to get password: %v", err)
			}

			spinner, cleanup := startSpinner("Configuring local environment...", verbose)
			defer cleanup()

			wd, err := os.Getwd()
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to get working directory: %v", err)
			}

			Logger.Debugf("Searching for %s directory from %s", settings.KeysDirName, wd)
			keysDir, err := keys.FindKeysDirectory(wd, settings.KeysDirName, settings.EncryptedPattern)
			if err != nil {
				spinner.FinalMSG = color.RedString("✗") + " Could not find a " +
					ui.Path.Sprint(settings.KeysDirName) + " directory with encrypted documents\n" +
					color.RedString("Error: ") + err.Error()
				return nil
			}
			Logger.Infof("Found keys directory: %s", keysDir)

			selected, err := keys.SelectEncryptedFile(keysDir, settings.EncryptedPattern)
			if err != nil {
				spinner.FinalMSG = color.RedString("✗") + " No encrypted documents in " + ui.Path.Sprint(keysDir) + "\n" +
					color.RedString("Error: ") + err.Error()
				return nil
			}
			Logger.Infof("Selected key document: %s", filepath.Base(selected))

			doc, err := document.Load(selected)
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to load %s: %v", selected, err)
			}

			decrypted, err := document.DecryptDocument(doc, password)
			if err != nil {
				spinner.FinalMSG = decryptFailureMessage(selected, err)
				return nil
			}

			lines, err := keys.FlattenToEnv(decrypted)
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to flatten %s: %v", selected, err)
			}

			if err := keys.WriteEnvFile(envPath, lines, configureOverwrite); err != nil {
				if errors.Is(err, serrors.ErrEnvFileExists) {
					spinner.FinalMSG = color.RedString("✗") + " " + ui.Path.Sprint(envPath) + " already exists\n" +
						color.CyanString("→") + " Run with " + ui.Code.Sprint("--overwrite") + " to replace it"
					return nil
				}
				return Logger.ErrorfAndReturn("Failed to write env file: %v", err)
			}

			Logger.Infof("Wrote %d entries to %s", len(lines), envPath)
			spinner.FinalMSG = color.GreenString("✓") + " Configured " + ui.Path.Sprint(envPath) +
				" from " + ui.Highlight.Sprint(filepath.Base(selected))
			return nil
		},
	}
)

func init() {
	configureCmd.Flags().StringVarP(&configurePassword, "password", "p", "", "password the key documents were encrypted with")
	configureCmd.Flags().StringVar(&configureDest, "dest", ".", "directory the env file is written to")
	configureCmd.Flags().BoolVar(&configureOverwrite, "overwrite", false, "replace an existing env file")
}

// resetConfigureCommandState resets the configure command flags for testing.
func resetConfigureCommandState() {
	configurePassword = ""
	configureDest = "."
	configureOverwrite = false
}
