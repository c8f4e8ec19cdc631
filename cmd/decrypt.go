package cmd

import (
	"errors"

	"github.com/sealbox/sealbox/internal/document"
	serrors "github.com/sealbox/sealbox/internal/errors"
	"github.com/sealbox/sealbox/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	decryptPassword string
	decryptOutput   string

	decryptCmd = &cobra.Command{
		Use:   "decrypt <file>",
		Short: "Decrypts a JSON file produced by `sealbox encrypt`",
		Long: `Decrypts every envelope value of an encrypted JSON file, restoring the
original values and their types. The result is written next to the input
with the _encrypted suffix removed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting decrypt command")
			inputPath := args[0]

			password, err := resolvePassword(decryptPassword, false)
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to get password: %v", err)
			}

			spinner, cleanup := startSpinner("Decrypting document values...", verbose)
			defer cleanup()

			Logger.Debugf("Loading document from %s", inputPath)
			doc, err := document.Load(inputPath)
			if err != nil {
				spinner.FinalMSG = color.RedString("✗") + " Failed to load " + ui.Path.Sprint(inputPath) + "\n" +
					color.RedString("Error: ") + err.Error()
				return nil
			}

			decrypted, err := document.DecryptDocument(doc, password)
			if err != nil {
				spinner.FinalMSG = decryptFailureMessage(inputPath, err)
				return nil
			}

			outputPath := decryptOutput
			if outputPath == "" {
				outputPath = document.DecryptedName(inputPath)
			}

			Logger.Debugf("Writing decrypted document to %s", outputPath)
			if err := document.Save(outputPath, decrypted); err != nil {
				return Logger.ErrorfAndReturn("Failed to write decrypted document: %v", err)
			}

			Logger.Infof("Decrypted %d values", decrypted.Len())
			spinner.FinalMSG = color.GreenString("✓") + " Decrypted " + ui.Highlight.Sprintf("%d", decrypted.Len()) +
				" values into " + ui.Path.Sprint(outputPath)
			return nil
		},
	}
)

// decryptFailureMessage maps the three error categories onto targeted
// diagnostics: only an authentication failure earns the password hint.
func decryptFailureMessage(inputPath string, err error) string {
	message := color.RedString("✗") + " Failed to decrypt " + ui.Path.Sprint(inputPath) + "\n" +
		color.RedString("Error: ") + err.Error()

	switch {
	case errors.Is(err, serrors.ErrAuthenticationFailed):
		message += "\n" + color.CyanString("→") + " Check your password"
	case errors.Is(err, serrors.ErrEnvelopeFormat):
		message += "\n" + color.CyanString("→") + " The value is not a valid encrypted envelope"
	case errors.Is(err, serrors.ErrValueNotString), errors.Is(err, serrors.ErrPlaintextNotJSON):
		message += "\n" + color.CyanString("→") + " Was this file produced by " + ui.Code.Sprint("sealbox encrypt") + "?"
	}

	return message
}

func init() {
	decryptCmd.Flags().StringVarP(&decryptPassword, "password", "p", "", "password the file was encrypted with")
	decryptCmd.Flags().StringVarP(&decryptOutput, "output", "o", "", "output path (default input without _encrypted suffix)")
}

// resetDecryptCommandState resets the decrypt command flags for testing.
func resetDecryptCommandState() {
	decryptPassword = ""
	decryptOutput = ""
}
