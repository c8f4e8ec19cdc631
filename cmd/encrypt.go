package cmd

import (
	"github.com/sealbox/sealbox/internal/document"
	"github.com/sealbox/sealbox/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	encryptPassword string
	encryptOutput   string

	encryptCmd = &cobra.Command{
		Use:   "encrypt <file>",
		Short: "Encrypts every top-level value of a JSON file with your password",
		Long: `Encrypts every top-level value of a flat JSON file into a self-contained
envelope string, writing the result next to the original as
<name>_encrypted.json. Keys and their order are preserved; only the
values become ciphertext.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting encrypt command")
			inputPath := args[0]

			// Resolve the password before the spinner owns the terminal.
			password, err := resolvePassword(encryptPassword, true)
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to get password: %v", err)
			}

			spinner, cleanup := startSpinner("Encrypting document values...", verbose)
			defer cleanup()

			Logger.Debugf("Loading document from %s", inputPath)
			doc, err := document.Load(inputPath)
			if err != nil {
				spinner.FinalMSG = color.RedString("✗") + " Failed to load " + ui.Path.Sprint(inputPath) + "\n" +
					color.RedString("Error: ") + err.Error()
				return nil
			}
			Logger.Debugf("Loaded %d entries", doc.Len())

			encrypted, err := document.EncryptDocument(doc, password)
			if err != nil {
				spinner.FinalMSG = color.RedString("✗") + " Failed to encrypt " + ui.Path.Sprint(inputPath) + "\n" +
					color.RedString("Error: ") + err.Error()
				return nil
			}

			outputPath := encryptOutput
			if outputPath == "" {
				outputPath = document.EncryptedName(inputPath)
			}

			Logger.Debugf("Writing encrypted document to %s", outputPath)
			if err := document.Save(outputPath, encrypted); err != nil {
				return Logger.ErrorfAndReturn("Failed to write encrypted document: %v", err)
			}

			Logger.Infof("Encrypted %d values", encrypted.Len())
			spinner.FinalMSG = color.GreenString("✓") + " Encrypted " + ui.Highlight.Sprintf("%d", encrypted.Len()) +
				" values into " + ui.Path.Sprint(outputPath)
			return nil
		},
	}
)

func init() {
	encryptCmd.Flags().StringVarP(&encryptPassword, "password", "p", "", "password to derive the encryption key from")
	encryptCmd.Flags().StringVarP(&encryptOutput, "output", "o", "", "output path (default <name>_encrypted.json)")
}

// resetEncryptCommandState resets the encrypt command flags for testing.
func resetEncryptCommandState() {
	encryptPassword = ""
	encryptOutput = ""
}
