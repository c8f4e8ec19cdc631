package cmd

import (
	"fmt"

	logger "github.com/sealbox/sealbox/internal/logging"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "sealbox",
		Short: "Sealbox - password-based encryption of JSON configuration values",
		Long: `Sealbox encrypts the top-level values of a flat JSON file with a password,
so a configuration file can live in a repository with its keys visible and
its values confidential.

Each value becomes a self-contained envelope: AES-256-GCM with a key
derived from your password via PBKDF2-SHA256. Decryption restores the
original file, values and key order intact.

Available Commands:
  encrypt    Encrypt every value of a JSON file
  decrypt    Decrypt a previously encrypted JSON file
  configure  Decrypt a shared key document into a local .env file

Run 'sealbox help <command>' for more details on a specific command.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing sealbox with verbose=%t, debug=%t", verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewColorFigure("sealbox", "alligator2", "green", true)
			banner.Print()
			fmt.Println()
			fmt.Println("Run 'sealbox --help' to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(configureCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetEncryptCommandState()
	resetDecryptCommandState()
	resetConfigureCommandState()
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
