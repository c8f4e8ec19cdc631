// Package logger provides leveled logging for sealbox CLI commands.
//
// Output is formatted with colored semantic prefixes from fatih/color.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only critical warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()       // Shown with --verbose
//	Logger.Debugf()      // Shown only with --debug
//	Logger.Warnf()       // Shown with --verbose
//	Logger.WarnfAlways() // Always shown (critical warnings)
//	Logger.Errorf()      // Always shown
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Encrypting %d entries", count)
//
// Commands create a logger in their PersistentPreRun and use it
// throughout their RunE handlers.
package logger
