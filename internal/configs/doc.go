// Package configs manages the user-level sealbox configuration stored as
// TOML under the platform config directory. All settings have defaults;
// the config file only exists to override them.
package configs
