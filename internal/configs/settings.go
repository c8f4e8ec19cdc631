package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Settings holds the user-level sealbox configuration. Every field has a
// default, so a missing config file is not an error.
type Settings struct {
	// KeysDirName is the directory name searched for when discovering
	// encrypted key documents.
	KeysDirName string `toml:"keys_dir_name"`

	// EncryptedPattern is the glob matched against files in the keys
	// directory.
	EncryptedPattern string `toml:"encrypted_pattern"`

	// EnvFileName is the file written by the configure command.
	EnvFileName string `toml:"env_file_name"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		KeysDirName:      "keys",
		EncryptedPattern: "*_encrypted.json",
		EnvFileName:      ".env",
	}
}

// ConfigPath returns the path of the user-level config file,
// <UserConfigDir>/sealbox/config.toml.
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "sealbox", "config.toml"), nil
}

// LoadSettings reads the user config file, filling in defaults for any
// field left unset. A missing file yields the defaults.
func LoadSettings() (Settings, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultSettings(), err
	}
	return LoadSettingsFrom(path)
}

// LoadSettingsFrom reads settings from an explicit path.
func LoadSettingsFrom(path string) (Settings, error) {
	settings := DefaultSettings()

	err := LoadTOML(path, &settings)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("failed to load settings from %s: %w", path, err)
	}

	applyDefaults(&settings)
	return settings, nil
}

func applyDefaults(settings *Settings) {
	defaults := DefaultSettings()
	if settings.KeysDirName == "" {
		settings.KeysDirName = defaults.KeysDirName
	}
	if settings.EncryptedPattern == "" {
		settings.EncryptedPattern = defaults.EncryptedPattern
	}
	if settings.EnvFileName == "" {
		settings.EnvFileName = defaults.EnvFileName
	}
}
