package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrz1836/spacer/internal/constants"
	"github.com/mrz1836/spacer/internal/errors"
)

// HomeDir returns the spacer home directory.
// If SPACER_HOME is set, it is used as-is; otherwise ~/.spacer.
func HomeDir() (string, error) {
	if home := os.Getenv(constants.EnvPrefix + "_HOME"); home != "" {
		return home, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.AppHome), nil
}

// DefaultConfigPath returns the full path to the default configuration file,
// typically ~/.spacer/config.yaml.
func DefaultConfigPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", fmt.Errorf("get config path: %w", err)
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}
