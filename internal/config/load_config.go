package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"xcode-sdk/internal/logger"
)

// Path returns the default config file location, e.g.
// ~/Library/Application Support/xcode-sdk/config.yaml on macOS.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "xcode-sdk", "config.yaml")
	}
	return filepath.Join(dir, "xcode-sdk", "config.yaml")
}

// LoadConfig reads the YAML config at configFile. A missing file is not an
// error and yields Default(); unreadable or malformed files are.
// Keys left out of the file keep their default values.
func LoadConfig(configFile string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("[DEBUG] No config at %s, using defaults\n", configFile)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", configFile, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to unmarshal %s: %w", configFile, err)
	}

	// An explicit empty sdk_command would run nothing; fall back to the default.
	if cfg.SDKCommand == "" {
		cfg.SDKCommand = DefaultSDKCommand
	}
	logger.Debug("[DEBUG] Loaded config from %s\n", configFile)
	return cfg, nil
}
