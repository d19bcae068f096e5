// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Keysmith settings from defaults, YAML files, KEYSMITH_*
// environment variables and command-line flags (in increasing precedence),
// and writes a settings file back for the user to edit.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName    = "keysmith"
	envPrefix  = "keysmith"
	configName = "keysmith"
)

// Config is the persisted application configuration.
type Config struct {
	Language string         `mapstructure:"language" yaml:"language"`
	History  HistoryConfig  `mapstructure:"history" yaml:"history"`
	Generate GenerateConfig `mapstructure:"generate" yaml:"generate"`
}

// HistoryConfig bounds the in-memory history.
type HistoryConfig struct {
	Max int `mapstructure:"max" yaml:"max"`
}

// GenerateConfig holds the defaults a generate request starts from.
type GenerateConfig struct {
	Classes []string `mapstructure:"classes" yaml:"classes"`
	Length  int      `mapstructure:"length" yaml:"length"`
	Parts   int      `mapstructure:"parts" yaml:"parts"`
	Secure  bool     `mapstructure:"secure" yaml:"secure"`
}

// Defaults returns the built-in values, keyed the way viper addresses them.
func Defaults() map[string]any {
	return map[string]any{
		"language":         "en",
		"history.max":      20,
		"generate.classes": []string{"lower", "upper", "digit"},
		"generate.length":  4,
		"generate.parts":   4,
		"generate.secure":  false,
	}
}

// GetConfigPath returns the full path of the user or system configuration
// file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Keysmith")
		default:
			configDir = "/etc/keysmith"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, configName+".yaml"), nil
}

// LoadConfig resolves T from defaults, the first keysmith.yaml found (or the
// explicit file), the environment and cmd's flags. A missing file is reported
// as viper.ConfigFileNotFoundError together with the resolved value so callers
// can carry on with defaults.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	} else if isEmptyFile(v.ConfigFileUsed()) {
		// an empty candidate carries no settings; treat it as absent so a
		// default file gets written
		notFound = viper.ConfigFileNotFoundError{}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

func isEmptyFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Size() == 0
}

// WriteConfigFile marshals c to the user (or system) config path, creating
// the directory as needed.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo marshals c to path.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
