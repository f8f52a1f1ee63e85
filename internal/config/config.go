// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads quran-reader settings from a YAML config file, a
// .env file, QURAN_READER_* environment variables, and bound flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pdiddy/quran-reader/pkg/types"
)

const (
	// EnvPrefix is prepended to every environment variable name, e.g.
	// QURAN_READER_API_BASE_URL.
	EnvPrefix = "QURAN_READER"

	configName = "quran-reader"
)

// New returns a viper instance with defaults and environment lookup set up.
// Callers bind flags to it before calling Load.
func New(version string) *viper.Viper {
	v := viper.New()

	v.SetDefault("env", "local")
	v.SetDefault("api.base_url", types.DefaultBaseURL)
	v.SetDefault("api.timeout", types.DefaultTimeout)
	v.SetDefault("api.user_agent", "quran-reader/"+version)
	v.SetDefault("display.verses", types.DefaultVerseLimit)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads .env (when present) and the config file, then unmarshals the
// merged settings. With cfgFile empty it looks for quran-reader.yaml in the
// working directory and in ~/.config/quran-reader/; a missing file is not
// an error. It returns the config file used, or "" when none was read.
func Load(v *viper.Viper, cfgFile string) (types.Config, string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return types.Config{}, "", fmt.Errorf("loading .env: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, "", fmt.Errorf("reading config file: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, "", fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return types.Config{}, "", err
	}
	return cfg, used, nil
}

// Validate rejects settings the client cannot run with.
func Validate(cfg types.Config) error {
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", cfg.API.Timeout)
	}
	if cfg.Display.Verses <= 0 {
		return fmt.Errorf("display.verses must be positive, got %d", cfg.Display.Verses)
	}
	return nil
}
