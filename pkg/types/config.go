// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Defaults applied when neither the config file, the environment, nor a
// flag sets a value.
const (
	DefaultBaseURL    = "https://equran.id/api/v2"
	DefaultTimeout    = 10 * time.Second
	DefaultVerseLimit = 5
)

// APIConfig holds settings for the eQuran.id client.
type APIConfig struct {
	// BaseURL is the API root without a trailing slash.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Timeout bounds each request, including reading the body.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with each request.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	// Verses is the default number of verses shown by chapter detail.
	Verses int `json:"verses" yaml:"verses" mapstructure:"verses"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// Config groups all settings for a quran-reader run.
type Config struct {
	// Env selects the logger profile; "production" emits JSON logs.
	Env     string        `json:"env" yaml:"env" mapstructure:"env"`
	API     APIConfig     `json:"api" yaml:"api" mapstructure:"api"`
	Display DisplayConfig `json:"display" yaml:"display" mapstructure:"display"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}
