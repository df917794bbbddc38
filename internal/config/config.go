// SPDX-License-Identifier: EPL-2.0

// Package config gathers the command line and environment settings.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/alexflint/go-arg"
)

// DefaultPath is opened when no wav file is given.
const DefaultPath = "wav/nice-work.wav"

// ErrHelp is returned by Load after printing the usage for -h/--help.
var ErrHelp = arg.ErrHelp

// Config holds all application configuration.
type Config struct {
	// Path is the wav file to open.
	Path string

	// Playback settings
	Loop           bool
	NotifyInterval time.Duration

	// Logging settings
	LogLevel  string
	LogFormat string
	// LogFile receives the log; empty discards it since the UI owns the
	// terminal.
	LogFile string
}

type args struct {
	Path string `arg:"positional" help:"wav file to open [wav/nice-work.wav]"`
}

func (args) Description() string {
	return "Play, trim and export a region of a PCM wav file.\n\n" +
		"Environment:\n" +
		"  WAVSNIP_LOOP             loop the region (default false)\n" +
		"  WAVSNIP_NOTIFY_INTERVAL  progress refresh interval (default 20ms)\n" +
		"  WAVSNIP_LOG_LEVEL        debug, info, warn or error (default info)\n" +
		"  WAVSNIP_LOG_FORMAT       text or json (default text)\n" +
		"  WAVSNIP_LOG_FILE         log destination (default none)\n"
}

// Load parses argv (without the program name) and the environment. Usage
// and parse errors are written to w.
func Load(argv []string, w io.Writer) (*Config, error) {
	var a args
	p, err := arg.NewParser(arg.Config{Program: "wavsnip"}, &a)
	if err != nil {
		return nil, fmt.Errorf("building parser: %w", err)
	}

	if err := p.Parse(argv); err != nil {
		if errors.Is(err, arg.ErrHelp) {
			p.WriteHelp(w)
			return nil, ErrHelp
		}
		p.WriteUsage(w)
		return nil, fmt.Errorf("parsing arguments: %w", err)
	}

	cfg := &Config{
		Path: a.Path,

		Loop:           getEnvBool("WAVSNIP_LOOP", false),
		NotifyInterval: getEnvDuration("WAVSNIP_NOTIFY_INTERVAL", 20*time.Millisecond),

		LogLevel:  getEnvString("WAVSNIP_LOG_LEVEL", "info"),
		LogFormat: getEnvString("WAVSNIP_LOG_FORMAT", "text"),
		LogFile:   os.Getenv("WAVSNIP_LOG_FILE"),
	}
	if cfg.Path == "" {
		cfg.Path = DefaultPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if c.Path == "" {
		return errors.New("wav path must not be empty")
	}

	if c.NotifyInterval < time.Millisecond {
		return errors.New("WAVSNIP_NOTIFY_INTERVAL must be at least 1ms")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return errors.New("WAVSNIP_LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[c.LogFormat] {
		return errors.New("WAVSNIP_LOG_FORMAT must be one of: text, json")
	}

	return nil
}

// getEnvString returns the environment variable value or a default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns the environment variable as a bool or a default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvDuration returns the environment variable as a duration or a default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
