// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/eventtype/lib/eventtype"
)

// EnvironmentVariable names the variable [Load] reads the config path from.
const EnvironmentVariable = "BUREAU_CONFIG"

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the top-level configuration file.
type Config struct {
	// Log configures the slog logger built by [Config.Logger].
	Log LogConfig `yaml:"log" json:"log"`

	// EventTypes declares event types that are not defined by Matrix
	// itself but should be classified on arrival.
	EventTypes []Declaration `yaml:"event_types" json:"event_types"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum level logged: debug, info, warn, error.
	// Default: info
	Level slog.Level `yaml:"level" json:"level"`

	// Format is "text" or "json".
	// Default: text
	Format string `yaml:"format" json:"format"`
}

// Declaration pairs an event type string with its class.
type Declaration struct {
	Type  string          `yaml:"type" json:"type"`
	Class eventtype.Class `yaml:"class" json:"class"`
}

// Default returns the configuration used before a file is loaded.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  slog.LevelInfo,
			Format: FormatText,
		},
	}
}

// Load loads configuration from the file named by BUREAU_CONFIG. It
// fails if the variable is not set.
func Load() (*Config, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path, choosing the decoder by file
// extension. Values absent from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch extension := filepath.Ext(path); extension {
	case ".yaml", ".yml":
		err = cfg.decodeYAML(data)
	case ".json", ".jsonc":
		err = cfg.decodeJSONC(data)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q (use .yaml, .yml, .json, or .jsonc)", path, extension)
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decodeYAML(data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) decodeJSONC(data []byte) error {
	stripped := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(stripped)) == 0 {
		return nil
	}
	decoder := json.NewDecoder(bytes.NewReader(stripped))
	decoder.DisallowUnknownFields()
	return decoder.Decode(c)
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
		errs = append(errs, fmt.Errorf("log.format must be %q or %q, got %q", FormatText, FormatJSON, c.Log.Format))
	}

	declared := make(map[string]eventtype.Class, len(c.EventTypes))
	for i, declaration := range c.EventTypes {
		if declaration.Type == "" {
			errs = append(errs, fmt.Errorf("event_types[%d]: type is required", i))
			continue
		}
		if declaration.Class == eventtype.Unknown {
			errs = append(errs, fmt.Errorf("event_types[%d] (%s): class must be set and not %q", i, declaration.Type, eventtype.Unknown))
			continue
		}
		if previous, ok := declared[declaration.Type]; ok && previous != declaration.Class {
			errs = append(errs, fmt.Errorf("event_types[%d] (%s): declared as both %s and %s", i, declaration.Type, previous, declaration.Class))
			continue
		}
		declared[declaration.Type] = declaration.Class
	}

	return errors.Join(errs...)
}

// Apply registers every declared event type in registry and returns
// the canonical values. Declarations that conflict with an existing
// classification are collected into the returned error (each wraps
// eventtype.ErrConflictingClass); the remaining declarations are still
// registered.
func (c *Config) Apply(registry *eventtype.Registry) ([]eventtype.Type, error) {
	var errs []error
	registered := make([]eventtype.Type, 0, len(c.EventTypes))
	for _, declaration := range c.EventTypes {
		canonical, err := registry.Register(declaration.Type, declaration.Class)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		registered = append(registered, canonical)
	}
	return registered, errors.Join(errs...)
}

// Logger builds a slog logger writing to w according to c.Log.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{Level: c.Log.Level}
	if c.Log.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, options))
	}
	return slog.New(slog.NewTextHandler(w, options))
}
