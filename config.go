/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package inmemstore

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/suparena/inmemstore/keygen"
)

// Config holds the recognized store configuration.
type Config struct {
	// ResetGeneratorsOnClear makes Clear reset every key generator after it has
	// emptied the identity map. Off by default: clearing rows does not restart
	// key numbering.
	ResetGeneratorsOnClear bool `yaml:"resetGeneratorsOnClear" json:"resetGeneratorsOnClear"`
}

// ConfigOverrides holds only the configuration keys a document sets
// explicitly. Applied with WithConfigOverrides, it leaves every other key of
// the store configuration as it was.
type ConfigOverrides struct {
	ResetGeneratorsOnClear *bool `yaml:"resetGeneratorsOnClear" json:"resetGeneratorsOnClear,omitempty"`
}

// LoadConfig decodes a YAML configuration document. An empty document yields
// the default Config.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	if err := decodeYAML(r, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML configuration file from path.
func LoadConfigFile(path string) (Config, error) {
	var cfg Config
	if err := decodeYAMLFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigOverrides decodes a YAML configuration document, recording only
// the keys it sets.
func LoadConfigOverrides(r io.Reader) (ConfigOverrides, error) {
	var o ConfigOverrides
	if err := decodeYAML(r, &o); err != nil {
		return ConfigOverrides{}, err
	}
	return o, nil
}

// LoadConfigOverridesFile reads a YAML configuration file as overrides.
func LoadConfigOverridesFile(path string) (ConfigOverrides, error) {
	var o ConfigOverrides
	if err := decodeYAMLFile(path, &o); err != nil {
		return ConfigOverrides{}, err
	}
	return o, nil
}

func decodeYAML(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

func decodeYAMLFile(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	return decodeYAML(f, out)
}

type options struct {
	name       string
	config     Config
	logger     *zap.Logger
	generators *keygen.Cache
}

// Option configures a Store.
type Option func(*options)

// WithConfig replaces the store configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithResetGeneratorsOnClear sets Config.ResetGeneratorsOnClear.
func WithResetGeneratorsOnClear(reset bool) Option {
	return func(o *options) {
		o.config.ResetGeneratorsOnClear = reset
	}
}

// WithConfigOverrides applies the keys set in o over the configuration built
// by the preceding options.
func WithConfigOverrides(o ConfigOverrides) Option {
	return func(opts *options) {
		if o.ResetGeneratorsOnClear != nil {
			opts.config.ResetGeneratorsOnClear = *o.ResetGeneratorsOnClear
		}
	}
}

// WithLogger sets the logger. Defaults to zap.L().
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithKeyGenerators injects the generator cache the store draws keys from.
// Stores sharing a cache share key sequences, so a reset triggered by one
// store's Clear is not checked against the other stores' tracked records.
func WithKeyGenerators(cache *keygen.Cache) Option {
	return func(o *options) {
		o.generators = cache
	}
}

// WithName sets the store name used in logs. New defaults it to a random UUID.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
