// Package config loads and persists the flx configuration file and derives
// the template-family discriminants the catalog renders with.
package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// FileName is the persisted configuration file, looked up in the working
// directory. Other tooling depends on this name; do not move it.
const FileName = "flx.config.json"

// StateManager selects the presentation-layer template family. Exactly one
// is active per render.
type StateManager string

const (
	// GetX is the reactive family: a controller with observable fields,
	// wired through a binding.
	GetX StateManager = "getx"
	// Bloc is the event-driven family: discrete events mapped to emitted
	// states by a bloc.
	Bloc StateManager = "bloc"
)

// ModelStyle selects the entity/model template body. Derived once per run
// from the two boolean flags; catalog functions never re-apply the
// precedence rule themselves.
type ModelStyle int

const (
	// Freezed emits immutable models with codegen annotations.
	Freezed ModelStyle = iota
	// Equatable emits value-equality models extending Equatable.
	Equatable
	// Plain emits bare classes with no equality helper.
	Plain
)

// Config is the immutable per-invocation configuration. It is constructed
// once by Load (or Default) and never mutated during a run.
type Config struct {
	UseImmutableModels  bool         `json:"useImmutableModels" mapstructure:"useImmutableModels"`
	UseValueEquality    bool         `json:"useValueEquality" mapstructure:"useValueEquality"`
	DefaultStateManager StateManager `json:"defaultStateManager" mapstructure:"defaultStateManager"`
	Author              string       `json:"author" mapstructure:"author"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		UseImmutableModels:  true,
		UseValueEquality:    false,
		DefaultStateManager: GetX,
		Author:              "Developer",
	}
}

// ModelStyle derives the model-family discriminant. The immutable family
// takes precedence over value equality.
func (c Config) ModelStyle() ModelStyle {
	switch {
	case c.UseImmutableModels:
		return Freezed
	case c.UseValueEquality:
		return Equatable
	default:
		return Plain
	}
}

// StateManager returns the presentation-family discriminant, falling back
// to the reactive family for an empty or unknown value.
func (c Config) StateManager() StateManager {
	if c.DefaultStateManager == Bloc {
		return Bloc
	}
	return GetX
}

// Load reads FileName from dir on the provided filesystem. A missing file
// yields Default(); missing keys fall back to their defaults; malformed
// JSON is an error surfaced before any generation runs.
func Load(fs afero.Fs, dir string) (Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(filepath.Join(dir, FileName))
	v.SetConfigType("json")

	def := Default()
	v.SetDefault("useImmutableModels", def.UseImmutableModels)
	v.SetDefault("useValueEquality", def.UseValueEquality)
	v.SetDefault("defaultStateManager", string(def.DefaultStateManager))
	v.SetDefault("author", def.Author)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return def, nil
		}
		if exists, _ := afero.Exists(fs, filepath.Join(dir, FileName)); !exists {
			return def, nil
		}
		return Config{}, fmt.Errorf("read %s: %w", FileName, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", FileName, err)
	}
	return cfg, nil
}

// Save writes the configuration to FileName in dir with stable formatting.
func Save(fs afero.Fs, dir string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	path := filepath.Join(dir, FileName)
	if err := afero.WriteFile(fs, path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Exists reports whether a configuration file is already present in dir.
func Exists(fs afero.Fs, dir string) bool {
	ok, _ := afero.Exists(fs, filepath.Join(dir, FileName))
	return ok
}
