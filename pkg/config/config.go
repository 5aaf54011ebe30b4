// Package config loads attributeEvents settings from defaults, an
// optional TOML file, and ATTREVENTS_* environment variables, in that
// order of precedence (later wins).
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/theodox/attributeEvents/pkg/errors"
	"github.com/theodox/attributeEvents/pkg/paths"
)

const envPrefix = "ATTREVENTS_"

// Config holds all user-tunable settings.
type Config struct {
	Storage StorageConfig `koanf:"storage" toml:"storage"`
	Logging LoggingConfig `koanf:"logging" toml:"logging"`
	Output  OutputConfig  `koanf:"output" toml:"output"`
}

// StorageConfig controls descriptor persistence.
type StorageConfig struct {
	// Key is the reserved per-object metadata key the descriptor list is
	// stored under.
	Key string `koanf:"key" toml:"key"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	Color bool `koanf:"color" toml:"color"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"storage.key":       "changeEvents",
		"logging.verbosity": 0,
		"output.color":      true,
	}
}

// Load reads configuration from the default location (see paths.ConfigFile).
func Load() (*Config, error) {
	return LoadFrom(paths.ConfigFile())
}

// LoadFrom reads configuration, merging defaults, the TOML file at path
// (if it exists), and environment overrides.
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
		}
	}

	// ATTREVENTS_STORAGE_KEY -> storage.key
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "configuration does not match expected shape")
	}
	return &cfg, nil
}

// WriteDefault renders the default configuration as TOML at path; used by
// the CLI's genconfig command. Existing files are not overwritten.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrConfigLoad, "config file %s already exists", path)
	}

	cfg := Config{
		Storage: StorageConfig{Key: "changeEvents"},
		Logging: LoggingConfig{Verbosity: 0},
		Output:  OutputConfig{Color: true},
	}
	raw, err := gotoml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "cannot render default config")
	}
	return os.WriteFile(path, raw, 0644)
}
