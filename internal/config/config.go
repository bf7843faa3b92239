package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/SzymonSkrzypczyk/calc-wizard/internal/storage"
	"github.com/SzymonSkrzypczyk/calc-wizard/internal/validate"
)

// Config is the application configuration. Precedence, lowest first:
// struct defaults, the YAML file, CALC_* environment variables.
type Config struct {
	// File is the YAML file the config was read from, if any.
	File    string        `yaml:"-"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
}

// StorageConfig selects where history is persisted.
type StorageConfig struct {
	// Backend is one of file, sqlite, memory.
	Backend string `yaml:"backend" default:"file" env:"CALC_STORAGE_BACKEND" validate:"oneof=file sqlite memory"`
	// Dir defaults to ~/.calc-wizard.
	Dir        string `yaml:"dir" env:"CALC_STORAGE_DIR"`
	SQLiteFile string `yaml:"sqlite-file" default:"calc-wizard.db" env:"CALC_SQLITE_FILE"`
	Key        string `yaml:"key" default:"@calculator_history" env:"CALC_HISTORY_KEY" validate:"required"`
}

type LogConfig struct {
	Level string `yaml:"level" default:"info" env:"CALC_LOG_LEVEL" validate:"oneof=debug info warn error"`
	// File defaults to calc-wizard.log in the temp directory.
	File string `yaml:"file" env:"CALC_LOG_FILE"`
}

type DisplayConfig struct {
	DateLayout string `yaml:"date-layout" default:"1/2/2006, 3:04:05 PM" env:"CALC_DATE_LAYOUT" validate:"required"`
	Theme      string `yaml:"theme" default:"dark" env:"CALC_THEME" validate:"oneof=dark light"`
}

// DefaultPath returns ~/.calc-wizard/config.yaml.
func DefaultPath() string {
	dir, err := storage.DefaultDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load builds the configuration. An empty path falls back to DefaultPath
// when that file exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "apply config defaults")
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %s", path)
			}
			cfg.File = path
		case os.IsNotExist(err) && !explicit:
		default:
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded settings against their validate tags.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// StorageOptions converts the storage section for storage.Open.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:    c.Storage.Backend,
		Dir:        c.Storage.Dir,
		SQLiteFile: c.Storage.SQLiteFile,
	}
}
