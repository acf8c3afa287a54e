package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ashvin-to/cli-todo/internal/logging"
)

const (
	// DefaultConfigPath is the default path to the config file, relative to the home directory.
	DefaultConfigPath = "~/.config/todo/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "TODO"
)

// Loader handles loading configuration from files, environment and flags.
// Precedence, highest first: bound flags, TODO_* variables, config file, defaults.
type Loader struct {
	v            *viper.Viper
	used         string
	allowMissing bool
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Registered defaults make every key visible to AutomaticEnv during Unmarshal.
	defaults := NewConfig()
	v.SetDefault("file", defaults.File)
	v.SetDefault("log.level", defaults.Log.Level.String())
	v.SetDefault("log.dir", defaults.Log.Dir)
	v.SetDefault("log.json", defaults.Log.JSON)
	v.SetDefault("log.max_files", defaults.Log.MaxFiles)
	v.SetDefault("log.max_age", defaults.Log.MaxAge.String())

	return &Loader{v: v}
}

// BindFlag makes a command-line flag override the given key when the flag is set.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag to bind for %q", key)
	}
	return l.v.BindPFlag(key, flag)
}

// AllowMissingFile makes a missing explicit config path load as defaults
// instead of failing, for callers that are about to create the file.
func (l *Loader) AllowMissingFile() {
	l.allowMissing = true
}

// ConfigFileUsed returns the config file read by the last LoadConfig, or ""
// when none was found.
func (l *Loader) ConfigFileUsed() string {
	return l.used
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables and flags, and validates the result.
// If path is empty, DefaultConfigPath is tried and may be absent; an explicit
// path must exist unless AllowMissingFile was called.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to resolve config path",
			Err:     err,
		}
	}
	path = expanded

	l.used = ""
	if _, err := os.Stat(path); err != nil {
		if (explicit && !l.allowMissing) || !errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{
				Path:    path,
				Message: "config file not found",
				Err:     err,
			}
		}
	} else {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "failed to read config file",
				Err:     err,
			}
		}
		l.used = path
	}

	// Start with defaults
	cfg := NewConfig()

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse configuration",
			Err:     err,
		}
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to resolve paths",
			Err:     err,
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// expandPaths replaces a leading ~ in path settings with the home directory.
func (c *Config) expandPaths() error {
	file, err := homedir.Expand(c.File)
	if err != nil {
		return fmt.Errorf("file: %w", err)
	}
	c.File = filepath.Clean(file)

	if c.Log.Dir != "" {
		dir, err := homedir.Expand(c.Log.Dir)
		if err != nil {
			return fmt.Errorf("log.dir: %w", err)
		}
		c.Log.Dir = filepath.Clean(dir)
	}
	return nil
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
// Struct fields are matched by their yaml tags, so one set of tags serves
// both loading and `todo config` output.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.TagName = "yaml"
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc creates a decode hook for our custom types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		switch to {
		case reflect.TypeOf(logging.Level(0)):
			return logging.ParseLevel(data.(string))
		}

		return data, nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
