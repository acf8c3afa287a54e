// Package config provides configuration data structures for todo.
package config

import (
	"fmt"
	"io"
	"time"

	"github.com/ashvin-to/cli-todo/internal/logging"
)

const (
	// DefaultFile is the default task file, relative to the home directory.
	DefaultFile = "~/todo.txt"
	// DefaultMaxLogFiles is the default number of log files kept in log.dir.
	DefaultMaxLogFiles = 10
	// DefaultMaxLogAge is the default age after which log files are removed.
	DefaultMaxLogAge = 7 * 24 * time.Hour
)

// Config represents the complete todo configuration.
type Config struct {
	// File is the path of the task file.
	File string    `yaml:"file" json:"file"`
	Log  LogConfig `yaml:"log"  json:"log"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is the minimum level written (default: warn).
	Level logging.Level `yaml:"level" json:"level"`
	// Dir enables file logging into this directory when non-empty.
	Dir string `yaml:"dir" json:"dir"`
	// JSON switches log records to JSON.
	JSON bool `yaml:"json" json:"json"`
	// MaxFiles is the number of log files kept in Dir (default: 10).
	MaxFiles int `yaml:"max_files" json:"max_files"`
	// MaxAge is the age after which log files in Dir are removed (default: 168h).
	MaxAge time.Duration `yaml:"max_age" json:"max_age"`
}

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		File: DefaultFile,
		Log: LogConfig{
			Level:    logging.LevelWarn,
			MaxFiles: DefaultMaxLogFiles,
			MaxAge:   DefaultMaxLogAge,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.File == "" {
		c.File = defaults.File
	}
	if c.Log.MaxFiles == 0 {
		c.Log.MaxFiles = defaults.Log.MaxFiles
	}
	if c.Log.MaxAge == 0 {
		c.Log.MaxAge = defaults.Log.MaxAge
	}
}

// Logging returns the logger configuration, with console records going to w.
func (c *Config) Logging(w io.Writer) *logging.Config {
	return &logging.Config{
		Level:       c.Log.Level,
		Console:     w,
		LogDir:      c.Log.Dir,
		MaxLogFiles: c.Log.MaxFiles,
		MaxLogAge:   c.Log.MaxAge,
		JSONFormat:  c.Log.JSON,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.File == "" {
		errs = append(errs, &ValidationError{Field: "file", Message: "must not be empty"})
	}

	switch c.Log.Level {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError:
		// valid
	default:
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be 'debug', 'info', 'warn', or 'error' (got %d)", c.Log.Level),
		})
	}

	if c.Log.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_files", Message: "must be non-negative"})
	}
	if c.Log.MaxAge < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_age", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
