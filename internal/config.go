package internal

import (
	"log/slog"
	"runtime"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App        ApplicationConfig `yaml:"app"`
	Library    LibraryConfig     `yaml:"library"`
	Validation ValidationConfig  `yaml:"validate"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Library.Validate(); err != nil {
		return err
	}
	return c.Validation.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// LibraryConfig holds the path to the recipe library directory.
type LibraryConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the library configuration.
func (c *LibraryConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// ValidationConfig holds validation behavior settings.
//
// WarningsAsErrors promotes style warnings to failures, the config-file
// counterpart of the --strict flag. Workers caps how many files are
// validated concurrently in a batch.
type ValidationConfig struct {
	WarningsAsErrors bool `yaml:"warnings_as_errors"`
	Workers          int  `yaml:"workers"`
}

// Validate validates the validation settings.
func (c *ValidationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Workers, validation.Required, validation.Min(1), validation.Max(256)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Library: LibraryConfig{
			Path: "./recipes",
		},
		Validation: ValidationConfig{
			WarningsAsErrors: false,
			Workers:          runtime.GOMAXPROCS(0),
		},
	}
}
