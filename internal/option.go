package internal

import "io"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	out    io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithOutput redirects validation reports, which go to stdout by default.
func WithOutput(out io.Writer) Option {
	return func(a *application) {
		a.out = out
	}
}
