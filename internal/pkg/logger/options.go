package logger

// Option modifies a logger configuration
type Option func(*Config)

func WithLevel(level string) Option {
	return func(c *Config) {
		c.Level = level
	}
}

// WithFormat sets the log format (json or console)
func WithFormat(format string) Option {
	return func(c *Config) {
		c.Format = format
	}
}

// WithOutput sets the log output (console, file, or both)
func WithOutput(output string) Option {
	return func(c *Config) {
		c.Output = output
	}
}

// NewWithOptions creates a logger from the default config plus options
func NewWithOptions(opts ...Option) (*Logger, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return New(cfg)
}

// Development returns a debug-level console logger for the scrape CLI
func Development() (*Logger, error) {
	return NewWithOptions(
		WithLevel("debug"),
		WithFormat("console"),
		WithOutput("console"),
	)
}
