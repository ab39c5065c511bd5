package core

import "go.uber.org/zap"

// Config holds settings shared by stateful components.
type Config struct {
	Epsilon float64
	Logger  *zap.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default tolerance and a no-op logger.
func DefaultConfig() Config {
	return Config{
		Epsilon: DefaultEpsilon,
		Logger:  zap.NewNop(),
	}
}

// WithEpsilon sets the comparison tolerance.
func WithEpsilon(eps float64) Option {
	return func(cfg *Config) {
		if eps > 0 {
			cfg.Epsilon = eps
		}
	}
}

// WithLogger sets the logger used to report clamped or ignored input.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
