package hub

import "go.uber.org/zap"

// config holds hub construction settings.
type config struct {
	logger *zap.Logger
}

// defaultConfig returns the default hub configuration.
func defaultConfig() config {
	return config{
		logger: zap.NewNop(),
	}
}

// Option configures a Hub.
type Option func(*config)

// WithLogger sets the structured logger used for attach and emission
// tracing. The default discards all output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
