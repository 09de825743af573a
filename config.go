package signals

import "go.uber.org/zap"

type (
	// Config controls how Signals and Recorders are built. Derived Signals
	// inherit the Config of the operand they were produced from
	Config struct {
		Logger *zap.Logger
		Degree int
	}

	// Option adjusts a Config
	Option func(*Config)
)

// DefaultDegree is the B-tree degree used by the ordered store
const DefaultDegree = 32

// DefaultConfig returns a Config with a no-op logger and DefaultDegree
func DefaultConfig() Config {
	return Config{
		Logger: zap.NewNop(),
		Degree: DefaultDegree,
	}
}

// WithLogger sets the logger used to report dropped observations
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithDegree sets the B-tree degree of the ordered store. Values below 2
// fall back to DefaultDegree
func WithDegree(d int) Option {
	return func(c *Config) {
		c.Degree = d
	}
}

// WithConfig replaces the entire Config
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

func makeConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Degree < 2 {
		cfg.Degree = DefaultDegree
	}
	return &cfg
}
