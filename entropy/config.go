package entropy

import "errors"

// Errors returned by Config.Validate.
var (
	ErrEmbedding = errors.New("entropy: embedding dimension must be >= 1")
	ErrTolerance = errors.New("entropy: tolerance ratio must be in (0, 1)")
	ErrScale     = errors.New("entropy: max scale must be >= 1")
	ErrMinPoints = errors.New("entropy: min points must be >= 1")
)

// Config holds the multi-scale entropy parameters. The defaults follow the
// reference methodology for movement dominance analysis (m=2, r=0.15,
// six scales, 500 points per scale).
type Config struct {
	M         int     // embedding dimension
	R         float64 // tolerance as a fraction of the standard deviation
	MaxScale  int     // coarsest scale attempted
	MinPoints int     // minimum coarse-grained length per scale
}

// Option mutates a Config.
type Option func(*Config)

// Default returns the reference parameter set.
func Default() Config {
	return Config{
		M:         2,
		R:         0.15,
		MaxScale:  6,
		MinPoints: 500,
	}
}

// WithM sets the embedding dimension.
func WithM(m int) Option {
	return func(cfg *Config) { cfg.M = m }
}

// WithR sets the tolerance ratio.
func WithR(r float64) Option {
	return func(cfg *Config) { cfg.R = r }
}

// WithMaxScale sets the coarsest scale attempted.
func WithMaxScale(scale int) Option {
	return func(cfg *Config) { cfg.MaxScale = scale }
}

// WithMinPoints sets the minimum coarse-grained series length per scale.
func WithMinPoints(n int) Option {
	return func(cfg *Config) { cfg.MinPoints = n }
}

// Apply applies zero or more options to the default config.
func Apply(opts ...Option) Config {
	cfg := Default()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports the first invalid parameter, if any.
func (cfg Config) Validate() error {
	if cfg.M < 1 {
		return ErrEmbedding
	}
	if cfg.R <= 0 || cfg.R >= 1 {
		return ErrTolerance
	}
	if cfg.MaxScale < 1 {
		return ErrScale
	}
	if cfg.MinPoints < 1 {
		return ErrMinPoints
	}
	return nil
}
