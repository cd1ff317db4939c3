package fit

import (
	"fmt"
	"math"
	"runtime"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/options"
)

// DefaultDegeneracyTolerance is the default relative threshold below which
// the normal-equations determinant is treated as zero.
const DefaultDegeneracyTolerance = 1e-12

// Config holds fit configuration.
type Config struct {
	// DegeneracyTolerance is the relative threshold eps for the determinant
	// test |delta| <= eps·s0·s2. Since 0 <= delta <= s0·s2, the test does not
	// depend on the units of x or dy.
	DegeneracyTolerance float64
	// Concurrency bounds the number of parallel fits in FitEach.
	Concurrency int
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

func defaultConfig() *Config {
	return &Config{
		DegeneracyTolerance: DefaultDegeneracyTolerance,
		Concurrency:         runtime.GOMAXPROCS(0),
	}
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithDegeneracyTolerance sets the relative determinant threshold.
// eps must be finite and non-negative; zero rejects only an exactly singular design.
func WithDegeneracyTolerance(eps float64) Option {
	return options.New(func(cfg *Config) error {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			return fmt.Errorf("%w: degeneracy tolerance %g", errs.ErrInvalidOption, eps)
		}
		cfg.DegeneracyTolerance = eps

		return nil
	})
}

// WithConcurrency sets the maximum number of sample sets FitEach fits in parallel.
func WithConcurrency(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: concurrency %d", errs.ErrInvalidOption, n)
		}
		cfg.Concurrency = n

		return nil
	})
}
