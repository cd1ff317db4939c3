package report

import (
	"fmt"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/options"
)

// maxSignificantDigits is the most digits a float64 uncertainty can carry.
const maxSignificantDigits = 15

// Config holds report layout settings.
type Config struct {
	// SignificantDigits rounds uncertainties to this many significant digits.
	// Zero prints raw values with %f.
	SignificantDigits int
	// ShowResiduals prints the residual list.
	ShowResiduals bool
	// ResidualPlaces is the number of decimals for residuals; negative uses %f.
	ResidualPlaces int
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

func defaultConfig() *Config {
	return &Config{
		ShowResiduals:  true,
		ResidualPlaces: -1,
	}
}

// WithSignificantDigits rounds each uncertainty to k significant digits.
func WithSignificantDigits(k int) Option {
	return options.New(func(cfg *Config) error {
		if k < 1 || k > maxSignificantDigits {
			return fmt.Errorf("%w: significant digits %d not in [1, %d]", errs.ErrInvalidOption, k, maxSignificantDigits)
		}
		cfg.SignificantDigits = k

		return nil
	})
}

// WithoutResiduals omits the residual list.
func WithoutResiduals() Option {
	return options.NoError(func(cfg *Config) {
		cfg.ShowResiduals = false
	})
}

// WithResidualPlaces prints residuals with p decimals.
func WithResidualPlaces(p int) Option {
	return options.New(func(cfg *Config) error {
		if p < 0 {
			return fmt.Errorf("%w: residual places %d", errs.ErrInvalidOption, p)
		}
		cfg.ResidualPlaces = p

		return nil
	})
}
