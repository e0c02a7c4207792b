package model

import (
	"fmt"
	"math"
)

const (
	// DefaultNumRands is the default length of the random draw buffer. It is
	// prime so that cyclic reuse does not line up with common corpus sizes.
	DefaultNumRands = 131071
	// DefaultRefresh is the number of sweeps between progress log lines.
	DefaultRefresh             = 10
	DefaultTransformIterations = 20
	// NoBurnIn makes Transform average over every sweep.
	NoBurnIn = -1
)

// Config holds the hyperparameters of a GuidedLDA model. Zero values of the
// optional fields select their defaults.
type Config struct {
	Topics      int     // number of topics, K
	Alpha       float64 // document-topic Dirichlet prior
	Eta         float64 // topic-word Dirichlet prior
	Iterations  int     // Gibbs sweeps per Fit, 0 keeps the random initialization
	RandomState int64   // seed of the random draw buffer

	NumRands int // length of the draw buffer
	// Refresh is the number of sweeps between log lines; negative disables
	// logging.
	Refresh int
	// WarmStart continues from the previous assignments when Fit is called
	// again on the same matrix.
	WarmStart bool
	// Callback, if set, is invoked after initialization (iter 0) and after
	// every sweep with the current log-likelihood.
	Callback func(iter int, loglikelihood float64)

	TransformIterations int
	// TransformBurnIn sweeps are discarded before Transform starts averaging.
	// 0 selects half of TransformIterations; NoBurnIn (any negative value)
	// keeps every sweep.
	TransformBurnIn int
}

func (c *Config) setDefaults() {
	if c.NumRands == 0 {
		c.NumRands = DefaultNumRands
	}
	if c.Refresh == 0 {
		c.Refresh = DefaultRefresh
	}
	if c.TransformIterations == 0 {
		c.TransformIterations = DefaultTransformIterations
	}
	switch {
	case c.TransformBurnIn == 0:
		c.TransformBurnIn = c.TransformIterations / 2
	case c.TransformBurnIn < 0:
		c.TransformBurnIn = 0
	}
}

func (c *Config) validate() error {
	switch {
	case c.Topics <= 0:
		return fmt.Errorf("%w: topics = %d, must be positive", ErrInvalidInput, c.Topics)
	case c.Topics > math.MaxInt32:
		return fmt.Errorf("%w: topics = %d, too large", ErrInvalidInput, c.Topics)
	case !(c.Alpha > 0) || math.IsInf(c.Alpha, 0):
		return fmt.Errorf("%w: alpha = %v, must be positive", ErrInvalidInput, c.Alpha)
	case !(c.Eta > 0) || math.IsInf(c.Eta, 0):
		return fmt.Errorf("%w: eta = %v, must be positive", ErrInvalidInput, c.Eta)
	case c.Iterations < 0:
		return fmt.Errorf("%w: iterations = %d, must not be negative", ErrInvalidInput, c.Iterations)
	case c.NumRands < 0:
		return fmt.Errorf("%w: rands = %d, must not be negative", ErrInvalidInput, c.NumRands)
	case c.TransformIterations < 0:
		return fmt.Errorf("%w: transform iterations = %d, must not be negative",
			ErrInvalidInput, c.TransformIterations)
	case c.TransformBurnIn > 0 && c.TransformBurnIn >= c.TransformIterations:
		return fmt.Errorf("%w: transform burn-in = %d, must be in [0, %d)",
			ErrInvalidInput, c.TransformBurnIn, c.TransformIterations)
	}
	return nil
}
