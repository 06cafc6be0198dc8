package vi

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a configuration value violates
	// its constraint. Validation happens before any state mutation.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNumericDivergence is returned when a gradient estimate or an
	// updated parameter becomes non-finite. The loop stops at the failing
	// iteration instead of propagating NaN through the remaining steps.
	ErrNumericDivergence = errors.New("numeric divergence")
)

// Config holds the minimizer settings.
type Config struct {
	// Iterations is the exact number of gradient steps to run. The loop
	// has no convergence check and no early exit.
	Iterations int
	// Draws is the number of standard-normal samples per iteration used
	// for the Monte Carlo gradient estimate. Must be positive; the config
	// layer defaults an omitted value to 1.
	Draws int
	// LearningRate is the initial step size eta.
	LearningRate float64
	// Decay shrinks the step size each iteration: eta *= (1 - Decay).
	// Must be in [0, 1).
	Decay float64
	// TraceEvery is the snapshot cadence. Zero selects Iterations/25
	// (at least 1). The final iteration is always recorded.
	TraceEvery int
}

func (c Config) validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidParameter, c.Iterations)
	}
	if c.Draws <= 0 {
		return fmt.Errorf("%w: draws must be positive, got %d", ErrInvalidParameter, c.Draws)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("%w: learning_rate must be positive, got %g", ErrInvalidParameter, c.LearningRate)
	}
	if c.Decay < 0 || c.Decay >= 1 {
		return fmt.Errorf("%w: decay must be in [0, 1), got %g", ErrInvalidParameter, c.Decay)
	}
	if c.TraceEvery < 0 {
		return fmt.Errorf("%w: trace_every cannot be negative, got %d", ErrInvalidParameter, c.TraceEvery)
	}
	return nil
}

// TracePoint is a periodic snapshot of the variational parameters.
type TracePoint struct {
	Iteration int
	Mu        float64
	LogSigma  float64
}

// Result contains the final parameters and the optimization trace.
type Result struct {
	Params     Params
	Trace      []TracePoint
	Iterations int
}

// Minimizer approximates argmin over (mu, log_sigma) of
// KL(q(zeta; mu, log_sigma) || p(zeta)) for a scalar target density p,
// using stochastic gradients of the KL divergence. Sampling from q is
// expressed as an affine transform of standard-normal draws
// (zeta = zeta_std*sigma + mu), so the variational parameters enter only
// through a deterministic map and the gradient estimate stays unbiased.
type Minimizer struct {
	score    ScoreFunc
	cfg      Config
	progress func(iteration int, p Params)
}

// NewMinimizer creates a minimizer for the given target score function.
// It fails fast with ErrInvalidParameter before any iteration can start.
func NewMinimizer(score ScoreFunc, cfg Config) (*Minimizer, error) {
	if score == nil {
		return nil, fmt.Errorf("%w: score function is required", ErrInvalidParameter)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.TraceEvery == 0 {
		cfg.TraceEvery = cfg.Iterations / 25
		if cfg.TraceEvery < 1 {
			cfg.TraceEvery = 1
		}
	}
	return &Minimizer{score: score, cfg: cfg}, nil
}

// WithProgressReporter sets a callback invoked at every trace snapshot.
func (m *Minimizer) WithProgressReporter(fn func(iteration int, p Params)) *Minimizer {
	m.progress = fn
	return m
}

// Config returns the effective configuration after defaulting.
func (m *Minimizer) Config() Config {
	return m.cfg
}

// Minimize runs exactly cfg.Iterations gradient steps from init, consuming
// cfg.Draws standard-normal samples from src per iteration. It returns the
// final parameters and the trace, or ErrNumericDivergence if a gradient or
// parameter becomes non-finite.
func (m *Minimizer) Minimize(src NormalSource, init Params) (*Result, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: random source is required", ErrInvalidParameter)
	}

	cur := init
	eta := m.cfg.LearningRate
	trace := make([]TracePoint, 0, m.cfg.Iterations/m.cfg.TraceEvery+1)

	for i := 1; i <= m.cfg.Iterations; i++ {
		// sigma changes every step, recompute from log_sigma
		sigma := cur.Sigma()

		gradMu := 0.0
		gradLogSigma := 0.0
		for d := 0; d < m.cfg.Draws; d++ {
			std := src.NormFloat64()
			zeta := std*sigma + cur.Mu
			s := m.score(zeta)
			gradMu += s
			gradLogSigma += s * std * sigma
		}
		n := float64(m.cfg.Draws)
		// d(KL)/d(mu) = -E[dlogp(zeta)]
		gradMu = -gradMu / n
		// d(KL)/d(log_sigma) = -E[dlogp(zeta)*zeta_std*sigma] - 1, where the
		// trailing -1 is the exact entropy-term derivative.
		gradLogSigma = -gradLogSigma/n - 1

		if !isFinite(gradMu) || !isFinite(gradLogSigma) {
			return nil, fmt.Errorf("%w: non-finite gradient at iteration %d", ErrNumericDivergence, i)
		}

		cur.Mu -= eta * gradMu
		cur.LogSigma -= eta * gradLogSigma
		eta *= 1 - m.cfg.Decay

		if !cur.IsFinite() {
			return nil, fmt.Errorf("%w: non-finite parameters at iteration %d", ErrNumericDivergence, i)
		}

		if i%m.cfg.TraceEvery == 0 || i == m.cfg.Iterations {
			trace = append(trace, TracePoint{Iteration: i, Mu: cur.Mu, LogSigma: cur.LogSigma})
			if m.progress != nil {
				m.progress(i, cur)
			}
		}
	}

	return &Result{Params: cur, Trace: trace, Iterations: m.cfg.Iterations}, nil
}
