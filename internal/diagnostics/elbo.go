// Package diagnostics provides Monte Carlo and closed-form quality measures
// for a fitted variational approximation, plus trace-based convergence
// detection. Nothing here feeds back into the optimizer loop.
package diagnostics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/vbinfer/advi-core/internal/target"
	"github.com/vbinfer/advi-core/internal/vi"
)

// EstimateELBO estimates the evidence lower bound of the approximation
// q = N(p.Mu, p.Sigma()^2) against the target density by Monte Carlo:
// mean of log p(zeta) over draws from q, plus the closed-form Gaussian
// entropy. The target's normalizing constant shifts the value but not its
// maximizer.
func EstimateELBO(d target.Density, p vi.Params, src vi.NormalSource, draws int) (float64, error) {
	if d == nil {
		return 0, fmt.Errorf("target density is required")
	}
	if src == nil {
		return 0, fmt.Errorf("random source is required")
	}
	if draws <= 0 {
		return 0, fmt.Errorf("draws must be positive, got %d", draws)
	}

	sigma := p.Sigma()
	logps := make([]float64, draws)
	for i := range logps {
		zeta := src.NormFloat64()*sigma + p.Mu
		logps[i] = d.LogProb(zeta)
	}

	entropy := p.LogSigma + 0.5*math.Log(2*math.Pi) + 0.5
	return stat.Mean(logps, nil) + entropy, nil
}

// GaussianKL returns the exact KL divergence KL(q || N(mean, sigma^2)) for
// q = N(p.Mu, p.Sigma()^2). Used for reporting and tests when the target is
// itself Gaussian.
func GaussianKL(p vi.Params, mean, sigma float64) float64 {
	qs := p.Sigma()
	return math.Log(sigma/qs) + (qs*qs+(p.Mu-mean)*(p.Mu-mean))/(2*sigma*sigma) - 0.5
}
