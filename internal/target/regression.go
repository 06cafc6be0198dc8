package target

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/vbinfer/advi-core/pkg/utils"
)

// RegressionSlope is the posterior density over the slope of a 1-D linear
// regression through the origin: y_i = w*x_i + eps, eps ~ N(0, noiseSigma^2),
// with a zero-mean Gaussian prior on w. The log posterior is quadratic in w,
// so both LogProb and Score are closed-form.
type RegressionSlope struct {
	x, y       []float64
	noiseSigma float64
	priorSigma float64

	sxx float64 // sum of x_i^2
	sxy float64 // sum of x_i*y_i
	syy float64 // sum of y_i^2
}

// NewRegressionSlope creates a slope-posterior target from observed data.
func NewRegressionSlope(x, y []float64, noiseSigma, priorSigma float64) (*RegressionSlope, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("regression target: data cannot be empty")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("regression target: x and y lengths differ: %d != %d", len(x), len(y))
	}
	if noiseSigma <= 0 {
		return nil, fmt.Errorf("regression target: noise_sigma must be positive, got %g", noiseSigma)
	}
	if priorSigma <= 0 {
		return nil, fmt.Errorf("regression target: prior_sigma must be positive, got %g", priorSigma)
	}
	return &RegressionSlope{
		x:          x,
		y:          y,
		noiseSigma: noiseSigma,
		priorSigma: priorSigma,
		sxx:        floats.Dot(x, x),
		sxy:        floats.Dot(x, y),
		syy:        floats.Dot(y, y),
	}, nil
}

func (r *RegressionSlope) LogProb(w float64) float64 {
	nv := r.noiseSigma * r.noiseSigma
	pv := r.priorSigma * r.priorSigma
	rss := r.syy - 2*w*r.sxy + w*w*r.sxx
	return -w*w/(2*pv) - rss/(2*nv)
}

func (r *RegressionSlope) Score(w float64) float64 {
	nv := r.noiseSigma * r.noiseSigma
	pv := r.priorSigma * r.priorSigma
	return -w/pv + (r.sxy-w*r.sxx)/nv
}

// PointScore returns the likelihood score contribution of observation i.
func (r *RegressionSlope) PointScore(i int, w float64) float64 {
	nv := r.noiseSigma * r.noiseSigma
	return r.x[i] * (r.y[i] - w*r.x[i]) / nv
}

// PriorScore returns the prior score contribution.
func (r *RegressionSlope) PriorScore(w float64) float64 {
	return -w / (r.priorSigma * r.priorSigma)
}

// Len returns the number of observations.
func (r *RegressionSlope) Len() int {
	return len(r.x)
}

// Minibatch estimates the regression slope score from a uniformly subsampled
// minibatch, scaled by N/B so the estimate stays unbiased for the full-data
// gradient. Each Score call consumes the random source; LogProb uses the
// full data set (it is only read by diagnostics, never by the optimizer).
type Minibatch struct {
	full      *RegressionSlope
	batchSize int
	rng       *utils.RandSource
}

// NewMinibatch wraps a regression target with minibatch score estimation.
func NewMinibatch(full *RegressionSlope, batchSize int, rng *utils.RandSource) (*Minibatch, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("minibatch target: batch_size must be positive, got %d", batchSize)
	}
	if batchSize > full.Len() {
		return nil, fmt.Errorf("minibatch target: batch_size %d exceeds data size %d", batchSize, full.Len())
	}
	if rng == nil {
		return nil, fmt.Errorf("minibatch target: random source is required")
	}
	return &Minibatch{full: full, batchSize: batchSize, rng: rng}, nil
}

func (m *Minibatch) LogProb(w float64) float64 {
	return m.full.LogProb(w)
}

func (m *Minibatch) Score(w float64) float64 {
	n := m.full.Len()
	sum := 0.0
	for b := 0; b < m.batchSize; b++ {
		sum += m.full.PointScore(m.rng.Intn(n), w)
	}
	scale := float64(n) / float64(m.batchSize)
	return m.full.PriorScore(w) + scale*sum
}
