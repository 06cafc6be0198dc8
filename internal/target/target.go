// Package target provides the scalar target densities that optimization
// runs can be pointed at. Each density exposes the unnormalized log density
// and its derivative (the score); the optimizer only ever sees the score.
package target

import (
	"errors"
	"fmt"

	"github.com/vbinfer/advi-core/internal/vi"
	"github.com/vbinfer/advi-core/pkg/config"
	"github.com/vbinfer/advi-core/pkg/utils"
)

// ErrUnknownTarget is returned for an unrecognized target type string.
var ErrUnknownTarget = errors.New("unknown target type")

// Density is a scalar target density.
type Density interface {
	// LogProb returns the (possibly unnormalized) log density at z.
	LogProb(z float64) float64
	// Score returns d/dz LogProb(z).
	Score(z float64) float64
}

// Score adapts a Density to the optimizer's score-function contract.
func Score(d Density) vi.ScoreFunc {
	return d.Score
}

// TypeNormal, TypeMixture and TypeRegressionSlope are the target type
// strings accepted in experiment configs.
const (
	TypeNormal          = "normal"
	TypeMixture         = "mixture"
	TypeRegressionSlope = "linreg_slope"
)

// New builds a Density from an experiment target spec. The random source is
// only consumed by minibatch regression targets; it may be nil otherwise.
func New(spec config.Target, rng *utils.RandSource) (Density, error) {
	switch spec.Type {
	case TypeNormal:
		return NewNormal(spec.Mean, spec.Sigma)
	case TypeMixture:
		components := make([]NormalComponent, 0, len(spec.Components))
		for _, c := range spec.Components {
			components = append(components, NormalComponent{Mean: c.Mean, Sigma: c.Sigma, Weight: c.Weight})
		}
		return NewMixture(components)
	case TypeRegressionSlope:
		if spec.Regression == nil {
			return nil, fmt.Errorf("target %s: regression data is required", spec.Type)
		}
		r := spec.Regression
		slope, err := NewRegressionSlope(r.X, r.Y, r.NoiseSigma, r.PriorSigma)
		if err != nil {
			return nil, err
		}
		if r.BatchSize > 0 {
			if rng == nil {
				return nil, fmt.Errorf("target %s: minibatching requires a random source", spec.Type)
			}
			return NewMinibatch(slope, r.BatchSize, rng)
		}
		return slope, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, spec.Type)
	}
}
