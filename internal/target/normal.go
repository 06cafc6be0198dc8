package target

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is a Gaussian target density.
type Normal struct {
	dist distuv.Normal
}

// NewNormal creates a Gaussian target with the given mean and standard
// deviation.
func NewNormal(mean, sigma float64) (*Normal, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("normal target: sigma must be positive, got %g", sigma)
	}
	return &Normal{dist: distuv.Normal{Mu: mean, Sigma: sigma}}, nil
}

func (n *Normal) LogProb(z float64) float64 {
	return n.dist.LogProb(z)
}

func (n *Normal) Score(z float64) float64 {
	return n.dist.ScoreInput(z)
}

// NormalComponent is one weighted component of a Gaussian mixture.
type NormalComponent struct {
	Mean   float64
	Sigma  float64
	Weight float64
}

// Mixture is a finite Gaussian mixture target density.
type Mixture struct {
	dists      []distuv.Normal
	logWeights []float64
}

// NewMixture creates a Gaussian mixture target. Weights must be positive;
// they are normalized internally.
func NewMixture(components []NormalComponent) (*Mixture, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("mixture target: at least one component is required")
	}
	total := 0.0
	for i, c := range components {
		if c.Sigma <= 0 {
			return nil, fmt.Errorf("mixture target: component %d: sigma must be positive, got %g", i, c.Sigma)
		}
		if c.Weight <= 0 {
			return nil, fmt.Errorf("mixture target: component %d: weight must be positive, got %g", i, c.Weight)
		}
		total += c.Weight
	}

	m := &Mixture{
		dists:      make([]distuv.Normal, len(components)),
		logWeights: make([]float64, len(components)),
	}
	for i, c := range components {
		m.dists[i] = distuv.Normal{Mu: c.Mean, Sigma: c.Sigma}
		m.logWeights[i] = math.Log(c.Weight / total)
	}
	return m, nil
}

func (m *Mixture) LogProb(z float64) float64 {
	terms := make([]float64, len(m.dists))
	for i, d := range m.dists {
		terms[i] = m.logWeights[i] + d.LogProb(z)
	}
	return floats.LogSumExp(terms)
}

func (m *Mixture) Score(z float64) float64 {
	// Responsibility-weighted component scores:
	// d/dz log f = sum_i r_i(z) * score_i(z)
	logProb := m.LogProb(z)
	score := 0.0
	for i, d := range m.dists {
		r := math.Exp(m.logWeights[i] + d.LogProb(z) - logProb)
		score += r * d.ScoreInput(z)
	}
	return score
}
