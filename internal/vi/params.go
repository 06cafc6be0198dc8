package vi

import "math"

// Params holds the variational parameters of a 1-D Gaussian approximation
// q(zeta) = N(Mu, exp(LogSigma)^2). The scale is carried in log space, so
// exp(LogSigma) is strictly positive by construction.
type Params struct {
	Mu       float64
	LogSigma float64
}

// Sigma returns the standard deviation exp(LogSigma).
func (p Params) Sigma() float64 {
	return math.Exp(p.LogSigma)
}

// IsFinite reports whether both parameters are finite.
func (p Params) IsFinite() bool {
	return isFinite(p.Mu) && isFinite(p.LogSigma)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ScoreFunc maps a point zeta to the derivative of the unnormalized log
// target density at zeta. It must be stateless from the optimizer's view.
type ScoreFunc func(zeta float64) float64

// NormalSource is a stream of independent standard-normal draws. It is owned
// by the caller and must not be shared with other consumers during a run.
// *math/rand.Rand satisfies it, as does pkg/utils.RandSource.
type NormalSource interface {
	NormFloat64() float64
}
