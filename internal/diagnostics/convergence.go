package diagnostics

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/vbinfer/advi-core/internal/vi"
)

// PlateauConfig holds configuration for plateau detection over a trace.
type PlateauConfig struct {
	// Window is the number of trailing trace points to inspect.
	Window int
	// MuTolerance is the maximum standard deviation of mu over the window
	// for the trace to count as plateaued.
	MuTolerance float64
	// LogSigmaTolerance is the equivalent tolerance for log_sigma.
	LogSigmaTolerance float64
}

// DefaultPlateauConfig returns a default plateau configuration.
func DefaultPlateauConfig() *PlateauConfig {
	return &PlateauConfig{
		Window:            5,
		MuTolerance:       0.01,
		LogSigmaTolerance: 0.01,
	}
}

// PlateauDetector reports whether the tail of an optimization trace has
// stopped moving. It is a post-hoc diagnostic: the optimizer itself runs its
// full iteration count unconditionally.
type PlateauDetector struct {
	config *PlateauConfig
}

// NewPlateauDetector creates a plateau detector with the given config.
func NewPlateauDetector(config *PlateauConfig) *PlateauDetector {
	if config == nil {
		config = DefaultPlateauConfig()
	}
	return &PlateauDetector{config: config}
}

// Check inspects the trailing window of the trace. It returns whether the
// parameters plateaued and a human-readable reason.
func (d *PlateauDetector) Check(trace []vi.TracePoint) (plateaued bool, reason string) {
	w := d.config.Window
	if len(trace) < w {
		return false, fmt.Sprintf("trace too short: %d points, window is %d", len(trace), w)
	}

	tail := trace[len(trace)-w:]
	mus := make([]float64, w)
	logSigmas := make([]float64, w)
	for i, pt := range tail {
		mus[i] = pt.Mu
		logSigmas[i] = pt.LogSigma
	}

	muSD := stat.StdDev(mus, nil)
	lsSD := stat.StdDev(logSigmas, nil)

	if muSD <= d.config.MuTolerance && lsSD <= d.config.LogSigmaTolerance {
		return true, fmt.Sprintf("parameters plateaued over last %d snapshots (sd mu=%.3g, sd log_sigma=%.3g)", w, muSD, lsSD)
	}
	return false, fmt.Sprintf("parameters still moving (sd mu=%.3g, sd log_sigma=%.3g)", muSD, lsSD)
}
