package config

// Experiment represents a single variational inference experiment: a target
// density, initial variational parameters and optimizer settings.
type Experiment struct {
	Name      string    `yaml:"name"`
	Seed      int64     `yaml:"seed,omitempty"`
	Target    Target    `yaml:"target"`
	Init      Init      `yaml:"init"`
	Optimizer Optimizer `yaml:"optimizer"`
}

// Target describes the target density to approximate
type Target struct {
	Type string `yaml:"type"` // normal, mixture, or linreg_slope

	// Normal target fields
	Mean  float64 `yaml:"mean,omitempty"`
	Sigma float64 `yaml:"sigma,omitempty"`

	// Mixture target fields
	Components []MixtureComponent `yaml:"components,omitempty"`

	// Regression target fields
	Regression *Regression `yaml:"regression,omitempty"`
}

// MixtureComponent is one weighted Gaussian component
type MixtureComponent struct {
	Mean   float64 `yaml:"mean"`
	Sigma  float64 `yaml:"sigma"`
	Weight float64 `yaml:"weight"`
}

// Regression holds observed data for the linear-regression slope target
type Regression struct {
	X          []float64 `yaml:"x"`
	Y          []float64 `yaml:"y"`
	NoiseSigma float64   `yaml:"noise_sigma"`
	PriorSigma float64   `yaml:"prior_sigma"`
	BatchSize  int       `yaml:"batch_size,omitempty"` // 0 = full data
}

// Init holds the initial variational parameters
type Init struct {
	Mu       float64 `yaml:"mu"`
	LogSigma float64 `yaml:"log_sigma"`
}

// Optimizer holds the stochastic gradient settings
type Optimizer struct {
	Iterations   int     `yaml:"iterations"`
	Draws        int     `yaml:"draws,omitempty"` // defaults to 1
	LearningRate float64 `yaml:"learning_rate"`
	Decay        float64 `yaml:"decay"`
	TraceEvery   int     `yaml:"trace_every,omitempty"` // 0 = iterations/25
}
