package diagnostics

import (
	"math"
	"testing"

	"github.com/vbinfer/advi-core/internal/target"
	"github.com/vbinfer/advi-core/internal/vi"
	"github.com/vbinfer/advi-core/pkg/utils"
)

func TestEstimateELBOStandardNormalOptimum(t *testing.T) {
	// With q = N(0,1) matching a standard-normal target exactly, the ELBO
	// equals the log normalizing constant, which LogProb includes: 0.
	d, err := target.NewNormal(0, 1)
	if err != nil {
		t.Fatalf("NewNormal error: %v", err)
	}

	elbo, err := EstimateELBO(d, vi.Params{Mu: 0, LogSigma: 0}, utils.NewRandSource(42), 200000)
	if err != nil {
		t.Fatalf("EstimateELBO error: %v", err)
	}
	if math.Abs(elbo) > 0.01 {
		t.Errorf("ELBO = %v, expected near 0 at the optimum", elbo)
	}
}

func TestEstimateELBOPenalizesMismatch(t *testing.T) {
	d, err := target.NewNormal(0, 1)
	if err != nil {
		t.Fatalf("NewNormal error: %v", err)
	}

	atOpt, err := EstimateELBO(d, vi.Params{Mu: 0, LogSigma: 0}, utils.NewRandSource(1), 100000)
	if err != nil {
		t.Fatalf("EstimateELBO error: %v", err)
	}
	offOpt, err := EstimateELBO(d, vi.Params{Mu: 3, LogSigma: 0}, utils.NewRandSource(1), 100000)
	if err != nil {
		t.Fatalf("EstimateELBO error: %v", err)
	}
	if offOpt >= atOpt {
		t.Errorf("ELBO off optimum (%v) should be below ELBO at optimum (%v)", offOpt, atOpt)
	}
}

func TestEstimateELBOValidation(t *testing.T) {
	d, _ := target.NewNormal(0, 1)
	src := utils.NewRandSource(1)

	if _, err := EstimateELBO(nil, vi.Params{}, src, 10); err == nil {
		t.Errorf("expected error for nil density")
	}
	if _, err := EstimateELBO(d, vi.Params{}, nil, 10); err == nil {
		t.Errorf("expected error for nil source")
	}
	if _, err := EstimateELBO(d, vi.Params{}, src, 0); err == nil {
		t.Errorf("expected error for zero draws")
	}
}

func TestGaussianKL(t *testing.T) {
	tests := []struct {
		name     string
		p        vi.Params
		mean     float64
		sigma    float64
		expected float64
	}{
		{"identical", vi.Params{Mu: 0, LogSigma: 0}, 0, 1, 0},
		{"shifted mean", vi.Params{Mu: 1, LogSigma: 0}, 0, 1, 0.5},
		{"double scale", vi.Params{Mu: 0, LogSigma: math.Log(2)}, 0, 1, -math.Log(2) + 2 - 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GaussianKL(tt.p, tt.mean, tt.sigma); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("GaussianKL = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestGaussianKLNonNegative(t *testing.T) {
	rng := utils.NewRandSource(9)
	for i := 0; i < 100; i++ {
		p := vi.Params{Mu: rng.UniformFloat64(-5, 5), LogSigma: rng.UniformFloat64(-2, 2)}
		if kl := GaussianKL(p, rng.UniformFloat64(-5, 5), rng.UniformFloat64(0.1, 3)); kl < 0 {
			t.Fatalf("KL = %v for %+v, must be non-negative", kl, p)
		}
	}
}
