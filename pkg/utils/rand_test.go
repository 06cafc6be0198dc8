package utils

import (
	"testing"
)

func TestRandSourceDeterminism(t *testing.T) {
	a := NewRandSource(42)
	b := NewRandSource(42)

	for i := 0; i < 100; i++ {
		va, vb := a.NormFloat64(), b.NormFloat64()
		if va != vb {
			t.Fatalf("draw %d: sources with same seed diverged: %v != %v", i, va, vb)
		}
	}
}

func TestRandSourceDifferentSeeds(t *testing.T) {
	a := NewRandSource(1)
	b := NewRandSource(2)

	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("expected different sequences for different seeds")
	}
}

func TestUniformFloat64Range(t *testing.T) {
	r := NewRandSource(7)
	for i := 0; i < 1000; i++ {
		v := r.UniformFloat64(-2.0, 3.0)
		if v < -2.0 || v >= 3.0 {
			t.Fatalf("UniformFloat64(-2, 3) = %v out of range", v)
		}
	}
}

func TestIntnRange(t *testing.T) {
	r := NewRandSource(7)
	for i := 0; i < 1000; i++ {
		v := r.Intn(5)
		if v < 0 || v >= 5 {
			t.Fatalf("Intn(5) = %d out of range", v)
		}
	}
}

func TestGaussianFloat64Moments(t *testing.T) {
	r := NewRandSource(11)
	n := 200000
	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		v := r.GaussianFloat64(2.0, 0.5)
		sum += v
		sumSq += v * v
	}
	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean

	if mean < 1.98 || mean > 2.02 {
		t.Errorf("sample mean = %v, expected near 2.0", mean)
	}
	if variance < 0.24 || variance > 0.26 {
		t.Errorf("sample variance = %v, expected near 0.25", variance)
	}
}
