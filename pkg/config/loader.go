package config

import (
	"fmt"
	"os"
)

// LoadExperiment loads and parses an experiment file
func LoadExperiment(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read experiment file %s: %w", path, err)
	}
	exp, err := ParseExperimentYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse experiment file %s: %w", path, err)
	}
	return exp, nil
}

// validateExperiment performs validation on the experiment configuration
func validateExperiment(exp *Experiment) error {
	if exp.Name == "" {
		return fmt.Errorf("experiment name cannot be empty")
	}

	if err := validateTarget(&exp.Target); err != nil {
		return fmt.Errorf("target validation failed: %w", err)
	}

	if err := validateOptimizer(&exp.Optimizer); err != nil {
		return fmt.Errorf("optimizer validation failed: %w", err)
	}

	return nil
}

// validateTarget validates the target density specification
func validateTarget(t *Target) error {
	switch t.Type {
	case "normal":
		if t.Sigma <= 0 {
			return fmt.Errorf("normal target: sigma must be positive, got %f", t.Sigma)
		}
	case "mixture":
		if len(t.Components) == 0 {
			return fmt.Errorf("mixture target: at least one component must be defined")
		}
		for i, c := range t.Components {
			if c.Sigma <= 0 {
				return fmt.Errorf("mixture target: component %d: sigma must be positive, got %f", i, c.Sigma)
			}
			if c.Weight <= 0 {
				return fmt.Errorf("mixture target: component %d: weight must be positive, got %f", i, c.Weight)
			}
		}
	case "linreg_slope":
		if t.Regression == nil {
			return fmt.Errorf("linreg_slope target: regression data must be defined")
		}
		r := t.Regression
		if len(r.X) == 0 {
			return fmt.Errorf("linreg_slope target: x cannot be empty")
		}
		if len(r.X) != len(r.Y) {
			return fmt.Errorf("linreg_slope target: x and y lengths differ: %d != %d", len(r.X), len(r.Y))
		}
		if r.NoiseSigma <= 0 {
			return fmt.Errorf("linreg_slope target: noise_sigma must be positive, got %f", r.NoiseSigma)
		}
		if r.PriorSigma <= 0 {
			return fmt.Errorf("linreg_slope target: prior_sigma must be positive, got %f", r.PriorSigma)
		}
		if r.BatchSize < 0 {
			return fmt.Errorf("linreg_slope target: batch_size cannot be negative, got %d", r.BatchSize)
		}
		if r.BatchSize > len(r.X) {
			return fmt.Errorf("linreg_slope target: batch_size %d exceeds data size %d", r.BatchSize, len(r.X))
		}
	case "":
		return fmt.Errorf("target type cannot be empty")
	default:
		return fmt.Errorf("invalid target type: %s (must be normal, mixture, or linreg_slope)", t.Type)
	}
	return nil
}

// validateOptimizer validates the optimizer configuration
func validateOptimizer(o *Optimizer) error {
	if o.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", o.Iterations)
	}
	if o.Draws <= 0 {
		return fmt.Errorf("draws must be positive, got %d", o.Draws)
	}
	if o.LearningRate <= 0 {
		return fmt.Errorf("learning_rate must be positive, got %f", o.LearningRate)
	}
	if o.Decay < 0 || o.Decay >= 1 {
		return fmt.Errorf("decay must be in [0, 1), got %f", o.Decay)
	}
	if o.TraceEvery < 0 {
		return fmt.Errorf("trace_every cannot be negative, got %d", o.TraceEvery)
	}
	return nil
}
