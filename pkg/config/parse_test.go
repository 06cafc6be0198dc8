package config

import (
	"strings"
	"testing"
)

const validExperimentYAML = `
name: standard-normal
seed: 42
target:
  type: normal
  mean: 0
  sigma: 1
init:
  mu: 5
  log_sigma: 2
optimizer:
  iterations: 100000
  learning_rate: 0.0005
  decay: 0.00005
`

func TestParseExperimentYAMLValid(t *testing.T) {
	exp, err := ParseExperimentYAMLString(validExperimentYAML)
	if err != nil {
		t.Fatalf("ParseExperimentYAMLString error: %v", err)
	}

	if exp.Name != "standard-normal" {
		t.Errorf("name = %q, expected standard-normal", exp.Name)
	}
	if exp.Seed != 42 {
		t.Errorf("seed = %d, expected 42", exp.Seed)
	}
	if exp.Target.Type != "normal" || exp.Target.Sigma != 1 {
		t.Errorf("unexpected target: %+v", exp.Target)
	}
	if exp.Init.Mu != 5 || exp.Init.LogSigma != 2 {
		t.Errorf("unexpected init: %+v", exp.Init)
	}
	if exp.Optimizer.Iterations != 100000 {
		t.Errorf("iterations = %d, expected 100000", exp.Optimizer.Iterations)
	}
	if exp.Optimizer.Draws != 1 {
		t.Errorf("draws = %d, expected default 1", exp.Optimizer.Draws)
	}
}

func TestParseExperimentYAMLMixture(t *testing.T) {
	exp, err := ParseExperimentYAMLString(`
name: bimodal
target:
  type: mixture
  components:
    - {mean: -2, sigma: 1, weight: 0.5}
    - {mean: 2, sigma: 1, weight: 0.5}
init: {mu: 0, log_sigma: 0}
optimizer:
  iterations: 1000
  learning_rate: 0.001
  decay: 0
`)
	if err != nil {
		t.Fatalf("ParseExperimentYAMLString error: %v", err)
	}
	if len(exp.Target.Components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(exp.Target.Components))
	}
	if exp.Target.Components[1].Mean != 2 {
		t.Errorf("component 1 mean = %v, expected 2", exp.Target.Components[1].Mean)
	}
}

func TestParseExperimentYAMLInvalidYAML(t *testing.T) {
	_, err := ParseExperimentYAMLString("{not yaml: [")
	if err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestParseExperimentYAMLValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		contains string
	}{
		{
			"missing name",
			`
target: {type: normal, sigma: 1}
init: {mu: 0, log_sigma: 0}
optimizer: {iterations: 10, learning_rate: 0.01, decay: 0}
`,
			"name cannot be empty",
		},
		{
			"unknown target type",
			`
name: x
target: {type: cauchy, sigma: 1}
init: {mu: 0, log_sigma: 0}
optimizer: {iterations: 10, learning_rate: 0.01, decay: 0}
`,
			"invalid target type",
		},
		{
			"missing target type",
			`
name: x
target: {sigma: 1}
init: {mu: 0, log_sigma: 0}
optimizer: {iterations: 10, learning_rate: 0.01, decay: 0}
`,
			"target type cannot be empty",
		},
		{
			"normal sigma not positive",
			`
name: x
target: {type: normal, sigma: 0}
init: {mu: 0, log_sigma: 0}
optimizer: {iterations: 10, learning_rate: 0.01, decay: 0}
`,
			"sigma must be positive",
		},
		{
			"zero iterations",
			`
name: x
target: {type: normal, sigma: 1}
init: {mu: 0, log_sigma: 0}
optimizer: {iterations: 0, learning_rate: 0.01, decay: 0}
`,
			"iterations must be positive",
		},
		{
			"zero draws",
			`
name: x
target: {type: normal, sigma: 1}
init: {mu: 0, log_sigma: 0}
optimizer: {iterations: 10, draws: -1, learning_rate: 0.01, decay: 0}
`,
			"draws must be positive",
		},
		{
			"zero learning rate",
			`
name: x
target: {type: normal, sigma: 1}
init: {mu: 0, log_sigma: 0}
optimizer: {iterations: 10, learning_rate: 0, decay: 0}
`,
			"learning_rate must be positive",
		},
		{
			"decay of one",
			`
name: x
target: {type: normal, sigma: 1}
init: {mu: 0, log_sigma: 0}
optimizer: {iterations: 10, learning_rate: 0.01, decay: 1}
`,
			"decay must be in [0, 1)",
		},
		{
			"mixture without components",
			`
name: x
target: {type: mixture}
init: {mu: 0, log_sigma: 0}
optimizer: {iterations: 10, learning_rate: 0.01, decay: 0}
`,
			"at least one component",
		},
		{
			"regression length mismatch",
			`
name: x
target:
  type: linreg_slope
  regression:
    x: [1, 2, 3]
    y: [1, 2]
    noise_sigma: 1
    prior_sigma: 1
init: {mu: 0, log_sigma: 0}
optimizer: {iterations: 10, learning_rate: 0.01, decay: 0}
`,
			"lengths differ",
		},
		{
			"batch size exceeds data",
			`
name: x
target:
  type: linreg_slope
  regression:
    x: [1, 2]
    y: [1, 2]
    noise_sigma: 1
    prior_sigma: 1
    batch_size: 5
init: {mu: 0, log_sigma: 0}
optimizer: {iterations: 10, learning_rate: 0.01, decay: 0}
`,
			"exceeds data size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExperimentYAMLString(tt.yaml)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Fatalf("error %q does not mention %q", err.Error(), tt.contains)
			}
		})
	}
}
