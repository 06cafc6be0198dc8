// Command advi runs a single variational inference experiment locally and
// prints the fitted approximation as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/vbinfer/advi-core/internal/diagnostics"
	"github.com/vbinfer/advi-core/internal/target"
	"github.com/vbinfer/advi-core/internal/vi"
	"github.com/vbinfer/advi-core/pkg/config"
	"github.com/vbinfer/advi-core/pkg/logger"
	"github.com/vbinfer/advi-core/pkg/utils"
)

const elboDraws = 2000

type output struct {
	Experiment    string          `json:"experiment"`
	Seed          int64           `json:"seed"`
	Mu            float64         `json:"mu"`
	LogSigma      float64         `json:"log_sigma"`
	Sigma         float64         `json:"sigma"`
	Elbo          float64         `json:"elbo"`
	Iterations    int             `json:"iterations"`
	Plateaued     bool            `json:"plateaued"`
	PlateauReason string          `json:"plateau_reason"`
	Trace         []vi.TracePoint `json:"trace,omitempty"`
}

func main() {
	var experimentPath string
	var seed int64
	var withTrace bool
	var quiet bool
	var logLevel string

	flag.StringVar(&experimentPath, "experiment", "", "path to the experiment YAML file (required)")
	flag.Int64Var(&seed, "seed", 0, "override the experiment's random seed (0 keeps the file's value)")
	flag.BoolVar(&withTrace, "trace", false, "include the optimization trace in the output")
	flag.BoolVar(&quiet, "quiet", false, "suppress all log output except errors")
	flag.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	if quiet {
		logLevel = "error"
	}
	logger.SetDefault(logger.NewText(logLevel, os.Stderr))

	if experimentPath == "" {
		fmt.Fprintln(os.Stderr, "usage: advi -experiment <file.yaml> [-seed N] [-trace]")
		os.Exit(2)
	}

	if err := run(experimentPath, seed, withTrace); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(experimentPath string, seed int64, withTrace bool) error {
	exp, err := config.LoadExperiment(experimentPath)
	if err != nil {
		return fmt.Errorf("load experiment: %w", err)
	}

	if seed == 0 {
		seed = exp.Seed
	}
	rng := utils.NewRandSource(seed)

	density, err := target.New(exp.Target, rng)
	if err != nil {
		return fmt.Errorf("build target: %w", err)
	}

	min, err := vi.NewMinimizer(target.Score(density), vi.Config{
		Iterations:   exp.Optimizer.Iterations,
		Draws:        exp.Optimizer.Draws,
		LearningRate: exp.Optimizer.LearningRate,
		Decay:        exp.Optimizer.Decay,
		TraceEvery:   exp.Optimizer.TraceEvery,
	})
	if err != nil {
		return fmt.Errorf("build minimizer: %w", err)
	}

	logger.Info("starting optimization",
		"experiment", exp.Name,
		"target", exp.Target.Type,
		"iterations", exp.Optimizer.Iterations,
		"seed", seed)

	res, err := min.Minimize(rng, vi.Params{Mu: exp.Init.Mu, LogSigma: exp.Init.LogSigma})
	if err != nil {
		return fmt.Errorf("optimization: %w", err)
	}

	elbo, err := diagnostics.EstimateELBO(density, res.Params, rng, elboDraws)
	if err != nil {
		return fmt.Errorf("elbo estimation: %w", err)
	}
	plateaued, reason := diagnostics.NewPlateauDetector(nil).Check(res.Trace)

	out := output{
		Experiment:    exp.Name,
		Seed:          seed,
		Mu:            res.Params.Mu,
		LogSigma:      res.Params.LogSigma,
		Sigma:         res.Params.Sigma(),
		Elbo:          elbo,
		Iterations:    res.Iterations,
		Plateaued:     plateaued,
		PlateauReason: reason,
	}
	if withTrace {
		out.Trace = res.Trace
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
