package advid

import (
	"context"
	"errors"
	"fmt"
	"sync"

	adviv1 "github.com/vbinfer/advi-core/gen/go/advi/v1"
	"github.com/vbinfer/advi-core/internal/diagnostics"
	"github.com/vbinfer/advi-core/internal/target"
	"github.com/vbinfer/advi-core/internal/vi"
	"github.com/vbinfer/advi-core/pkg/config"
	"github.com/vbinfer/advi-core/pkg/logger"
	"github.com/vbinfer/advi-core/pkg/utils"
)

var (
	ErrRunNotFound  = errors.New("run not found")
	ErrRunTerminal  = errors.New("run is terminal")
	ErrRunIDMissing = errors.New("run_id is required")
)

// elboDraws is the Monte Carlo sample count for the post-fit ELBO estimate.
const elboDraws = 2000

// RunExecutor manages asynchronous run execution and per-run cancellation.
type RunExecutor struct {
	store    *RunStore
	notifier *Notifier

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

func NewRunExecutor(store *RunStore, notifier *Notifier) *RunExecutor {
	return &RunExecutor{
		store:    store,
		notifier: notifier,
		cancels:  make(map[string]context.CancelFunc),
	}
}

// Start begins executing a run asynchronously.
// Returns the updated run state (RUNNING) or an error.
func (e *RunExecutor) Start(runID string) (*RunRecord, error) {
	if runID == "" {
		return nil, ErrRunIDMissing
	}

	rec, ok := e.store.Get(runID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	switch rec.Run.Status {
	case adviv1.RunStatus_RUN_STATUS_RUNNING:
		return rec, nil
	case adviv1.RunStatus_RUN_STATUS_COMPLETED,
		adviv1.RunStatus_RUN_STATUS_FAILED,
		adviv1.RunStatus_RUN_STATUS_CANCELLED:
		return nil, fmt.Errorf("%w: %s", ErrRunTerminal, runID)
	}

	updated, err := e.store.SetStatus(runID, adviv1.RunStatus_RUN_STATUS_RUNNING, "")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	e.mu.Lock()
	if old, exists := e.cancels[runID]; exists {
		old()
	}
	e.cancels[runID] = cancel
	e.mu.Unlock()

	go e.runOptimization(ctx, runID)
	return updated, nil
}

// Stop requests cancellation for a running run and marks it cancelled.
func (e *RunExecutor) Stop(runID string) (*RunRecord, error) {
	if runID == "" {
		return nil, ErrRunIDMissing
	}

	e.mu.Lock()
	cancel, ok := e.cancels[runID]
	e.mu.Unlock()

	if ok {
		cancel()
	}

	updated, err := e.store.SetStatus(runID, adviv1.RunStatus_RUN_STATUS_CANCELLED, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return updated, nil
}

func (e *RunExecutor) cleanup(runID string) {
	e.mu.Lock()
	if cancel, ok := e.cancels[runID]; ok {
		cancel()
		delete(e.cancels, runID)
	}
	e.mu.Unlock()
}

func (e *RunExecutor) fail(runID, msg string) {
	if _, err := e.store.SetStatus(runID, adviv1.RunStatus_RUN_STATUS_FAILED, msg); err != nil {
		logger.Error("failed to set failed status", "run_id", runID, "error", err)
	}
}

func (e *RunExecutor) runOptimization(ctx context.Context, runID string) {
	defer e.cleanup(runID)
	defer e.notifyCompletion(runID)

	rec, ok := e.store.Get(runID)
	if !ok {
		logger.Error("run not found", "run_id", runID)
		return
	}

	exp, err := config.ParseExperimentYAMLString(rec.Input.ExperimentYaml)
	if err != nil {
		logger.Error("failed to parse experiment YAML", "run_id", runID, "error", err)
		e.fail(runID, fmt.Sprintf("invalid experiment: %v", err))
		return
	}

	seed := exp.Seed
	if rec.Input.Seed != 0 {
		seed = rec.Input.Seed
	}
	rng := utils.NewRandSource(seed)

	density, err := target.New(exp.Target, rng)
	if err != nil {
		logger.Error("failed to build target density", "run_id", runID, "error", err)
		e.fail(runID, fmt.Sprintf("invalid target: %v", err))
		return
	}

	min, err := vi.NewMinimizer(target.Score(density), vi.Config{
		Iterations:   exp.Optimizer.Iterations,
		Draws:        exp.Optimizer.Draws,
		LearningRate: exp.Optimizer.LearningRate,
		Decay:        exp.Optimizer.Decay,
		TraceEvery:   exp.Optimizer.TraceEvery,
	})
	if err != nil {
		logger.Error("failed to build minimizer", "run_id", runID, "error", err)
		e.fail(runID, fmt.Sprintf("invalid optimizer config: %v", err))
		return
	}

	min.WithProgressReporter(func(iteration int, p vi.Params) {
		if err := e.store.AppendTracePoint(runID, &adviv1.TracePoint{
			Iteration: int64(iteration),
			Mu:        p.Mu,
			LogSigma:  p.LogSigma,
		}); err != nil {
			logger.Warn("failed to record trace point", "run_id", runID, "error", err)
		}
	})

	init := vi.Params{Mu: exp.Init.Mu, LogSigma: exp.Init.LogSigma}
	logger.Info("starting optimization", "run_id", runID,
		"experiment", exp.Name,
		"target", exp.Target.Type,
		"iterations", exp.Optimizer.Iterations,
		"seed", seed)

	// Minimize is synchronous. Run it in a goroutine so a cancelled run
	// hands control back immediately; the abandoned goroutine finishes and
	// its late trace points are dropped by the store.
	type outcome struct {
		res *vi.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := min.Minimize(rng, init)
		done <- outcome{res: res, err: err}
	}()

	var res *vi.Result
	select {
	case <-ctx.Done():
		logger.Info("optimization cancelled", "run_id", runID)
		return
	case out := <-done:
		if out.err != nil {
			logger.Error("optimization failed", "run_id", runID, "error", out.err)
			e.fail(runID, out.err.Error())
			return
		}
		res = out.res
	}

	elbo, err := diagnostics.EstimateELBO(density, res.Params, rng, elboDraws)
	if err != nil {
		logger.Error("ELBO estimation failed", "run_id", runID, "error", err)
		e.fail(runID, fmt.Sprintf("elbo estimation failed: %v", err))
		return
	}
	plateaued, reason := diagnostics.NewPlateauDetector(nil).Check(res.Trace)

	if err := e.store.SetResult(runID, &adviv1.RunResult{
		Mu:            res.Params.Mu,
		LogSigma:      res.Params.LogSigma,
		Sigma:         res.Params.Sigma(),
		Elbo:          elbo,
		Iterations:    int64(res.Iterations),
		Plateaued:     plateaued,
		PlateauReason: reason,
	}); err != nil {
		logger.Error("failed to set result", "run_id", runID, "error", err)
	}

	rec, ok = e.store.Get(runID)
	if ok && rec.Run.Status == adviv1.RunStatus_RUN_STATUS_RUNNING {
		if _, err := e.store.SetStatus(runID, adviv1.RunStatus_RUN_STATUS_COMPLETED, ""); err != nil {
			logger.Error("failed to set completed status", "run_id", runID, "error", err)
		} else {
			logger.Info("run completed", "run_id", runID,
				"mu", res.Params.Mu,
				"sigma", res.Params.Sigma(),
				"elbo", elbo,
				"plateaued", plateaued)
		}
	}
}

func (e *RunExecutor) notifyCompletion(runID string) {
	if e.notifier == nil {
		return
	}
	rec, ok := e.store.Get(runID)
	if !ok || rec.Input == nil {
		return
	}
	e.notifier.Notify(rec.Input.CallbackUrl, rec.Input.CallbackSecret, rec)
}
