package advid

import (
	"testing"

	adviv1 "github.com/vbinfer/advi-core/gen/go/advi/v1"
)

func TestRunStoreCreateAndGet(t *testing.T) {
	store := NewRunStore()

	rec, err := store.Create("", &adviv1.RunInput{ExperimentYaml: "name: x"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec == nil || rec.Run == nil {
		t.Fatalf("Create returned nil record/run")
	}
	if rec.Run.Id == "" {
		t.Fatalf("expected generated run id")
	}
	if rec.Run.Status != adviv1.RunStatus_RUN_STATUS_PENDING {
		t.Fatalf("expected status pending, got %v", rec.Run.Status)
	}
	if rec.Run.CreatedAtUnixMs == 0 {
		t.Fatalf("expected created_at_unix_ms to be set")
	}

	got, ok := store.Get(rec.Run.Id)
	if !ok {
		t.Fatalf("expected run to exist")
	}
	if got.Run.Id != rec.Run.Id {
		t.Fatalf("expected same run id")
	}
}

func TestRunStoreCreateDuplicate(t *testing.T) {
	store := NewRunStore()
	_, err := store.Create("run-1", &adviv1.RunInput{ExperimentYaml: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = store.Create("run-1", &adviv1.RunInput{ExperimentYaml: "y"})
	if err == nil {
		t.Fatalf("expected duplicate error")
	}
}

func TestRunStoreSetStatusSetsTimestamps(t *testing.T) {
	store := NewRunStore()
	rec, err := store.Create("run-1", &adviv1.RunInput{ExperimentYaml: "x"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if rec.Run.StartedAtUnixMs != 0 || rec.Run.EndedAtUnixMs != 0 {
		t.Fatalf("expected timestamps not set initially")
	}

	rec, err = store.SetStatus("run-1", adviv1.RunStatus_RUN_STATUS_RUNNING, "")
	if err != nil {
		t.Fatalf("SetStatus running error: %v", err)
	}
	if rec.Run.StartedAtUnixMs == 0 {
		t.Fatalf("expected started_at_unix_ms set")
	}
	if rec.Run.EndedAtUnixMs != 0 {
		t.Fatalf("did not expect ended_at_unix_ms set for running")
	}

	rec, err = store.SetStatus("run-1", adviv1.RunStatus_RUN_STATUS_COMPLETED, "")
	if err != nil {
		t.Fatalf("SetStatus completed error: %v", err)
	}
	if rec.Run.EndedAtUnixMs == 0 {
		t.Fatalf("expected ended_at_unix_ms set")
	}
}

func TestRunStoreSetResult(t *testing.T) {
	store := NewRunStore()
	_, err := store.Create("run-1", &adviv1.RunInput{ExperimentYaml: "x"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	result := &adviv1.RunResult{Mu: 1.5, Sigma: 0.8, Iterations: 100}
	if err := store.SetResult("run-1", result); err != nil {
		t.Fatalf("SetResult error: %v", err)
	}

	rec, ok := store.Get("run-1")
	if !ok {
		t.Fatalf("expected run to exist")
	}
	if rec.Result == nil || rec.Result.Mu != 1.5 {
		t.Fatalf("expected result to be stored")
	}
}

func TestRunStoreAppendTracePointOnlyWhileRunning(t *testing.T) {
	store := NewRunStore()
	_, err := store.Create("run-1", &adviv1.RunInput{ExperimentYaml: "x"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Pending run: points are dropped.
	if err := store.AppendTracePoint("run-1", &adviv1.TracePoint{Iteration: 1}); err != nil {
		t.Fatalf("AppendTracePoint error: %v", err)
	}
	points, _ := store.Trace("run-1")
	if len(points) != 0 {
		t.Fatalf("expected no trace points for a pending run, got %d", len(points))
	}

	if _, err := store.SetStatus("run-1", adviv1.RunStatus_RUN_STATUS_RUNNING, ""); err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if err := store.AppendTracePoint("run-1", &adviv1.TracePoint{Iteration: 10, Mu: 0.5}); err != nil {
		t.Fatalf("AppendTracePoint error: %v", err)
	}
	points, _ = store.Trace("run-1")
	if len(points) != 1 || points[0].Iteration != 10 {
		t.Fatalf("expected one trace point at iteration 10, got %v", points)
	}

	// Cancelled run: late points from an abandoned optimizer are dropped.
	if _, err := store.SetStatus("run-1", adviv1.RunStatus_RUN_STATUS_CANCELLED, ""); err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if err := store.AppendTracePoint("run-1", &adviv1.TracePoint{Iteration: 20}); err != nil {
		t.Fatalf("AppendTracePoint error: %v", err)
	}
	points, _ = store.Trace("run-1")
	if len(points) != 1 {
		t.Fatalf("expected late trace point to be dropped, got %d points", len(points))
	}
}

func TestRunStoreTraceUnknownRun(t *testing.T) {
	store := NewRunStore()
	if _, ok := store.Trace("missing"); ok {
		t.Fatalf("expected missing run to report not found")
	}
	if err := store.AppendTracePoint("missing", &adviv1.TracePoint{}); err == nil {
		t.Fatalf("expected error for missing run")
	}
}

func TestRunStoreListLimitAndOrder(t *testing.T) {
	store := NewRunStore()
	for i := 0; i < 10; i++ {
		_, err := store.Create("", &adviv1.RunInput{ExperimentYaml: "x"})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	recs := store.List(3)
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i-1].Run.CreatedAtUnixMs < recs[i].Run.CreatedAtUnixMs {
			t.Fatalf("expected newest-first ordering")
		}
	}
}
