package advid

import (
	"fmt"
	"sort"
	"sync"
	"time"

	adviv1 "github.com/vbinfer/advi-core/gen/go/advi/v1"
	"github.com/vbinfer/advi-core/pkg/utils"
)

// RunRecord holds everything known about one optimization run: its lifecycle
// state, the submitted input, and (once available) the trace and final result.
type RunRecord struct {
	Run    *adviv1.Run
	Input  *adviv1.RunInput
	Result *adviv1.RunResult
	Trace  []*adviv1.TracePoint
}

type RunStore struct {
	mu   sync.RWMutex
	runs map[string]*RunRecord
}

func NewRunStore() *RunStore {
	return &RunStore{
		runs: make(map[string]*RunRecord),
	}
}

func nowUnixMs() int64 {
	return time.Now().UTC().UnixMilli()
}

func (s *RunStore) Create(runID string, input *adviv1.RunInput) (*RunRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if runID == "" {
		runID = utils.GenerateRunID()
	}
	if _, exists := s.runs[runID]; exists {
		return nil, fmt.Errorf("run already exists: %s", runID)
	}

	rec := &RunRecord{
		Run: &adviv1.Run{
			Id:              runID,
			Status:          adviv1.RunStatus_RUN_STATUS_PENDING,
			CreatedAtUnixMs: nowUnixMs(),
		},
		Input: input,
	}
	s.runs[runID] = rec
	return rec, nil
}

func (s *RunStore) Get(runID string) (*RunRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.runs[runID]
	return rec, ok
}

// List returns up to limit runs, newest first.
func (s *RunStore) List(limit int) []*RunRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	out := make([]*RunRecord, 0, len(s.runs))
	for _, rec := range s.runs {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Run.CreatedAtUnixMs > out[j].Run.CreatedAtUnixMs
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *RunStore) SetStatus(runID string, status adviv1.RunStatus, errMsg string) (*RunRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.runs[runID]
	if !ok {
		return nil, fmt.Errorf("run not found: %s", runID)
	}

	rec.Run.Status = status
	if errMsg != "" {
		rec.Run.Error = errMsg
	}

	switch status {
	case adviv1.RunStatus_RUN_STATUS_RUNNING:
		if rec.Run.StartedAtUnixMs == 0 {
			rec.Run.StartedAtUnixMs = nowUnixMs()
		}
	case adviv1.RunStatus_RUN_STATUS_COMPLETED,
		adviv1.RunStatus_RUN_STATUS_FAILED,
		adviv1.RunStatus_RUN_STATUS_CANCELLED:
		rec.Run.EndedAtUnixMs = nowUnixMs()
	}

	return rec, nil
}

func (s *RunStore) SetResult(runID string, result *adviv1.RunResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.runs[runID]
	if !ok {
		return fmt.Errorf("run not found: %s", runID)
	}
	rec.Result = result
	return nil
}

// AppendTracePoint records a parameter snapshot for a running run. Snapshots
// arriving after the run left RUNNING (a cancelled run's optimizer goroutine
// may still be draining) are dropped.
func (s *RunStore) AppendTracePoint(runID string, point *adviv1.TracePoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.runs[runID]
	if !ok {
		return fmt.Errorf("run not found: %s", runID)
	}
	if rec.Run.Status != adviv1.RunStatus_RUN_STATUS_RUNNING {
		return nil
	}
	rec.Trace = append(rec.Trace, point)
	return nil
}

// Trace returns a snapshot copy of the run's trace so far.
func (s *RunStore) Trace(runID string) ([]*adviv1.TracePoint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.runs[runID]
	if !ok {
		return nil, false
	}
	out := make([]*adviv1.TracePoint, len(rec.Trace))
	copy(out, rec.Trace)
	return out, true
}
