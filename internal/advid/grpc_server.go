package advid

import (
	"context"
	"errors"
	"time"

	adviv1 "github.com/vbinfer/advi-core/gen/go/advi/v1"
	"github.com/vbinfer/advi-core/pkg/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AdviGRPCServer implements the gRPC AdviServiceServer using a RunStore backend.
type AdviGRPCServer struct {
	adviv1.UnimplementedAdviServiceServer
	store    *RunStore
	Executor *RunExecutor
}

// NewAdviGRPCServer creates a new AdviGRPCServer with the provided RunStore and RunExecutor.
func NewAdviGRPCServer(store *RunStore, executor *RunExecutor) *AdviGRPCServer {
	return &AdviGRPCServer{
		store:    store,
		Executor: executor,
	}
}

func (s *AdviGRPCServer) CreateRun(ctx context.Context, req *adviv1.CreateRunRequest) (*adviv1.CreateRunResponse, error) {
	if req == nil || req.Input == nil {
		return nil, status.Error(codes.InvalidArgument, "input is required")
	}
	if req.Input.ExperimentYaml == "" {
		return nil, status.Error(codes.InvalidArgument, "experiment_yaml is required")
	}

	rec, err := s.store.Create(req.RunId, req.Input)
	if err != nil {
		return nil, status.Error(codes.AlreadyExists, err.Error())
	}

	logger.Info("run created", "run_id", rec.Run.Id)
	return &adviv1.CreateRunResponse{Run: rec.Run}, nil
}

func (s *AdviGRPCServer) StartRun(ctx context.Context, req *adviv1.StartRunRequest) (*adviv1.StartRunResponse, error) {
	if req == nil || req.RunId == "" {
		return nil, status.Error(codes.InvalidArgument, "run_id is required")
	}

	updated, err := s.Executor.Start(req.RunId)
	if err != nil {
		if errors.Is(err, ErrRunNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		if errors.Is(err, ErrRunTerminal) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	logger.Info("run started", "run_id", req.RunId)
	return &adviv1.StartRunResponse{Run: updated.Run}, nil
}

func (s *AdviGRPCServer) StopRun(ctx context.Context, req *adviv1.StopRunRequest) (*adviv1.StopRunResponse, error) {
	if req == nil || req.RunId == "" {
		return nil, status.Error(codes.InvalidArgument, "run_id is required")
	}

	updated, err := s.Executor.Stop(req.RunId)
	if err != nil {
		if errors.Is(err, ErrRunNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		if errors.Is(err, ErrRunIDMissing) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	logger.Info("run cancelled", "run_id", req.RunId)
	return &adviv1.StopRunResponse{Run: updated.Run}, nil
}

func (s *AdviGRPCServer) GetRun(ctx context.Context, req *adviv1.GetRunRequest) (*adviv1.GetRunResponse, error) {
	if req == nil || req.RunId == "" {
		return nil, status.Error(codes.InvalidArgument, "run_id is required")
	}
	rec, ok := s.store.Get(req.RunId)
	if !ok {
		return nil, status.Error(codes.NotFound, "run not found")
	}
	return &adviv1.GetRunResponse{Run: rec.Run}, nil
}

func (s *AdviGRPCServer) ListRuns(ctx context.Context, req *adviv1.ListRunsRequest) (*adviv1.ListRunsResponse, error) {
	limit := 50
	if req != nil && req.Limit > 0 {
		limit = int(req.Limit)
	}
	recs := s.store.List(limit)
	runs := make([]*adviv1.Run, 0, len(recs))
	for _, rec := range recs {
		runs = append(runs, rec.Run)
	}
	return &adviv1.ListRunsResponse{Runs: runs}, nil
}

func (s *AdviGRPCServer) GetRunResult(ctx context.Context, req *adviv1.GetRunResultRequest) (*adviv1.GetRunResultResponse, error) {
	if req == nil || req.RunId == "" {
		return nil, status.Error(codes.InvalidArgument, "run_id is required")
	}
	rec, ok := s.store.Get(req.RunId)
	if !ok {
		return nil, status.Error(codes.NotFound, "run not found")
	}
	if rec.Result == nil {
		return nil, status.Error(codes.FailedPrecondition, "result not available")
	}
	return &adviv1.GetRunResultResponse{Result: rec.Result}, nil
}

func (s *AdviGRPCServer) GetRunTrace(ctx context.Context, req *adviv1.GetRunTraceRequest) (*adviv1.GetRunTraceResponse, error) {
	if req == nil || req.RunId == "" {
		return nil, status.Error(codes.InvalidArgument, "run_id is required")
	}
	points, ok := s.store.Trace(req.RunId)
	if !ok {
		return nil, status.Error(codes.NotFound, "run not found")
	}
	return &adviv1.GetRunTraceResponse{Points: points}, nil
}

func isTerminal(st adviv1.RunStatus) bool {
	switch st {
	case adviv1.RunStatus_RUN_STATUS_COMPLETED,
		adviv1.RunStatus_RUN_STATUS_FAILED,
		adviv1.RunStatus_RUN_STATUS_CANCELLED:
		return true
	}
	return false
}

// StreamRunTrace sends trace points as they are recorded, polling the store
// until the run reaches a terminal status.
func (s *AdviGRPCServer) StreamRunTrace(req *adviv1.StreamRunTraceRequest, stream adviv1.AdviService_StreamRunTraceServer) error {
	if req == nil || req.RunId == "" {
		return status.Error(codes.InvalidArgument, "run_id is required")
	}

	if _, ok := s.store.Get(req.RunId); !ok {
		return status.Error(codes.NotFound, "run not found")
	}

	interval := 200 * time.Millisecond
	if req.PollIntervalMs > 0 {
		interval = time.Duration(req.PollIntervalMs) * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sent := 0
	for {
		rec, ok := s.store.Get(req.RunId)
		if !ok {
			return status.Error(codes.NotFound, "run not found")
		}
		curStatus := rec.Run.Status

		points, _ := s.store.Trace(req.RunId)
		for ; sent < len(points); sent++ {
			if err := stream.Send(&adviv1.StreamRunTraceResponse{
				Status: curStatus,
				Point:  points[sent],
			}); err != nil {
				return err
			}
		}

		if isTerminal(curStatus) {
			// Final status-only message so clients see the terminal state
			// even when no new points arrived this tick.
			return stream.Send(&adviv1.StreamRunTraceResponse{Status: curStatus})
		}

		select {
		case <-stream.Context().Done():
			return stream.Context().Err()
		case <-ticker.C:
		}
	}
}
