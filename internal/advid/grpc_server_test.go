package advid

import (
	"context"
	"testing"
	"time"

	adviv1 "github.com/vbinfer/advi-core/gen/go/advi/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestGRPCServer() (*AdviGRPCServer, *RunStore) {
	store := NewRunStore()
	executor := NewRunExecutor(store, nil)
	return NewAdviGRPCServer(store, executor), store
}

func TestGRPCServerCreateStartResultLifecycle(t *testing.T) {
	srv, store := newTestGRPCServer()
	ctx := context.Background()

	createResp, err := srv.CreateRun(ctx, &adviv1.CreateRunRequest{
		Input: &adviv1.RunInput{ExperimentYaml: validExperimentYAML},
	})
	if err != nil {
		t.Fatalf("CreateRun error: %v", err)
	}
	if createResp.Run.Id == "" {
		t.Fatalf("expected run id")
	}

	// Result should not be available before the run completes.
	_, err = srv.GetRunResult(ctx, &adviv1.GetRunResultRequest{RunId: createResp.Run.Id})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition before completion, got %v", err)
	}

	if _, err := srv.StartRun(ctx, &adviv1.StartRunRequest{RunId: createResp.Run.Id}); err != nil {
		t.Fatalf("StartRun error: %v", err)
	}

	final := waitForTerminal(t, store, createResp.Run.Id)
	if final.Run.Status != adviv1.RunStatus_RUN_STATUS_COMPLETED {
		t.Fatalf("expected completed, got %v (error: %s)", final.Run.Status, final.Run.Error)
	}

	resultResp, err := srv.GetRunResult(ctx, &adviv1.GetRunResultRequest{RunId: createResp.Run.Id})
	if err != nil {
		t.Fatalf("GetRunResult error: %v", err)
	}
	if resultResp.Result == nil || resultResp.Result.Iterations != 500 {
		t.Fatalf("unexpected result: %v", resultResp.Result)
	}

	traceResp, err := srv.GetRunTrace(ctx, &adviv1.GetRunTraceRequest{RunId: createResp.Run.Id})
	if err != nil {
		t.Fatalf("GetRunTrace error: %v", err)
	}
	if len(traceResp.Points) == 0 {
		t.Fatalf("expected trace points")
	}
}

func TestGRPCServerCreateRunValidation(t *testing.T) {
	srv, _ := newTestGRPCServer()
	ctx := context.Background()

	_, err := srv.CreateRun(ctx, &adviv1.CreateRunRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for missing input, got %v", err)
	}

	_, err = srv.CreateRun(ctx, &adviv1.CreateRunRequest{Input: &adviv1.RunInput{}})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for empty experiment, got %v", err)
	}
}

func TestGRPCServerCreateRunDuplicate(t *testing.T) {
	srv, _ := newTestGRPCServer()
	ctx := context.Background()

	req := &adviv1.CreateRunRequest{
		RunId: "run-1",
		Input: &adviv1.RunInput{ExperimentYaml: validExperimentYAML},
	}
	if _, err := srv.CreateRun(ctx, req); err != nil {
		t.Fatalf("CreateRun error: %v", err)
	}
	_, err := srv.CreateRun(ctx, req)
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}
}

func TestGRPCServerStartUnknownRun(t *testing.T) {
	srv, _ := newTestGRPCServer()
	_, err := srv.StartRun(context.Background(), &adviv1.StartRunRequest{RunId: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestGRPCServerStopAndTerminalStart(t *testing.T) {
	srv, _ := newTestGRPCServer()
	ctx := context.Background()

	createResp, err := srv.CreateRun(ctx, &adviv1.CreateRunRequest{
		Input: &adviv1.RunInput{ExperimentYaml: validExperimentYAML},
	})
	if err != nil {
		t.Fatalf("CreateRun error: %v", err)
	}

	stopResp, err := srv.StopRun(ctx, &adviv1.StopRunRequest{RunId: createResp.Run.Id})
	if err != nil {
		t.Fatalf("StopRun error: %v", err)
	}
	if stopResp.Run.Status != adviv1.RunStatus_RUN_STATUS_CANCELLED {
		t.Fatalf("expected cancelled, got %v", stopResp.Run.Status)
	}

	_, err = srv.StartRun(ctx, &adviv1.StartRunRequest{RunId: createResp.Run.Id})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition for terminal run, got %v", err)
	}
}

func TestGRPCServerListRuns(t *testing.T) {
	srv, _ := newTestGRPCServer()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := srv.CreateRun(ctx, &adviv1.CreateRunRequest{
			Input: &adviv1.RunInput{ExperimentYaml: validExperimentYAML},
		}); err != nil {
			t.Fatalf("CreateRun error: %v", err)
		}
	}

	listResp, err := srv.ListRuns(ctx, &adviv1.ListRunsRequest{Limit: 3})
	if err != nil {
		t.Fatalf("ListRuns error: %v", err)
	}
	if len(listResp.Runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(listResp.Runs))
	}
}

type fakeTraceStream struct {
	ctx     context.Context
	sent    []*adviv1.StreamRunTraceResponse
	header  metadata.MD
	trailer metadata.MD
}

func (s *fakeTraceStream) Send(resp *adviv1.StreamRunTraceResponse) error {
	s.sent = append(s.sent, resp)
	return nil
}

func (s *fakeTraceStream) SetHeader(md metadata.MD) error  { s.header = md; return nil }
func (s *fakeTraceStream) SendHeader(md metadata.MD) error { s.header = md; return nil }
func (s *fakeTraceStream) SetTrailer(md metadata.MD)       { s.trailer = md }
func (s *fakeTraceStream) Context() context.Context        { return s.ctx }
func (s *fakeTraceStream) SendMsg(m any) error             { return nil }
func (s *fakeTraceStream) RecvMsg(m any) error             { return nil }

func TestGRPCServerStreamRunTraceDeliversPointsUntilTerminal(t *testing.T) {
	srv, store := newTestGRPCServer()
	ctx := context.Background()

	createResp, err := srv.CreateRun(ctx, &adviv1.CreateRunRequest{
		Input: &adviv1.RunInput{ExperimentYaml: validExperimentYAML},
	})
	if err != nil {
		t.Fatalf("CreateRun error: %v", err)
	}
	if _, err := srv.StartRun(ctx, &adviv1.StartRunRequest{RunId: createResp.Run.Id}); err != nil {
		t.Fatalf("StartRun error: %v", err)
	}

	stream := &fakeTraceStream{ctx: ctx}
	if err := srv.StreamRunTrace(&adviv1.StreamRunTraceRequest{
		RunId:          createResp.Run.Id,
		PollIntervalMs: 5,
	}, stream); err != nil {
		t.Fatalf("StreamRunTrace error: %v", err)
	}

	if len(stream.sent) == 0 {
		t.Fatalf("expected streamed responses")
	}
	last := stream.sent[len(stream.sent)-1]
	if !isTerminal(last.Status) {
		t.Fatalf("expected final response to carry a terminal status, got %v", last.Status)
	}

	// All recorded trace points must have been streamed, in order.
	points, _ := store.Trace(createResp.Run.Id)
	streamed := make([]*adviv1.TracePoint, 0, len(stream.sent))
	for _, resp := range stream.sent {
		if resp.Point != nil {
			streamed = append(streamed, resp.Point)
		}
	}
	if len(streamed) != len(points) {
		t.Fatalf("expected %d streamed points, got %d", len(points), len(streamed))
	}
	for i := range streamed {
		if streamed[i].Iteration != points[i].Iteration {
			t.Fatalf("point %d: iteration %d != %d", i, streamed[i].Iteration, points[i].Iteration)
		}
	}
}

func TestGRPCServerStreamRunTraceUnknownRun(t *testing.T) {
	srv, _ := newTestGRPCServer()
	stream := &fakeTraceStream{ctx: context.Background()}
	err := srv.StreamRunTrace(&adviv1.StreamRunTraceRequest{RunId: "missing"}, stream)
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestGRPCServerStreamRunTraceClientCancel(t *testing.T) {
	srv, _ := newTestGRPCServer()
	ctx := context.Background()

	createResp, err := srv.CreateRun(ctx, &adviv1.CreateRunRequest{
		Input: &adviv1.RunInput{ExperimentYaml: validExperimentYAML},
	})
	if err != nil {
		t.Fatalf("CreateRun error: %v", err)
	}

	streamCtx, cancel := context.WithCancel(ctx)
	stream := &fakeTraceStream{ctx: streamCtx}
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	// Run never starts, so the stream only exits via context cancellation.
	err = srv.StreamRunTrace(&adviv1.StreamRunTraceRequest{
		RunId:          createResp.Run.Id,
		PollIntervalMs: 5,
	}, stream)
	if err == nil {
		t.Fatalf("expected context error after cancel")
	}
}
