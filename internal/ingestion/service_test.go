package ingestion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	v1 "github.com/herd-lab/follow-the-herd/internal/api/v1"
	"github.com/herd-lab/follow-the-herd/internal/catalog"
	storagemocks "github.com/herd-lab/follow-the-herd/internal/mocks/storage"
	"github.com/herd-lab/follow-the-herd/internal/popularity"
)

const testShop = "herd-demo.myshopify.com"

type stubRecorder struct {
	appended int
	err      error

	calls  int
	orders []*v1.OrderEvent
}

func (s *stubRecorder) RecordSales(_ context.Context, _ string, order *v1.OrderEvent) (int, error) {
	s.calls++
	s.orders = append(s.orders, order)
	return s.appended, s.err
}

type stubRecomputer struct {
	result popularity.Result
	err    error

	calls int
}

func (s *stubRecomputer) Recompute(context.Context, string) (popularity.Result, error) {
	s.calls++
	return s.result, s.err
}

type stubReconciler struct {
	err error

	calls    int
	previous *uint64
	updated  *uint64
}

func (s *stubReconciler) Reconcile(_ context.Context, _ *catalog.AuthContext, _ string, previous, updated *uint64) error {
	s.calls++
	s.previous = previous
	s.updated = updated
	return s.err
}

func uint64Ptr(v uint64) *uint64 { return &v }

func validOrder() *v1.OrderEvent {
	return &v1.OrderEvent{ID: 1001, Name: "#1001", LineItems: []v1.LineItem{}}
}

func testAuth() *catalog.AuthContext {
	return &catalog.AuthContext{Shop: testShop, AccessToken: "shpat_test"}
}

func newTestService(t *testing.T, recorder *stubRecorder, recomputer *stubRecomputer, reconciler *stubReconciler) *Service {
	t.Helper()
	return NewService(storagemocks.NewSessionStore(t), recorder, recomputer, reconciler, 1)
}

func stageErr(t *testing.T, outcome Outcome, stage Stage) error {
	t.Helper()
	for _, s := range outcome.Stages {
		if s.Stage == stage {
			return s.Err
		}
	}
	t.Fatalf("stage %q not found in outcome", stage)
	return nil
}

func TestService_HandleOrderEventNoAuthRejects(t *testing.T) {
	recorder := &stubRecorder{}
	recomputer := &stubRecomputer{}
	reconciler := &stubReconciler{}
	svc := newTestService(t, recorder, recomputer, reconciler)

	outcome := svc.HandleOrderEvent(context.Background(), testShop, "d-1", nil, validOrder())

	require.Equal(t, OutcomeRejected, outcome.Status)
	require.Len(t, outcome.Stages, 1)
	require.ErrorIs(t, outcome.Stages[0].Err, ErrAuthorizationMissing)
	require.Zero(t, recorder.calls)
	require.Zero(t, recomputer.calls)
	require.Zero(t, reconciler.calls)
}

func TestService_HandleOrderEventUnchangedSkipsReconcile(t *testing.T) {
	recorder := &stubRecorder{appended: 2}
	recomputer := &stubRecomputer{result: popularity.Result{
		Previous: uint64Ptr(20),
		Updated:  uint64Ptr(20),
		Changed:  false,
	}}
	reconciler := &stubReconciler{}
	svc := newTestService(t, recorder, recomputer, reconciler)

	outcome := svc.HandleOrderEvent(context.Background(), testShop, "d-2", testAuth(), validOrder())

	require.Equal(t, OutcomeProcessed, outcome.Status)
	require.False(t, outcome.Failed())
	require.Equal(t, 1, recorder.calls)
	require.Equal(t, 1, recomputer.calls)
	require.Zero(t, reconciler.calls)
	require.Equal(t, StageDone, outcome.Stages[len(outcome.Stages)-1].Stage)
}

func TestService_HandleOrderEventChangedRunsReconcile(t *testing.T) {
	recorder := &stubRecorder{appended: 1}
	recomputer := &stubRecomputer{result: popularity.Result{
		Previous: uint64Ptr(20),
		Updated:  uint64Ptr(10),
		Changed:  true,
	}}
	reconciler := &stubReconciler{}
	svc := newTestService(t, recorder, recomputer, reconciler)

	outcome := svc.HandleOrderEvent(context.Background(), testShop, "d-3", testAuth(), validOrder())

	require.Equal(t, OutcomeProcessed, outcome.Status)
	require.False(t, outcome.Failed())
	require.Equal(t, 1, reconciler.calls)
	require.Equal(t, uint64(20), *reconciler.previous)
	require.Equal(t, uint64(10), *reconciler.updated)
}

func TestService_HandleOrderEventNilOrderStillRecomputes(t *testing.T) {
	recorder := &stubRecorder{}
	recomputer := &stubRecomputer{}
	reconciler := &stubReconciler{}
	svc := newTestService(t, recorder, recomputer, reconciler)

	outcome := svc.HandleOrderEvent(context.Background(), testShop, "d-4", testAuth(), nil)

	require.Equal(t, OutcomeProcessed, outcome.Status)
	require.ErrorIs(t, stageErr(t, outcome, StageAttributing), ErrMalformedEvent)
	require.Zero(t, recorder.calls)
	require.Equal(t, 1, recomputer.calls)
}

func TestService_HandleOrderEventInvalidOrderSkipsRecorder(t *testing.T) {
	recorder := &stubRecorder{}
	recomputer := &stubRecomputer{}
	reconciler := &stubReconciler{}
	svc := newTestService(t, recorder, recomputer, reconciler)

	outcome := svc.HandleOrderEvent(context.Background(), testShop, "d-5", testAuth(), &v1.OrderEvent{ID: 7})

	require.Equal(t, OutcomeProcessed, outcome.Status)
	require.ErrorIs(t, stageErr(t, outcome, StageAttributing), ErrMalformedEvent)
	require.Zero(t, recorder.calls)
	require.Equal(t, 1, recomputer.calls)
}

func TestService_HandleOrderEventAttributionFailureStillRecomputes(t *testing.T) {
	recordErr := errors.New("connection reset")
	recorder := &stubRecorder{err: recordErr}
	recomputer := &stubRecomputer{result: popularity.Result{
		Updated: uint64Ptr(10),
		Changed: true,
	}}
	reconciler := &stubReconciler{}
	svc := newTestService(t, recorder, recomputer, reconciler)

	outcome := svc.HandleOrderEvent(context.Background(), testShop, "d-6", testAuth(), validOrder())

	require.Equal(t, OutcomeProcessed, outcome.Status)
	require.True(t, outcome.Failed())
	require.ErrorIs(t, stageErr(t, outcome, StageAttributing), recordErr)
	require.Equal(t, 1, recomputer.calls)
	require.Equal(t, 1, reconciler.calls)
}

func TestService_HandleOrderEventRecomputeFailureSkipsReconcile(t *testing.T) {
	recorder := &stubRecorder{appended: 1}
	recomputeErr := errors.New("deadlock detected")
	recomputer := &stubRecomputer{err: recomputeErr}
	reconciler := &stubReconciler{}
	svc := newTestService(t, recorder, recomputer, reconciler)

	outcome := svc.HandleOrderEvent(context.Background(), testShop, "d-7", testAuth(), validOrder())

	require.Equal(t, OutcomeProcessed, outcome.Status)
	require.True(t, outcome.Failed())
	require.ErrorIs(t, stageErr(t, outcome, StageRecomputing), recomputeErr)
	require.Zero(t, reconciler.calls)
	require.Equal(t, StageDone, outcome.Stages[len(outcome.Stages)-1].Stage)
}

func TestService_HandleOrderEventReconcileFailureStillProcessed(t *testing.T) {
	recorder := &stubRecorder{appended: 1}
	recomputer := &stubRecomputer{result: popularity.Result{
		Updated: uint64Ptr(10),
		Changed: true,
	}}
	reconcileErr := errors.New("throttled")
	reconciler := &stubReconciler{err: reconcileErr}
	svc := newTestService(t, recorder, recomputer, reconciler)

	outcome := svc.HandleOrderEvent(context.Background(), testShop, "d-8", testAuth(), validOrder())

	require.Equal(t, OutcomeProcessed, outcome.Status)
	require.True(t, outcome.Failed())
	require.ErrorIs(t, stageErr(t, outcome, StageReconciling), reconcileErr)
	require.Equal(t, StageDone, outcome.Stages[len(outcome.Stages)-1].Stage)
}

func TestNewService_NilDependenciesPanic(t *testing.T) {
	sessions := storagemocks.NewSessionStore(t)
	recorder := &stubRecorder{}
	recomputer := &stubRecomputer{}
	reconciler := &stubReconciler{}

	require.Panics(t, func() { NewService(nil, recorder, recomputer, reconciler, 1) })
	require.Panics(t, func() { NewService(sessions, nil, recomputer, reconciler, 1) })
	require.Panics(t, func() { NewService(sessions, recorder, nil, reconciler, 1) })
	require.Panics(t, func() { NewService(sessions, recorder, recomputer, nil, 1) })
}
