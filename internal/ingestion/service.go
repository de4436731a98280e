package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/herd-lab/follow-the-herd/internal/api/v1"
	"github.com/herd-lab/follow-the-herd/internal/catalog"
	"github.com/herd-lab/follow-the-herd/internal/core/storage"
	"github.com/herd-lab/follow-the-herd/internal/popularity"
	"github.com/gin-gonic/gin"
)

// ErrAuthorizationMissing marks an event rejected before any stage ran
// because no session/auth context exists for the shop. This is the only
// error kind that propagates to the webhook caller.
var ErrAuthorizationMissing = errors.New("authorization context missing for shop")

// ErrMalformedEvent marks a payload missing the structure attribution needs.
// The event is still acknowledged; recomputation proceeds on existing ledger
// state.
var ErrMalformedEvent = errors.New("malformed order payload")

// Stage names the steps of the ingestion pipeline.
type Stage string

const (
	StageReceived    Stage = "received"
	StageAttributing Stage = "attributing"
	StageRecomputing Stage = "recomputing"
	StageReconciling Stage = "reconciling"
	StageDone        Stage = "done"
)

// StageResult is the explicit success/failure value of one pipeline stage.
// Failure tolerance lives here in the type, not in suppressed panics: the
// orchestrator collects these and logs them, and a failed stage never stops
// the next stage from running.
type StageResult struct {
	Stage Stage
	Err   error
}

// Status is the terminal disposition of one event.
type Status string

const (
	// OutcomeProcessed means the event reached StageDone. Partial stage
	// failures are carried in Stages; the event is still acknowledged,
	// because a non-acknowledgement would make the upstream redeliver the
	// event and duplicate ledger facts.
	OutcomeProcessed Status = "processed"

	// OutcomeRejected means the auth gate short-circuited before any stage.
	OutcomeRejected Status = "rejected"
)

// Outcome is the result of handling one order event.
type Outcome struct {
	Status Status
	Stages []StageResult
}

// Failed reports whether any stage recorded an error.
func (o Outcome) Failed() bool {
	for _, s := range o.Stages {
		if s.Err != nil {
			return true
		}
	}
	return false
}

// SalesRecorder is the attribution stage boundary.
type SalesRecorder interface {
	RecordSales(ctx context.Context, shop string, order *v1.OrderEvent) (int, error)
}

// PopularityRecomputer is the recomputation stage boundary.
type PopularityRecomputer interface {
	Recompute(ctx context.Context, shop string) (popularity.Result, error)
}

// MarkerReconciler is the reconciliation stage boundary.
type MarkerReconciler interface {
	Reconcile(ctx context.Context, auth *catalog.AuthContext, shop string, previous, updated *uint64) error
}

// Service orchestrates webhook ingestion: decode, auth gate, then
// Attribution -> Recomputation -> Reconciliation with per-stage failure
// isolation.
type Service struct {
	sessions         storage.SessionStore
	recorder         SalesRecorder
	recomputer       PopularityRecomputer
	reconciler       MarkerReconciler
	maxBodySizeBytes int
}

func NewService(
	sessions storage.SessionStore,
	recorder SalesRecorder,
	recomputer PopularityRecomputer,
	reconciler MarkerReconciler,
	maxBodySizeMB int,
) *Service {
	if sessions == nil {
		panic("ingestion: session store must not be nil")
	}
	if recorder == nil {
		panic("ingestion: sales recorder must not be nil")
	}
	if recomputer == nil {
		panic("ingestion: popularity recomputer must not be nil")
	}
	if reconciler == nil {
		panic("ingestion: marker reconciler must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		sessions:         sessions,
		recorder:         recorder,
		recomputer:       recomputer,
		reconciler:       reconciler,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
	}
}

// RegisterRoutes registers the webhook ingestion routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/webhooks/orders-create", s.OrdersCreateHandler)
}

// HandleOrderEvent runs the pipeline for one decoded (or undecodable) order.
// order may be nil when the payload could not be decoded; the attribution
// stage then records a malformed-event failure and recomputation still runs
// against existing ledger state.
//
// A nil auth context short-circuits to a rejected outcome before any stage.
// Otherwise the terminal state is always Done: each stage's error is
// collected and logged, never re-raised, so the event is acknowledged even
// on partial failure.
func (s *Service) HandleOrderEvent(
	ctx context.Context,
	shop string,
	deliveryID string,
	auth *catalog.AuthContext,
	order *v1.OrderEvent,
) Outcome {
	if auth == nil {
		slog.Warn("Rejected order event: no auth context",
			"shop", shop,
			"delivery_id", deliveryID)
		return Outcome{
			Status: OutcomeRejected,
			Stages: []StageResult{{Stage: StageReceived, Err: ErrAuthorizationMissing}},
		}
	}

	stages := []StageResult{{Stage: StageReceived}}

	stages = append(stages, s.attribute(ctx, shop, deliveryID, order))

	recomputeResult, recomputeStage := s.recompute(ctx, shop, deliveryID)
	stages = append(stages, recomputeStage)

	if recomputeStage.Err == nil && recomputeResult.Changed && recomputeResult.Updated != nil {
		stages = append(stages, s.reconcile(ctx, auth, shop, deliveryID, recomputeResult))
	}

	stages = append(stages, StageResult{Stage: StageDone})

	outcome := Outcome{Status: OutcomeProcessed, Stages: stages}
	if outcome.Failed() {
		slog.Warn("Order event processed with partial failure",
			"shop", shop,
			"delivery_id", deliveryID)
	}
	return outcome
}

// attribute runs the attribution stage. Sales data is best-effort relative
// to webhook acknowledgement, so every failure here is non-fatal.
func (s *Service) attribute(ctx context.Context, shop, deliveryID string, order *v1.OrderEvent) StageResult {
	result := StageResult{Stage: StageAttributing}

	if order == nil {
		result.Err = ErrMalformedEvent
	} else if err := order.Validate(); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if result.Err != nil {
		slog.Warn("Attribution skipped: malformed payload",
			"shop", shop,
			"delivery_id", deliveryID,
			"error", result.Err)
		return result
	}

	appended, err := s.recorder.RecordSales(ctx, shop, order)
	if err != nil {
		slog.Error("Attribution stage failed",
			"shop", shop,
			"delivery_id", deliveryID,
			"appended", appended,
			"error", err)
		result.Err = err
	}
	return result
}

func (s *Service) recompute(ctx context.Context, shop, deliveryID string) (popularity.Result, StageResult) {
	result, err := s.recomputer.Recompute(ctx, shop)
	if err != nil {
		slog.Error("Recomputation stage failed",
			"shop", shop,
			"delivery_id", deliveryID,
			"error", err)
		return popularity.Result{}, StageResult{Stage: StageRecomputing, Err: err}
	}
	return result, StageResult{Stage: StageRecomputing}
}

// reconcile pushes the transition to the external catalog. Errors here are
// recorded and logged only: the local popularity record is already committed
// and stays authoritative, while the external flag may transiently lag.
func (s *Service) reconcile(
	ctx context.Context,
	auth *catalog.AuthContext,
	shop string,
	deliveryID string,
	result popularity.Result,
) StageResult {
	if err := s.reconciler.Reconcile(ctx, auth, shop, result.Previous, result.Updated); err != nil {
		slog.Error("Reconciliation stage failed",
			"shop", shop,
			"delivery_id", deliveryID,
			"error", err)
		return StageResult{Stage: StageReconciling, Err: err}
	}
	return StageResult{Stage: StageReconciling}
}
