package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/herd-lab/follow-the-herd/internal/catalog"
)

// Reconciler pushes a popularity transition to the external catalog: clear
// the marker on the product losing the designation, set it on the winner.
// The local popularity record is already committed before this runs and
// stays the source of truth; the external flag is best-effort and may lag
// until the next transition re-issues calls.
type Reconciler struct {
	markers catalog.API
}

func NewReconciler(markers catalog.API) *Reconciler {
	if markers == nil {
		panic("reconcile: marker API must not be nil")
	}
	return &Reconciler{markers: markers}
}

// Reconcile applies a transition. The clear and set calls are attempted
// independently: a failed clear never blocks the set. Both calls are
// idempotent on the platform side. The returned error (possibly joining
// both failures) is for logging only; callers must not fail the event on it
// and no rollback of local state happens here.
func (r *Reconciler) Reconcile(ctx context.Context, auth *catalog.AuthContext, shop string, previous, updated *uint64) error {
	if updated == nil {
		return nil
	}

	var callErrs []error

	if previous != nil && *previous != *updated {
		if err := r.markers.SetMarker(ctx, auth, *previous, false); err != nil {
			slog.Warn("Failed to clear previous popularity marker",
				"shop", shop,
				"product_id", *previous,
				"error", err)
			callErrs = append(callErrs, fmt.Errorf("clear marker on product %d: %w", *previous, err))
		}
	}

	if err := r.markers.SetMarker(ctx, auth, *updated, true); err != nil {
		slog.Warn("Failed to set popularity marker",
			"shop", shop,
			"product_id", *updated,
			"error", err)
		callErrs = append(callErrs, fmt.Errorf("set marker on product %d: %w", *updated, err))
	}

	if len(callErrs) == 0 {
		slog.Info("Reconciled popularity marker",
			"shop", shop,
			"previous", previousLabel(previous),
			"updated", *updated)
	}

	return errors.Join(callErrs...)
}

func previousLabel(previous *uint64) any {
	if previous == nil {
		return "none"
	}
	return *previous
}
