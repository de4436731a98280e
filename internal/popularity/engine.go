package popularity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/herd-lab/follow-the-herd/internal/core/storage"
)

// Result reports the outcome of one recomputation.
type Result struct {
	// Previous is the product designated before this recomputation,
	// nil when the shop had no designation yet.
	Previous *uint64

	// Updated is the product the trailing window selects, nil when the
	// window holds no facts at all.
	Updated *uint64

	// Changed is true when the designation was rewritten.
	Changed bool
}

// Engine recomputes the most-popular designation for a shop from the ledger.
// Every call re-scans the trailing window; no running totals are kept, which
// makes recomputation idempotent and safe under ledger replay or backfill.
type Engine struct {
	ledger     storage.SaleLedger
	popularity storage.PopularityStore
	nowFn      func() time.Time
}

func NewEngine(ledger storage.SaleLedger, popularity storage.PopularityStore) *Engine {
	if ledger == nil {
		panic("popularity: ledger must not be nil")
	}
	if popularity == nil {
		panic("popularity: popularity store must not be nil")
	}
	return &Engine{
		ledger:     ledger,
		popularity: popularity,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Window returns the trailing window for a computation at now: the most
// recent calendar month ending at now.
func Window(now time.Time) (from, to time.Time) {
	return now.AddDate(0, -1, 0), now
}

// Recompute selects the top product by summed quantity over the trailing
// window and rewrites the shop's designation if it changed. When the winner
// is unchanged no write happens, so no external reconciliation is triggered
// downstream. An empty window leaves any existing designation untouched.
func (e *Engine) Recompute(ctx context.Context, shop string) (Result, error) {
	var previous *uint64
	current, err := e.popularity.Get(ctx, shop)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return Result{}, fmt.Errorf("reading popularity record: %w", err)
	}
	if current != nil {
		previous = &current.ProductID
	}

	now := e.nowFn()
	from, to := Window(now)

	// The store orders by total quantity descending with lowest product id
	// breaking ties, so one row is the full answer.
	top, err := e.ledger.SumQuantityByProduct(ctx, shop, from, to, 1)
	if err != nil {
		return Result{}, fmt.Errorf("querying sales window: %w", err)
	}

	if len(top) == 0 {
		slog.Debug("No sales in trailing window", "shop", shop, "from", from, "to", to)
		return Result{Previous: previous}, nil
	}

	winner := top[0].ProductID
	if previous != nil && *previous == winner {
		return Result{Previous: previous, Updated: &winner}, nil
	}

	if err := e.popularity.Upsert(ctx, shop, winner); err != nil {
		return Result{}, fmt.Errorf("upserting popularity record: %w", err)
	}

	slog.Info("Most popular product changed",
		"shop", shop,
		"previous", formatProductID(previous),
		"updated", winner,
		"window_quantity", top[0].TotalQuantity)

	return Result{Previous: previous, Updated: &winner, Changed: true}, nil
}

func formatProductID(id *uint64) any {
	if id == nil {
		return "none"
	}
	return *id
}
