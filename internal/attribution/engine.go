package attribution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	v1 "github.com/herd-lab/follow-the-herd/internal/api/v1"
	"github.com/herd-lab/follow-the-herd/internal/core/storage"
	"github.com/shopspring/decimal"
)

// Engine turns a decoded order into ledger facts: one fact per distinct
// product in the order, quantities summed across line items.
type Engine struct {
	ledger storage.SaleLedger
	nowFn  func() time.Time
}

func NewEngine(ledger storage.SaleLedger) *Engine {
	if ledger == nil {
		panic("attribution: ledger must not be nil")
	}
	return &Engine{
		ledger: ledger,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

type productTotals struct {
	quantity int64
	revenue  decimal.Decimal
}

// RecordSales aggregates the order's line items per product and appends one
// SaleFact per distinct product. Line items without a product id, or with a
// non-positive quantity, contribute nothing. A failed append does not stop
// the remaining appends; the joined error lists every product that failed.
// Returns the number of facts appended.
func (e *Engine) RecordSales(ctx context.Context, shop string, order *v1.OrderEvent) (int, error) {
	totals := make(map[uint64]productTotals)
	for _, item := range order.LineItems {
		if item.ProductID == nil || item.Quantity <= 0 {
			continue
		}

		t := totals[*item.ProductID]
		t.quantity += item.Quantity
		t.revenue = t.revenue.Add(item.Price.Mul(decimal.NewFromInt(item.Quantity)))
		totals[*item.ProductID] = t
	}

	if len(totals) == 0 {
		return 0, nil
	}

	occurredAt := order.CreatedAt
	if occurredAt.IsZero() {
		occurredAt = e.nowFn()
	}

	// Stable append order keeps logs and tests deterministic.
	productIDs := make([]uint64, 0, len(totals))
	for id := range totals {
		productIDs = append(productIDs, id)
	}
	sort.Slice(productIDs, func(i, j int) bool { return productIDs[i] < productIDs[j] })

	appended := 0
	var appendErrs []error
	for _, id := range productIDs {
		t := totals[id]
		fact := &storage.SaleFact{
			Shop:       shop,
			ProductID:  id,
			Quantity:   t.quantity,
			Revenue:    t.revenue,
			OccurredAt: occurredAt,
			RecordedAt: e.nowFn(),
		}

		if _, err := e.ledger.AppendSale(ctx, fact); err != nil {
			slog.Warn("Failed to append sale fact",
				"shop", shop,
				"order_id", order.ID,
				"product_id", id,
				"error", err)
			appendErrs = append(appendErrs, fmt.Errorf("product %d: %w", id, err))
			continue
		}

		appended++
	}

	slog.Info("Recorded product sales",
		"shop", shop,
		"order_id", order.ID,
		"order_name", order.Name,
		"products", len(productIDs),
		"appended", appended)

	return appended, errors.Join(appendErrs...)
}
