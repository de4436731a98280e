package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/herd-lab/follow-the-herd/internal/core/storage"
)

// PopularityAdapter implements storage.PopularityStore for PostgreSQL.
// It shares the ledger adapter's connection pool.
type PopularityAdapter struct {
	db *sql.DB
}

// NewPopularityAdapter creates a popularity store on an existing connection.
func NewPopularityAdapter(db *sql.DB) *PopularityAdapter {
	return &PopularityAdapter{db: db}
}

// Get returns the current popularity record for shop, or storage.ErrNotFound.
func (a *PopularityAdapter) Get(ctx context.Context, shop string) (*storage.PopularityRecord, error) {
	rec, err := scanPopularityRow(a.db.QueryRowContext(ctx, queryGetPopularity, shop))
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get popularity record: %w", err)
	}
	return rec, nil
}

// Upsert creates or replaces the popularity record for shop.
// The ON CONFLICT upsert is atomic per row, so racing recomputations
// resolve last-writer-wins without application-level locking.
func (a *PopularityAdapter) Upsert(ctx context.Context, shop string, productID uint64) error {
	if _, err := a.db.ExecContext(ctx, queryUpsertPopularity, shop, int64(productID), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to upsert popularity record: %w", err)
	}

	slog.Debug("[Postgres] Upserted popularity record",
		"shop", shop,
		"product_id", productID)
	return nil
}
