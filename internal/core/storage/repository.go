package storage

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a keyed lookup matches no row.
var ErrNotFound = errors.New("record not found")

// SaleFact is one immutable ledger entry: a quantity of one product sold by
// one shop at one point in time. Facts are appended once per (order, product)
// pairing and never updated or deleted; popularity is always recomputed fresh
// from these rows.
type SaleFact struct {
	// SaleSeq is the monotonic sequence assigned on append.
	// Set by database (BIGSERIAL), not exposed in public API.
	SaleSeq int64

	// Shop is the tenant key. All ledger state is partitioned per shop.
	Shop string

	// ProductID is the platform's numeric product identifier.
	ProductID uint64

	// Quantity is the number of units sold. Always positive; zero-quantity
	// facts are never fabricated.
	Quantity int64

	// Revenue is quantity times unit price at the time of the order.
	Revenue decimal.Decimal

	// OccurredAt is when the order was placed (drives windowing).
	OccurredAt time.Time

	// RecordedAt is when this service appended the fact.
	RecordedAt time.Time
}

// ProductSales is one row of a windowed group-and-aggregate over the ledger.
type ProductSales struct {
	ProductID     uint64
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
}

// PopularityRecord designates the current most-popular product for a shop.
// At most one row exists per shop.
type PopularityRecord struct {
	Shop      string
	ProductID uint64
	UpdatedAt time.Time
}

// Session is the offline access grant for a shop, written by the OAuth flow
// and read here to authorize external catalog calls.
type Session struct {
	Shop        string
	AccessToken string
	Scope       string
	InstalledAt time.Time
	UpdatedAt   time.Time
}

// SaleLedger is the append-only sales fact store.
type SaleLedger interface {
	// AppendSale persists one fact and returns its sale_seq.
	AppendSale(ctx context.Context, fact *SaleFact) (int64, error)

	// SumQuantityByProduct aggregates facts for one shop with
	// occurred_at in [from, to), grouped by product, ordered by total
	// quantity descending then product id ascending (deterministic
	// tie-break: lowest product id wins). limit bounds the result.
	SumQuantityByProduct(ctx context.Context, shop string, from, to time.Time, limit int) ([]ProductSales, error)
}

// PopularityStore holds the single most-popular designation per shop.
type PopularityStore interface {
	// Get returns the current record for shop, or ErrNotFound.
	Get(ctx context.Context, shop string) (*PopularityRecord, error)

	// Upsert creates or replaces the record for shop. Atomic per row;
	// concurrent upserts resolve last-writer-wins.
	Upsert(ctx context.Context, shop string, productID uint64) error
}

// SessionStore resolves the stored access grant for a shop.
type SessionStore interface {
	// Get returns the session for shop, or ErrNotFound when the shop has
	// not installed the app (or was uninstalled).
	Get(ctx context.Context, shop string) (*Session, error)
}
