package rankings

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/herd-lab/follow-the-herd/internal/catalog"
	"github.com/herd-lab/follow-the-herd/internal/core/storage"
	"github.com/herd-lab/follow-the-herd/internal/popularity"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const titleLookupConcurrency = 4

// Ranking is one row of the top-selling products view.
type Ranking struct {
	Rank          int             `json:"rank"`
	ProductID     uint64          `json:"product_id"`
	Title         string          `json:"title"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// Service serves the dashboard's top-selling-products view: the trailing
// window's ledger aggregation joined with product titles from the catalog.
type Service struct {
	ledger         storage.SaleLedger
	sessions       storage.SessionStore
	catalog        catalog.API
	defaultLimit   int
	titleBatchSize int
	nowFn          func() time.Time
}

func NewService(
	ledger storage.SaleLedger,
	sessions storage.SessionStore,
	catalogAPI catalog.API,
	defaultLimit int,
	titleBatchSize int,
) *Service {
	if ledger == nil {
		panic("rankings: ledger must not be nil")
	}
	if sessions == nil {
		panic("rankings: session store must not be nil")
	}
	if catalogAPI == nil {
		panic("rankings: catalog API must not be nil")
	}
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	if titleBatchSize <= 0 {
		titleBatchSize = 50
	}
	return &Service{
		ledger:         ledger,
		sessions:       sessions,
		catalog:        catalogAPI,
		defaultLimit:   defaultLimit,
		titleBatchSize: titleBatchSize,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// TopProducts returns the top-selling products for shop over the trailing
// window, titles included. Title lookup is best-effort: when the catalog is
// unreachable the rankings still come back with placeholder titles rather
// than failing the whole query.
func (s *Service) TopProducts(ctx context.Context, auth *catalog.AuthContext, shop string, limit int) ([]Ranking, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	now := s.nowFn()
	from, to := popularity.Window(now)

	totals, err := s.ledger.SumQuantityByProduct(ctx, shop, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sales window: %w", err)
	}
	if len(totals) == 0 {
		return []Ranking{}, nil
	}

	ids := make([]uint64, 0, len(totals))
	for _, row := range totals {
		ids = append(ids, row.ProductID)
	}

	titles := s.lookupTitles(ctx, auth, shop, ids)

	result := make([]Ranking, 0, len(totals))
	for i, row := range totals {
		title, ok := titles[row.ProductID]
		if !ok || title == "" {
			title = fmt.Sprintf("Product %d", row.ProductID)
		}
		result = append(result, Ranking{
			Rank:          i + 1,
			ProductID:     row.ProductID,
			Title:         title,
			TotalQuantity: row.TotalQuantity,
			TotalRevenue:  row.TotalRevenue,
		})
	}

	return result, nil
}

// lookupTitles fetches titles in bounded-concurrency batches. Failures are
// logged and degrade to placeholders upstream.
func (s *Service) lookupTitles(ctx context.Context, auth *catalog.AuthContext, shop string, ids []uint64) map[uint64]string {
	titles := make(map[uint64]string, len(ids))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(titleLookupConcurrency)

	for start := 0; start < len(ids); start += s.titleBatchSize {
		end := start + s.titleBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		g.Go(func() error {
			batchTitles, err := s.catalog.ProductTitles(gctx, auth, batch)
			if err != nil {
				return err
			}

			mu.Lock()
			for id, title := range batchTitles {
				titles[id] = title
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Warn("Product title lookup failed, using placeholders",
			"shop", shop,
			"products", len(ids),
			"error", err)
	}

	return titles
}
