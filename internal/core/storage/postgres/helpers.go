package postgres

import (
	"fmt"

	"github.com/herd-lab/follow-the-herd/internal/core/storage"
	"github.com/shopspring/decimal"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanProductSalesRow scans one grouped aggregation row.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanProductSalesRow(row scanner) (storage.ProductSales, error) {
	var (
		productID     int64
		totalQuantity int64
		totalRevenue  decimal.Decimal
	)

	if err := row.Scan(&productID, &totalQuantity, &totalRevenue); err != nil {
		return storage.ProductSales{}, fmt.Errorf("failed to scan sales row: %w", err)
	}

	return storage.ProductSales{
		ProductID:     uint64(productID),
		TotalQuantity: totalQuantity,
		TotalRevenue:  totalRevenue,
	}, nil
}

// scanPopularityRow scans one popularity row.
func scanPopularityRow(row scanner) (*storage.PopularityRecord, error) {
	var (
		rec       storage.PopularityRecord
		productID int64
	)

	if err := row.Scan(&rec.Shop, &productID, &rec.UpdatedAt); err != nil {
		return nil, err
	}

	rec.ProductID = uint64(productID)
	return &rec, nil
}
