package attribution

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	v1 "github.com/herd-lab/follow-the-herd/internal/api/v1"
	"github.com/herd-lab/follow-the-herd/internal/core/storage"
	storagemocks "github.com/herd-lab/follow-the-herd/internal/mocks/storage"
)

func uint64Ptr(v uint64) *uint64 { return &v }

func TestEngine_RecordSalesSumsQuantitiesPerProduct(t *testing.T) {
	ledger := storagemocks.NewSaleLedger(t)
	engine := NewEngine(ledger)

	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	order := &v1.OrderEvent{
		ID:        1001,
		Name:      "#1001",
		CreatedAt: createdAt,
		LineItems: []v1.LineItem{
			{ProductID: uint64Ptr(10), Quantity: 2, Price: decimal.RequireFromString("19.99")},
			{ProductID: uint64Ptr(20), Quantity: 5, Price: decimal.RequireFromString("3.50")},
			{ProductID: uint64Ptr(10), Quantity: 1, Price: decimal.RequireFromString("19.99")},
		},
	}

	var facts []*storage.SaleFact
	ledger.EXPECT().
		AppendSale(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, fact *storage.SaleFact) {
			facts = append(facts, fact)
		}).
		Return(int64(1), nil).
		Twice()

	appended, err := engine.RecordSales(context.Background(), "herd-demo.myshopify.com", order)
	require.NoError(t, err)
	require.Equal(t, 2, appended)
	require.Len(t, facts, 2)

	require.Equal(t, uint64(10), facts[0].ProductID)
	require.Equal(t, int64(3), facts[0].Quantity)
	require.True(t, facts[0].Revenue.Equal(decimal.RequireFromString("59.97")))
	require.Equal(t, createdAt, facts[0].OccurredAt)
	require.Equal(t, "herd-demo.myshopify.com", facts[0].Shop)

	require.Equal(t, uint64(20), facts[1].ProductID)
	require.Equal(t, int64(5), facts[1].Quantity)
	require.True(t, facts[1].Revenue.Equal(decimal.RequireFromString("17.50")))
}

func TestEngine_RecordSalesSkipsUnattributableItems(t *testing.T) {
	ledger := storagemocks.NewSaleLedger(t)
	engine := NewEngine(ledger)

	order := &v1.OrderEvent{
		ID: 1002,
		LineItems: []v1.LineItem{
			{ProductID: nil, Quantity: 3, Price: decimal.RequireFromString("9.99")},
			{ProductID: uint64Ptr(10), Quantity: 0, Price: decimal.RequireFromString("19.99")},
			{ProductID: uint64Ptr(10), Quantity: -2, Price: decimal.RequireFromString("19.99")},
		},
	}

	appended, err := engine.RecordSales(context.Background(), "herd-demo.myshopify.com", order)
	require.NoError(t, err)
	require.Equal(t, 0, appended)
	ledger.AssertNotCalled(t, "AppendSale", mock.Anything, mock.Anything)
}

func TestEngine_RecordSalesAppendFailureIsolated(t *testing.T) {
	ledger := storagemocks.NewSaleLedger(t)
	engine := NewEngine(ledger)

	order := &v1.OrderEvent{
		ID: 1003,
		LineItems: []v1.LineItem{
			{ProductID: uint64Ptr(10), Quantity: 1, Price: decimal.RequireFromString("19.99")},
			{ProductID: uint64Ptr(20), Quantity: 2, Price: decimal.RequireFromString("3.50")},
		},
	}

	appendErr := errors.New("connection reset")
	ledger.EXPECT().
		AppendSale(mock.Anything, mock.MatchedBy(func(fact *storage.SaleFact) bool {
			return fact.ProductID == 10
		})).
		Return(int64(0), appendErr).
		Once()
	ledger.EXPECT().
		AppendSale(mock.Anything, mock.MatchedBy(func(fact *storage.SaleFact) bool {
			return fact.ProductID == 20
		})).
		Return(int64(2), nil).
		Once()

	appended, err := engine.RecordSales(context.Background(), "herd-demo.myshopify.com", order)
	require.Equal(t, 1, appended)
	require.Error(t, err)
	require.ErrorIs(t, err, appendErr)
	require.ErrorContains(t, err, "product 10")
}

func TestEngine_RecordSalesDefaultsOccurredAtToNow(t *testing.T) {
	ledger := storagemocks.NewSaleLedger(t)
	engine := NewEngine(ledger)

	fixed := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	engine.nowFn = func() time.Time { return fixed }

	order := &v1.OrderEvent{
		ID: 1004,
		LineItems: []v1.LineItem{
			{ProductID: uint64Ptr(10), Quantity: 1, Price: decimal.RequireFromString("19.99")},
		},
	}

	ledger.EXPECT().
		AppendSale(mock.Anything, mock.MatchedBy(func(fact *storage.SaleFact) bool {
			return fact.OccurredAt.Equal(fixed) && fact.RecordedAt.Equal(fixed)
		})).
		Return(int64(1), nil).
		Once()

	appended, err := engine.RecordSales(context.Background(), "herd-demo.myshopify.com", order)
	require.NoError(t, err)
	require.Equal(t, 1, appended)
}

func TestNewEngine_NilLedgerPanics(t *testing.T) {
	require.Panics(t, func() { NewEngine(nil) })
}
