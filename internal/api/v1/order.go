package v1

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderEvent is the decoded shape of an orders/create webhook payload.
// Only the fields this service consumes are bound; everything else in the
// raw payload is ignored. The payload is owned by the external platform,
// so all fields are treated as optional and checked explicitly rather
// than accessed blindly.
type OrderEvent struct {
	// ID is the platform-assigned numeric order identifier.
	ID int64 `json:"id"`

	// Name is the human-facing order name (e.g. "#1001"). Used for logging only.
	Name string `json:"name"`

	// CreatedAt is when the order was placed (platform clock). When the
	// payload omits it, the ingestion layer substitutes receipt time.
	CreatedAt time.Time `json:"created_at"`

	// LineItems are the purchased items. An order with no line_items array
	// at all is considered malformed.
	LineItems []LineItem `json:"line_items"`
}

// LineItem is a single purchased line of an order.
type LineItem struct {
	// ProductID is absent for custom/manual line items; those contribute
	// nothing to sales attribution.
	ProductID *uint64 `json:"product_id"`

	// Quantity of units purchased. Zero or negative quantities are skipped
	// during attribution rather than recorded.
	Quantity int64 `json:"quantity"`

	// Price is the per-unit price as reported by the platform (decoded from
	// its string representation).
	Price decimal.Decimal `json:"price"`
}

// Validate ensures the payload carries the structure attribution depends on.
func (o *OrderEvent) Validate() error {
	if o.ID == 0 {
		return fmt.Errorf("id is required")
	}

	if o.LineItems == nil {
		return fmt.Errorf("line_items is required")
	}

	return nil
}
