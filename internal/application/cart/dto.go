package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemInput contains the input for adding a product to the cart
type AddItemInput struct {
	CustomerID uuid.UUID
	ProductID  uuid.UUID
	Quantity   decimal.Decimal
}

// RemoveItemInput contains the input for removing a product from the cart
type RemoveItemInput struct {
	CustomerID uuid.UUID
	ProductID  uuid.UUID
}

// ViewInput contains the input for viewing the current cart
type ViewInput struct {
	CustomerID uuid.UUID
}

// ItemView represents a cart line in API responses
type ItemView struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductSKU  string          `json:"product_sku"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// CartView represents the full cart in API responses
type CartView struct {
	ID          *uuid.UUID      `json:"id,omitempty"`
	Items       []ItemView      `json:"items"`
	ItemsCount  int             `json:"items_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}
