package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// CartStatus represents the lifecycle state of a cart
type CartStatus string

const (
	CartStatusOpen      CartStatus = "open"      // Accepting item changes
	CartStatusOrdered   CartStatus = "ordered"   // Converted to an order
	CartStatusAbandoned CartStatus = "abandoned" // Closed without ordering
)

// IsValid checks if the status is a valid CartStatus
func (s CartStatus) IsValid() bool {
	switch s {
	case CartStatusOpen, CartStatusOrdered, CartStatusAbandoned:
		return true
	}
	return false
}

// String returns the string representation of CartStatus
func (s CartStatus) String() string {
	return string(s)
}

// CartItem represents a line in a shopping cart
type CartItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	CartID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	ProductSKU  string          `gorm:"type:varchar(50);not null"`
	Unit        string          `gorm:"type:varchar(20);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Quantity * UnitPrice
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// NewCartItem creates a new cart line for a product
func NewCartItem(cartID, productID uuid.UUID, productName, productSKU, unit string, quantity decimal.Decimal, unitPrice valueobject.Money) (*CartItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	return &CartItem{
		ID:          uuid.New(),
		CartID:      cartID,
		ProductID:   productID,
		ProductName: productName,
		ProductSKU:  productSKU,
		Unit:        unit,
		Quantity:    quantity,
		UnitPrice:   unitPrice.Amount(),
		Amount:      unitPrice.Multiply(quantity).Amount(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateQuantity updates the line quantity and recalculates the amount
func (i *CartItem) UpdateQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	i.Quantity = quantity
	i.Amount = quantity.Mul(i.UnitPrice)
	i.UpdatedAt = time.Now()

	return nil
}

// Cart represents a customer's shopping cart
// It is the aggregate root for cart operations; a customer has at most
// one open cart at a time
type Cart struct {
	shared.BaseAggregateRoot
	CustomerID  uuid.UUID            `gorm:"type:uuid;not null;index"`
	Status      CartStatus           `gorm:"type:varchar(20);not null;default:'open'"`
	Items       []CartItem           `gorm:"foreignKey:CartID"`
	TotalAmount decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"`
	Currency    valueobject.Currency `gorm:"type:varchar(3);not null;default:'USD'"`
	OrderedAt   *time.Time
}

// TableName returns the table name for GORM
func (Cart) TableName() string {
	return "carts"
}

// NewCart creates a new open cart for a customer
func NewCart(customerID uuid.UUID) (*Cart, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}

	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Status:            CartStatusOpen,
		Items:             make([]CartItem, 0),
		TotalAmount:       decimal.Zero,
		Currency:          valueobject.DefaultCurrency,
	}, nil
}

// AddItem adds a product to the cart
// If the product already has a line, the quantity is merged into it
// Returns the affected line
func (c *Cart) AddItem(productID uuid.UUID, productName, productSKU, unit string, quantity decimal.Decimal, unitPrice valueobject.Money) (*CartItem, error) {
	if c.Status != CartStatusOpen {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a closed cart")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			merged := c.Items[idx].Quantity.Add(quantity)
			if err := c.Items[idx].UpdateQuantity(merged); err != nil {
				return nil, err
			}
			// Re-price the line from the current catalog price
			c.Items[idx].UnitPrice = unitPrice.Amount()
			c.Items[idx].Amount = unitPrice.Multiply(merged).Amount()
			c.recalculateTotals()
			c.UpdatedAt = time.Now()
			c.IncrementVersion()
			return &c.Items[idx], nil
		}
	}

	item, err := NewCartItem(c.ID, productID, productName, productSKU, unit, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	c.Items = append(c.Items, *item)
	c.recalculateTotals()
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return &c.Items[len(c.Items)-1], nil
}

// UpdateItemQuantity sets the quantity of an existing line
func (c *Cart) UpdateItemQuantity(itemID uuid.UUID, quantity decimal.Decimal) error {
	if c.Status != CartStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Cannot update items in a closed cart")
	}

	for idx := range c.Items {
		if c.Items[idx].ID == itemID {
			if err := c.Items[idx].UpdateQuantity(quantity); err != nil {
				return err
			}
			c.recalculateTotals()
			c.UpdatedAt = time.Now()
			c.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_FOUND", "Cart item not found")
}

// RemoveItem removes a line from the cart
func (c *Cart) RemoveItem(itemID uuid.UUID) error {
	if c.Status != CartStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove items from a closed cart")
	}

	for idx, item := range c.Items {
		if item.ID == itemID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			c.recalculateTotals()
			c.UpdatedAt = time.Now()
			c.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_FOUND", "Cart item not found")
}

// RemoveProduct removes the line holding a product, if present
func (c *Cart) RemoveProduct(productID uuid.UUID) error {
	if c.Status != CartStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove items from a closed cart")
	}

	for idx, item := range c.Items {
		if item.ProductID == productID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			c.recalculateTotals()
			c.UpdatedAt = time.Now()
			c.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_FOUND", "Product is not in the cart")
}

// Clear removes all lines from the cart
func (c *Cart) Clear() error {
	if c.Status != CartStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Cannot clear a closed cart")
	}

	c.Items = make([]CartItem, 0)
	c.recalculateTotals()
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// MarkOrdered closes the cart after it has been converted to an order
func (c *Cart) MarkOrdered() error {
	if c.Status != CartStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Cart is not open")
	}
	if len(c.Items) == 0 {
		return shared.NewDomainError("EMPTY_CART", "Cannot order an empty cart")
	}

	now := time.Now()
	c.Status = CartStatusOrdered
	c.OrderedAt = &now
	c.UpdatedAt = now
	c.IncrementVersion()

	return nil
}

// Abandon closes the cart without ordering
func (c *Cart) Abandon() error {
	if c.Status != CartStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Cart is not open")
	}

	c.Status = CartStatusAbandoned
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// IsOpen returns true if the cart accepts item changes
func (c *Cart) IsOpen() bool {
	return c.Status == CartStatusOpen
}

// IsEmpty returns true if the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemsCount returns the number of lines in the cart
func (c *Cart) ItemsCount() int {
	return len(c.Items)
}

// FindItemByProduct returns the line holding a product, or nil
func (c *Cart) FindItemByProduct(productID uuid.UUID) *CartItem {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			return &c.Items[idx]
		}
	}
	return nil
}

// GetTotalMoney returns the cart total as a Money value
func (c *Cart) GetTotalMoney() valueobject.Money {
	money, err := valueobject.NewMoney(c.TotalAmount, c.Currency)
	if err != nil {
		return valueobject.NewMoneyUSD(c.TotalAmount)
	}
	return money
}

func (c *Cart) recalculateTotals() {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Amount)
	}
	c.TotalAmount = total
}
