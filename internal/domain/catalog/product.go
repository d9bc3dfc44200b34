package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// Product represents a sellable product in the catalog
// It is the aggregate root for product-related operations
type Product struct {
	shared.BaseAggregateRoot
	SKU          string               `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string               `gorm:"type:varchar(200);not null"`
	Description  string               `gorm:"type:text"`
	CategoryID   *uuid.UUID           `gorm:"type:uuid;index"`
	Unit         string               `gorm:"type:varchar(20);not null"` // Sale unit (e.g., "pcs", "kg", "box")
	Price        decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"`
	Currency     valueobject.Currency `gorm:"type:varchar(3);not null;default:'USD'"`
	AvailableQty decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"`
	Sellable     bool                 `gorm:"not null;default:true"` // Published on the storefront
	Status       ProductStatus        `gorm:"type:varchar(20);not null;default:'active'"`
	SortOrder    int                  `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new sellable product
func NewProduct(sku, name, unit string, price valueobject.Money) (*Product, error) {
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateUnit(unit); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SKU:               strings.ToUpper(strings.TrimSpace(sku)),
		Name:              strings.TrimSpace(name),
		Unit:              unit,
		Price:             price.Amount(),
		Currency:          price.Currency(),
		AvailableQty:      decimal.Zero,
		Sellable:          true,
		Status:            ProductStatusActive,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetCategory sets the product category
func (p *Product) SetCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetPrice updates the selling price
func (p *Product) SetPrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	p.Price = price.Amount()
	p.Currency = price.Currency()
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetAvailableQty sets the quantity available for sale
func (p *Product) SetAvailableQty(qty decimal.Decimal) error {
	if qty.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Available quantity cannot be negative")
	}

	p.AvailableQty = qty
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Publish marks the product as sellable on the storefront
func (p *Product) Publish() {
	p.Sellable = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Unpublish removes the product from the storefront
func (p *Product) Unpublish() {
	p.Sellable = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetSortOrder sets the display order of the product
func (p *Product) SetSortOrder(order int) {
	p.SortOrder = order
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Activate activates the product
func (p *Product) Activate() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}
	if p.Status == ProductStatusDiscontinued {
		return shared.NewDomainError("PRODUCT_DISCONTINUED", "Cannot activate a discontinued product")
	}

	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Deactivate deactivates the product
func (p *Product) Deactivate() error {
	if p.Status != ProductStatusActive {
		return shared.NewDomainError("NOT_ACTIVE", "Product is not active")
	}

	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Discontinue permanently removes the product from sale
func (p *Product) Discontinue() error {
	if p.Status == ProductStatusDiscontinued {
		return shared.NewDomainError("ALREADY_DISCONTINUED", "Product is already discontinued")
	}

	p.Status = ProductStatusDiscontinued
	p.Sellable = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SellingPrice returns the selling price as a Money value
func (p *Product) SellingPrice() valueobject.Money {
	money, err := valueobject.NewMoney(p.Price, p.Currency)
	if err != nil {
		return valueobject.NewMoneyUSD(p.Price)
	}
	return money
}

// IsAvailable returns true if the product can be added to a cart
func (p *Product) IsAvailable() bool {
	return p.Status == ProductStatusActive && p.Sellable
}

// Validation functions

func validateSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}

	return nil
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}

	return nil
}

func validateUnit(unit string) error {
	if unit == "" {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}
	if len(unit) > 20 {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot exceed 20 characters")
	}

	return nil
}
