package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListProductsRequest represents a storefront product listing query
type ListProductsRequest struct {
	CategoryID *uuid.UUID `json:"category_id"`
	Search     string     `json:"search" binding:"max=200"`
	Page       int        `json:"page" binding:"omitempty,min=1"`
	PageSize   int        `json:"page_size" binding:"omitempty,min=1"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CategoryID   *uuid.UUID      `json:"category_id"`
	Unit         string          `json:"unit"`
	Price        decimal.Decimal `json:"price"`
	Currency     string          `json:"currency"`
	AvailableQty decimal.Decimal `json:"available_qty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ProductListResult represents a paginated product listing
type ProductListResult struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	HasMore  bool              `json:"has_more"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	ParentID   *uuid.UUID `json:"parent_id"`
	ParentName string     `json:"parent_name,omitempty"`
	SortOrder  int        `json:"sort_order"`
}

// CategoryListResult represents the full category listing
type CategoryListResult struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}
