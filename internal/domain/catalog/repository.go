package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductListFilter contains query options for storefront product listings
type ProductListFilter struct {
	// CategoryID restricts the listing to a single category when set
	CategoryID *uuid.UUID

	// Search matches name or SKU case-insensitively when non-empty
	Search string

	// Offset and Limit paginate the result set; Limit is capped by the service
	Offset int
	Limit  int
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySKU finds a product by its SKU
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// FindSellable finds sellable active products matching the filter,
	// ordered by name ascending, and the total count before pagination
	FindSellable(ctx context.Context, filter ProductListFilter) ([]Product, int64, error)

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsBySKU checks if a product with the given SKU exists
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindAllActive finds all active categories ordered by sort order then name
	FindAllActive(ctx context.Context) ([]Category, error)

	// FindChildren finds all direct children of a category
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]Category, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category
	Delete(ctx context.Context, id uuid.UUID) error

	// HasChildren checks if a category has any children
	HasChildren(ctx context.Context, categoryID uuid.UUID) (bool, error)

	// HasProducts checks if a category has any associated products
	HasProducts(ctx context.Context, categoryID uuid.UUID) (bool, error)
}
