package cart

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for cart persistence
type Repository interface {
	// FindByID finds a cart with its items by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)

	// FindOpenByCustomer finds the customer's latest open cart with its items
	FindOpenByCustomer(ctx context.Context, customerID uuid.UUID) (*Cart, error)

	// Save creates or updates a cart and its items
	Save(ctx context.Context, cart *Cart) error

	// Delete deletes a cart and its items
	Delete(ctx context.Context, id uuid.UUID) error

	// CountOpen returns the number of open carts
	CountOpen(ctx context.Context) (int64, error)
}
