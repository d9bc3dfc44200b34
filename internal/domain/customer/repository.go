package customer

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for customer persistence
type Repository interface {
	// Create creates a new customer
	Create(ctx context.Context, customer *Customer) error

	// Update updates an existing customer
	Update(ctx context.Context, customer *Customer) error

	// FindByID finds a customer by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByEmail finds a customer by normalized email
	FindByEmail(ctx context.Context, email string) (*Customer, error)

	// ExistsByEmail checks if an email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Count returns the total number of customers
	Count(ctx context.Context) (int64, error)
}
