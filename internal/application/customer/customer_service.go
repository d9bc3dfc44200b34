package customer

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/customer"
	"github.com/storefront/backend/internal/domain/shared"
)

// CustomerService handles customer account operations
type CustomerService struct {
	customerRepo customer.Repository
	logger       *zap.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo customer.Repository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Register creates a new customer account
func (s *CustomerService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	email := customer.NormalizeEmail(input.Email)

	exists, err := s.customerRepo.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to check email existence", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check email availability")
	}
	if exists {
		s.logger.Warn("Registration attempt with existing email", zap.String("email", email))
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	c, err := customer.NewCustomer(input.Name, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	if input.Phone != "" {
		if err := c.SetPhone(input.Phone); err != nil {
			return nil, err
		}
	}

	if err := s.customerRepo.Create(ctx, c); err != nil {
		s.logger.Error("Failed to create customer", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create account")
	}

	s.logger.Info("Customer registered",
		zap.String("customer_id", c.ID.String()),
		zap.String("email", c.Email))

	return &RegisterResult{Customer: toCustomerInfo(c)}, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerInfo, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Customer not found")
	}

	info := toCustomerInfo(c)
	return &info, nil
}

func toCustomerInfo(c *customer.Customer) CustomerInfo {
	return CustomerInfo{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
	}
}
