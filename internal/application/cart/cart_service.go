package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// CartService handles storefront cart operations
type CartService struct {
	cartRepo    cart.Repository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(cartRepo cart.Repository, productRepo catalog.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// AddItem adds a product to the customer's open cart, merging quantity
// into an existing line for the same product
func (s *CartService) AddItem(ctx context.Context, input AddItemInput) (*CartView, error) {
	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		s.logger.Error("Failed to load product", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load product")
	}
	if !product.IsAvailable() {
		return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
	}

	c, err := s.findOrCreateOpenCart(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	price, err := valueobject.NewMoney(product.Price, product.Currency)
	if err != nil {
		s.logger.Error("Invalid product price", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Invalid product price")
	}

	if _, err := c.AddItem(product.ID, product.Name, product.SKU, product.Unit, input.Quantity, price); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, c); err != nil {
		s.logger.Error("Failed to save cart", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save cart")
	}

	s.logger.Info("Added product to cart",
		zap.String("customer_id", input.CustomerID.String()),
		zap.String("product_id", product.ID.String()),
		zap.String("quantity", input.Quantity.String()))

	view := toCartView(c)
	return &view, nil
}

// View returns the customer's open cart, or an empty cart shape when none exists
func (s *CartService) View(ctx context.Context, input ViewInput) (*CartView, error) {
	c, err := s.cartRepo.FindOpenByCustomer(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			view := emptyCartView()
			return &view, nil
		}
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load cart")
	}

	view := toCartView(c)
	return &view, nil
}

// RemoveProduct removes a product's line from the customer's open cart
func (s *CartService) RemoveProduct(ctx context.Context, input RemoveItemInput) (*CartView, error) {
	c, err := s.cartRepo.FindOpenByCustomer(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Cart is empty")
		}
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load cart")
	}

	if err := c.RemoveProduct(input.ProductID); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, c); err != nil {
		s.logger.Error("Failed to save cart", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save cart")
	}

	view := toCartView(c)
	return &view, nil
}

func (s *CartService) findOrCreateOpenCart(ctx context.Context, customerID uuid.UUID) (*cart.Cart, error) {
	c, err := s.cartRepo.FindOpenByCustomer(ctx, customerID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load cart")
	}

	return cart.NewCart(customerID)
}

func toCartView(c *cart.Cart) CartView {
	items := make([]ItemView, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, ItemView{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductSKU:  item.ProductSKU,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	id := c.ID
	updatedAt := c.UpdatedAt
	return CartView{
		ID:          &id,
		Items:       items,
		ItemsCount:  c.ItemsCount(),
		TotalAmount: c.TotalAmount,
		Currency:    string(c.Currency),
		UpdatedAt:   &updatedAt,
	}
}

func emptyCartView() CartView {
	return CartView{
		Items:       []ItemView{},
		ItemsCount:  0,
		TotalAmount: decimal.Zero,
		Currency:    string(valueobject.DefaultCurrency),
	}
}
