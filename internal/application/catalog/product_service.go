package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/config"
)

// ProductService handles storefront product queries
type ProductService struct {
	productRepo catalog.ProductRepository
	config      config.CatalogConfig
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, cfg config.CatalogConfig) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		config:      cfg,
	}
}

// List returns the sellable products matching the request, name-ascending
func (s *ProductService) List(ctx context.Context, req ListProductsRequest) (*ProductListResult, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}

	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = s.config.DefaultPageSize
	}
	if pageSize > s.config.MaxPageSize {
		pageSize = s.config.MaxPageSize
	}

	filter := catalog.ProductListFilter{
		CategoryID: req.CategoryID,
		Search:     strings.TrimSpace(req.Search),
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	}

	products, total, err := s.productRepo.FindSellable(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, toProductResponse(&products[i]))
	}

	return &ProductListResult{
		Products: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  int64(page*pageSize) < total,
	}, nil
}

// Get returns a single sellable product by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
	}
	if !product.IsAvailable() {
		return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
	}

	resp := toProductResponse(product)
	return &resp, nil
}

func toProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		Unit:         p.Unit,
		Price:        p.Price,
		Currency:     string(p.Currency),
		AvailableQty: p.AvailableQty,
		CreatedAt:    p.CreatedAt,
	}
}
