package catalog

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
)

// CategoryService handles storefront category queries
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List returns all active categories with their parent names resolved
func (s *CategoryService) List(ctx context.Context) (*CategoryListResult, error) {
	categories, err := s.categoryRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID.String()] = c.Name
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp := CategoryResponse{
			ID:        c.ID,
			Name:      c.Name,
			ParentID:  c.ParentID,
			SortOrder: c.SortOrder,
		}
		if c.ParentID != nil {
			resp.ParentName = names[c.ParentID.String()]
		}
		responses = append(responses, resp)
	}

	return &CategoryListResult{
		Categories: responses,
		Total:      len(responses),
	}, nil
}
