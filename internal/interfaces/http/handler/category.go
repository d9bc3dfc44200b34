package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/application/catalog"
)

// CategoryHandler handles storefront category HTTP requests
type CategoryHandler struct {
	BaseHandler
	categoryService *catalog.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *catalog.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// List returns all active categories with parent information.
func (h *CategoryHandler) List(c *gin.Context) {
	result, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
