package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/application/catalog"
)

// ProductHandler handles storefront product HTTP requests
type ProductHandler struct {
	BaseHandler
	productService *catalog.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *catalog.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// List returns sellable products with optional category filter, search
// and pagination. An empty body means default listing.
func (h *ProductHandler) List(c *gin.Context) {
	var req catalog.ListProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.productService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
