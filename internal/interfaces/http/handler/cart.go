package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/application/cart"
)

// AddToCartRequest represents the request body for adding a product to the cart
type AddToCartRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
}

// RemoveFromCartRequest represents the request body for removing a cart line
type RemoveFromCartRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// CartHandler handles shopping cart HTTP requests
type CartHandler struct {
	BaseHandler
	cartService *cart.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// Add puts a product into the customer's open cart. Adding the same
// product again merges quantities into the existing line.
func (h *CartHandler) Add(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.cartService.AddItem(c.Request.Context(), cart.AddItemInput{
		CustomerID: customerID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// View returns the customer's open cart, or an empty cart summary when
// none exists.
func (h *CartHandler) View(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.cartService.View(c.Request.Context(), cart.ViewInput{
		CustomerID: customerID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Remove deletes a product line from the customer's open cart.
func (h *CartHandler) Remove(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req RemoveFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.cartService.RemoveProduct(c.Request.Context(), cart.RemoveItemInput{
		CustomerID: customerID,
		ProductID:  req.ProductID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
