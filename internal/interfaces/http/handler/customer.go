package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/application/customer"
)

// RegisterRequest represents the request body for customer registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Phone    string `json:"phone" binding:"omitempty,max=50"`
}

// RegisterResponse represents the response body for successful registration
type RegisterResponse struct {
	Customer CustomerResponse `json:"customer"`
}

// CustomerHandler handles customer account HTTP requests
type CustomerHandler struct {
	BaseHandler
	customerService *customer.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *customer.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// Register creates a new customer account. Duplicate emails return 409.
func (h *CustomerHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.customerService.Register(c.Request.Context(), customer.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, RegisterResponse{
		Customer: toCustomerResponse(result.Customer),
	})
}
