package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/application/customer"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *customer.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *customer.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates a customer with email and password and returns a
// token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), customer.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	response := LoginResponse{
		Token: TokenResponse{
			AccessToken:           result.AccessToken,
			RefreshToken:          result.RefreshToken,
			AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
			TokenType:             result.TokenType,
		},
		Customer: toCustomerResponse(result.Customer),
	}

	h.Success(c, response)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.RefreshToken(c.Request.Context(), customer.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	response := RefreshTokenResponse{
		Token: TokenResponse{
			AccessToken:           result.AccessToken,
			RefreshToken:          result.RefreshToken,
			AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
			TokenType:             result.TokenType,
		},
	}

	h.Success(c, response)
}

// Logout revokes the current access token.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), customer.LogoutInput{
		AccessToken: token,
	}); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, LogoutResponse{
		Message: "Logged out successfully",
	})
}

// GetCurrentCustomer returns the authenticated customer's profile.
func (h *AuthHandler) GetCurrentCustomer(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.authService.GetCurrentCustomer(c.Request.Context(), customer.GetCurrentCustomerInput{
		CustomerID: customerID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, CurrentCustomerResponse{
		Customer: toCustomerResponse(result.Customer),
	})
}

// ChangePassword changes the authenticated customer's password and
// invalidates existing sessions.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), customer.ChangePasswordInput{
		CustomerID:  customerID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"message": "Password changed successfully",
	})
}

// bearerToken extracts the raw bearer token from the Authorization header
func bearerToken(c *gin.Context) string {
	header := c.GetHeader(middleware.AuthHeaderKey)
	if !strings.HasPrefix(header, middleware.BearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, middleware.BearerPrefix)
}

func toCustomerResponse(info customer.CustomerInfo) CustomerResponse {
	return CustomerResponse{
		ID:        info.ID,
		Name:      info.Name,
		Email:     info.Email,
		Phone:     info.Phone,
		Status:    info.Status,
		CreatedAt: info.CreatedAt,
	}
}
