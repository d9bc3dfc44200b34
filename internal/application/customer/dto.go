package customer

import (
	"time"

	"github.com/google/uuid"
)

// RegisterInput contains the input for customer registration
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// RegisterResult contains the result of a successful registration
type RegisterResult struct {
	Customer CustomerInfo
}

// CustomerInfo contains basic customer information returned by the API
type CustomerInfo struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Status    string
	CreatedAt time.Time
}

// LoginInput contains the input for customer login
type LoginInput struct {
	Email    string
	Password string
	IP       string // Client IP for login tracking
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	Customer              CustomerInfo
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for customer logout
type LogoutInput struct {
	AccessToken string
}

// GetCurrentCustomerInput contains the input for fetching the authenticated customer
type GetCurrentCustomerInput struct {
	CustomerID uuid.UUID
}

// CurrentCustomerResult contains the authenticated customer's information
type CurrentCustomerResult struct {
	Customer CustomerInfo
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	CustomerID  uuid.UUID
	OldPassword string
	NewPassword string
}
