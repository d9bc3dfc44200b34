package customer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/customer"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/auth"
)

// AuthServiceConfig contains configuration for the auth service
type AuthServiceConfig struct {
	MaxLoginAttempts int           // Failed attempts before the account locks
	LockDuration     time.Duration // How long the lock lasts
}

// DefaultAuthServiceConfig returns default configuration
func DefaultAuthServiceConfig() AuthServiceConfig {
	return AuthServiceConfig{
		MaxLoginAttempts: 5,
		LockDuration:     15 * time.Minute,
	}
}

// AuthService handles customer authentication
type AuthService struct {
	customerRepo customer.Repository
	jwtService   *auth.JWTService
	blacklist    auth.TokenBlacklist
	config       AuthServiceConfig
	logger       *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	customerRepo customer.Repository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	config AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		customerRepo: customerRepo,
		jwtService:   jwtService,
		blacklist:    blacklist,
		config:       config,
		logger:       logger,
	}
}

// Login authenticates a customer and returns a token pair
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := customer.NormalizeEmail(input.Email)
	s.logger.Info("Login attempt", zap.String("email", email))

	c, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("Customer not found during login", zap.String("email", email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !c.CanLogin() {
		if c.IsLocked() {
			s.logger.Warn("Login attempt for locked account", zap.String("email", email))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is locked. Please try again later")
		}
		if c.IsDeactivated() {
			s.logger.Warn("Login attempt for deactivated account", zap.String("email", email))
			return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
		}
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is not active")
	}

	if !c.VerifyPassword(input.Password) {
		locked := c.RecordLoginFailure(s.config.MaxLoginAttempts, s.config.LockDuration)
		if err := s.customerRepo.Update(ctx, c); err != nil {
			s.logger.Error("Failed to update customer after login failure", zap.Error(err))
		}

		if locked {
			s.logger.Warn("Account locked after too many failed attempts",
				zap.String("email", email),
				zap.Int("attempts", s.config.MaxLoginAttempts))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Too many failed login attempts. Account has been locked")
		}

		s.logger.Warn("Invalid password attempt",
			zap.String("email", email),
			zap.Int("failed_attempts", c.FailedAttempts))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		CustomerID: c.ID,
		Email:      c.Email,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	c.RecordLoginSuccess(input.IP)
	if err := s.customerRepo.Update(ctx, c); err != nil {
		// Don't fail the login - just log the error
		s.logger.Error("Failed to update customer after successful login", zap.Error(err))
	}

	s.logger.Info("Customer logged in",
		zap.String("email", email),
		zap.String("customer_id", c.ID.String()))

	return &LoginResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		Customer:              toCustomerInfo(c),
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenResult, error) {
	s.logger.Info("Token refresh attempt")

	refreshClaims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	blacklisted, err := s.blacklist.IsBlacklisted(ctx, refreshClaims.ID)
	if err != nil {
		s.logger.Error("Failed to check token blacklist", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to validate refresh token")
	}
	if blacklisted {
		s.logger.Warn("Refresh attempt with blacklisted token",
			zap.String("customer_id", refreshClaims.CustomerID))
		return nil, shared.NewDomainError("TOKEN_INVALID", "Refresh token has been revoked")
	}

	customerID, err := refreshClaims.GetCustomerUUID()
	if err != nil {
		s.logger.Error("Invalid customer ID in refresh token", zap.Error(err))
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid customer ID in token")
	}

	if refreshClaims.IssuedAt != nil {
		invalidated, err := s.blacklist.IsCustomerTokenInvalidated(ctx, refreshClaims.CustomerID, refreshClaims.IssuedAt.Time)
		if err != nil {
			s.logger.Error("Failed to check customer token invalidation", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to validate refresh token")
		}
		if invalidated {
			return nil, shared.NewDomainError("TOKEN_INVALID", "Refresh token has been revoked")
		}
	}

	c, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		s.logger.Warn("Customer not found during token refresh", zap.String("customer_id", customerID.String()))
		return nil, shared.NewDomainError("NOT_FOUND", "Customer not found")
	}

	if !c.CanLogin() {
		s.logger.Warn("Token refresh for inactive customer", zap.String("customer_id", customerID.String()))
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is no longer active")
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(input.RefreshToken, c.Email)
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	s.logger.Info("Token refreshed", zap.String("customer_id", customerID.String()))

	return &RefreshTokenResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
	}, nil
}

// Logout revokes the presented access token for the rest of its lifetime
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	claims, err := s.jwtService.ValidateAccessToken(input.AccessToken)
	if err != nil {
		// An expired or invalid token needs no revocation
		s.logger.Info("Logout with invalid token", zap.Error(err))
		return nil
	}

	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}

	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("Failed to blacklist token on logout", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
	}

	s.logger.Info("Customer logged out",
		zap.String("customer_id", claims.CustomerID),
		zap.String("jti", claims.ID))

	return nil
}

// GetCurrentCustomer returns the authenticated customer's profile
func (s *AuthService) GetCurrentCustomer(ctx context.Context, input GetCurrentCustomerInput) (*CurrentCustomerResult, error) {
	c, err := s.customerRepo.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Customer not found")
	}

	return &CurrentCustomerResult{Customer: toCustomerInfo(c)}, nil
}

// ChangePassword changes a customer's password and revokes existing tokens
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	c, err := s.customerRepo.FindByID(ctx, input.CustomerID)
	if err != nil {
		return shared.NewDomainError("NOT_FOUND", "Customer not found")
	}

	if err := c.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.customerRepo.Update(ctx, c); err != nil {
		s.logger.Error("Failed to update customer after password change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	// Force every outstanding token through a fresh login
	ttl := s.jwtService.GetRefreshTokenExpiration()
	if err := s.blacklist.AddCustomerTokensToBlacklist(ctx, c.ID.String(), ttl); err != nil {
		s.logger.Error("Failed to invalidate tokens after password change", zap.Error(err))
	}

	s.logger.Info("Customer password changed", zap.String("customer_id", input.CustomerID.String()))

	return nil
}

// mapTokenError converts JWT validation errors to domain errors
func mapTokenError(err error) error {
	switch err {
	case auth.ErrExpiredToken:
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case auth.ErrInvalidToken, auth.ErrInvalidTokenType:
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	case auth.ErrMaxRefreshExceeded:
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	default:
		return shared.NewDomainError("TOKEN_ERROR", "Failed to validate refresh token")
	}
}
