package customer

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/backend/internal/domain/shared"
)

// CustomerStatus represents the status of a customer account
type CustomerStatus string

const (
	CustomerStatusActive      CustomerStatus = "active"      // Normal active status
	CustomerStatusLocked      CustomerStatus = "locked"      // Locked due to failed attempts
	CustomerStatusDeactivated CustomerStatus = "deactivated" // Manually deactivated
)

// Password cost for bcrypt
const bcryptCost = 12

// Customer represents a storefront customer account
// It is the aggregate root for customer-related operations
type Customer struct {
	shared.BaseAggregateRoot
	Name           string
	Email          string
	Phone          string
	PasswordHash   string
	Status         CustomerStatus
	LastLoginAt    *time.Time
	LastLoginIP    string
	FailedAttempts int
	LockedUntil    *time.Time
}

// NewCustomer creates a new active customer with required fields
func NewCustomer(name, email, password string) (*Customer, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Email:             NormalizeEmail(email),
		PasswordHash:      passwordHash,
		Status:            CustomerStatusActive,
	}, nil
}

// NormalizeEmail trims and lowercases an email address for storage and lookup
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SetPhone sets the customer's phone number
func (c *Customer) SetPhone(phone string) error {
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}

	c.Phone = strings.TrimSpace(phone)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetName sets the customer's display name
func (c *Customer) SetName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// ChangePassword changes the customer's password after verifying the current one
func (c *Customer) ChangePassword(oldPassword, newPassword string) error {
	if !c.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}

	return c.SetPassword(newPassword)
}

// SetPassword sets a new password without checking the old one
func (c *Customer) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	c.PasswordHash = passwordHash
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// VerifyPassword verifies if the provided password matches
func (c *Customer) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password))
	return err == nil
}

// Deactivate deactivates the customer account
func (c *Customer) Deactivate() error {
	if c.Status == CustomerStatusDeactivated {
		return shared.NewDomainError("ALREADY_DEACTIVATED", "Customer is already deactivated")
	}

	c.Status = CustomerStatusDeactivated
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Lock locks the customer account
func (c *Customer) Lock(duration time.Duration) error {
	if c.Status == CustomerStatusDeactivated {
		return shared.NewDomainError("CUSTOMER_DEACTIVATED", "Cannot lock a deactivated customer")
	}

	c.Status = CustomerStatusLocked
	if duration > 0 {
		lockedUntil := time.Now().Add(duration)
		c.LockedUntil = &lockedUntil
	}
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Unlock unlocks the customer account
func (c *Customer) Unlock() error {
	if c.Status != CustomerStatusLocked {
		return shared.NewDomainError("NOT_LOCKED", "Customer is not locked")
	}

	c.Status = CustomerStatusActive
	c.FailedAttempts = 0
	c.LockedUntil = nil
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// RecordLoginSuccess records a successful login
func (c *Customer) RecordLoginSuccess(ip string) {
	now := time.Now()
	c.LastLoginAt = &now
	c.LastLoginIP = ip
	c.FailedAttempts = 0
	if c.Status == CustomerStatusLocked {
		c.Status = CustomerStatusActive
		c.LockedUntil = nil
	}
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// RecordLoginFailure records a failed login attempt
// Returns true if the account was locked as a result
func (c *Customer) RecordLoginFailure(maxAttempts int, lockDuration time.Duration) bool {
	c.FailedAttempts++
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	if c.FailedAttempts >= maxAttempts {
		_ = c.Lock(lockDuration)
		return true
	}

	return false
}

// IsActive returns true if the customer is active
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

// IsLocked returns true if the customer is locked and the lock has not expired
func (c *Customer) IsLocked() bool {
	if c.Status != CustomerStatusLocked {
		return false
	}

	if c.LockedUntil != nil && time.Now().After(*c.LockedUntil) {
		return false
	}

	return true
}

// IsDeactivated returns true if the customer is deactivated
func (c *Customer) IsDeactivated() bool {
	return c.Status == CustomerStatusDeactivated
}

// CanLogin returns true if the customer can log in
func (c *Customer) CanLogin() bool {
	if c.Status == CustomerStatusDeactivated {
		return false
	}
	if c.IsLocked() {
		return false
	}
	return true
}

// Validation functions

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasNumber {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
