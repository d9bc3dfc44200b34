package customer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with valid fields", func(t *testing.T) {
		c, err := NewCustomer("Jane Doe", "jane@example.com", "Password123")

		require.NoError(t, err)
		assert.NotNil(t, c)
		assert.Equal(t, "Jane Doe", c.Name)
		assert.Equal(t, "jane@example.com", c.Email)
		assert.NotEmpty(t, c.PasswordHash)
		assert.NotEqual(t, "Password123", c.PasswordHash)
		assert.Equal(t, CustomerStatusActive, c.Status)
	})

	t.Run("normalizes email to lowercase", func(t *testing.T) {
		c, err := NewCustomer("Jane Doe", "  Jane@Example.COM  ", "Password123")

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", c.Email)
	})

	t.Run("trims name whitespace", func(t *testing.T) {
		c, err := NewCustomer("  Jane Doe  ", "jane@example.com", "Password123")

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", c.Name)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCustomer("", "jane@example.com", "Password123")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		_, err := NewCustomer("Jane Doe", "not-an-email", "Password123")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email format")
	})

	t.Run("fails with empty email", func(t *testing.T) {
		_, err := NewCustomer("Jane Doe", "", "Password123")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with short password", func(t *testing.T) {
		_, err := NewCustomer("Jane Doe", "jane@example.com", "Pass1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("fails with password without numbers", func(t *testing.T) {
		_, err := NewCustomer("Jane Doe", "jane@example.com", "Passwords")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least one letter and one number")
	})
}

func TestCustomer_VerifyPassword(t *testing.T) {
	c, err := NewCustomer("Jane Doe", "jane@example.com", "Password123")
	require.NoError(t, err)

	assert.True(t, c.VerifyPassword("Password123"))
	assert.False(t, c.VerifyPassword("WrongPassword1"))
	assert.False(t, c.VerifyPassword(""))
}

func TestCustomer_ChangePassword(t *testing.T) {
	t.Run("changes password with correct old password", func(t *testing.T) {
		c, err := NewCustomer("Jane Doe", "jane@example.com", "Password123")
		require.NoError(t, err)

		err = c.ChangePassword("Password123", "NewPassword456")
		require.NoError(t, err)
		assert.True(t, c.VerifyPassword("NewPassword456"))
		assert.False(t, c.VerifyPassword("Password123"))
	})

	t.Run("fails with wrong old password", func(t *testing.T) {
		c, err := NewCustomer("Jane Doe", "jane@example.com", "Password123")
		require.NoError(t, err)

		err = c.ChangePassword("WrongPassword1", "NewPassword456")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "incorrect")
	})
}

func TestCustomer_SetPhone(t *testing.T) {
	c, err := NewCustomer("Jane Doe", "jane@example.com", "Password123")
	require.NoError(t, err)

	require.NoError(t, c.SetPhone("  +1 555 0100  "))
	assert.Equal(t, "+1 555 0100", c.Phone)

	err = c.SetPhone(string(make([]byte, 51)))
	assert.Error(t, err)
}

func TestCustomer_Lockout(t *testing.T) {
	t.Run("locks after max failed attempts", func(t *testing.T) {
		c, err := NewCustomer("Jane Doe", "jane@example.com", "Password123")
		require.NoError(t, err)

		locked := c.RecordLoginFailure(3, 15*time.Minute)
		assert.False(t, locked)
		locked = c.RecordLoginFailure(3, 15*time.Minute)
		assert.False(t, locked)
		locked = c.RecordLoginFailure(3, 15*time.Minute)
		assert.True(t, locked)

		assert.Equal(t, CustomerStatusLocked, c.Status)
		assert.True(t, c.IsLocked())
		assert.False(t, c.CanLogin())
	})

	t.Run("lock expires after duration", func(t *testing.T) {
		c, err := NewCustomer("Jane Doe", "jane@example.com", "Password123")
		require.NoError(t, err)

		require.NoError(t, c.Lock(15*time.Minute))
		assert.True(t, c.IsLocked())

		past := time.Now().Add(-time.Minute)
		c.LockedUntil = &past
		assert.False(t, c.IsLocked())
		assert.True(t, c.CanLogin())
	})

	t.Run("login success resets failures and lock", func(t *testing.T) {
		c, err := NewCustomer("Jane Doe", "jane@example.com", "Password123")
		require.NoError(t, err)

		c.RecordLoginFailure(5, 15*time.Minute)
		c.RecordLoginFailure(5, 15*time.Minute)
		c.RecordLoginSuccess("192.0.2.1")

		assert.Equal(t, 0, c.FailedAttempts)
		assert.Equal(t, "192.0.2.1", c.LastLoginIP)
		assert.NotNil(t, c.LastLoginAt)
		assert.True(t, c.CanLogin())
	})

	t.Run("unlock restores active status", func(t *testing.T) {
		c, err := NewCustomer("Jane Doe", "jane@example.com", "Password123")
		require.NoError(t, err)

		require.NoError(t, c.Lock(time.Hour))
		require.NoError(t, c.Unlock())
		assert.Equal(t, CustomerStatusActive, c.Status)
		assert.Nil(t, c.LockedUntil)
	})
}

func TestCustomer_Deactivate(t *testing.T) {
	c, err := NewCustomer("Jane Doe", "jane@example.com", "Password123")
	require.NoError(t, err)

	require.NoError(t, c.Deactivate())
	assert.True(t, c.IsDeactivated())
	assert.False(t, c.CanLogin())

	err = c.Deactivate()
	assert.Error(t, err)

	err = c.Lock(time.Hour)
	assert.Error(t, err)
}
