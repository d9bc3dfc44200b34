package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/shared"
)

// newMockCustomerRepository creates a GormCustomerRepository with a mocked SQL connection
func newMockCustomerRepository(t *testing.T) (*GormCustomerRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormCustomerRepository(gormDB), mock, mockDB
}

func TestNewGormCustomerRepository(t *testing.T) {
	t.Run("creates repository with valid DB", func(t *testing.T) {
		repo, _, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		assert.NotNil(t, repo)
		assert.NotNil(t, repo.db)
	})
}

func TestGormCustomerRepository_FindByID(t *testing.T) {
	t.Run("finds existing customer", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "status"}).
			AddRow(customerID, "Jane Doe", "jane@example.com", "$2a$12$hash", "active")

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(customerID, 1).
			WillReturnRows(rows)

		c, err := repo.FindByID(context.Background(), customerID)

		assert.NoError(t, err)
		assert.NotNil(t, c)
		assert.Equal(t, customerID, c.ID)
		assert.Equal(t, "jane@example.com", c.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent customer", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(customerID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		c, err := repo.FindByID(context.Background(), customerID)

		assert.Error(t, err)
		assert.Nil(t, c)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_FindByEmail(t *testing.T) {
	t.Run("normalizes email before lookup", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "status"}).
			AddRow(customerID, "Jane Doe", "jane@example.com", "$2a$12$hash", "active")

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE email = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("jane@example.com", 1).
			WillReturnRows(rows)

		c, err := repo.FindByEmail(context.Background(), "  Jane@Example.COM  ")

		assert.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "jane@example.com", c.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects empty email", func(t *testing.T) {
		repo, _, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		c, err := repo.FindByEmail(context.Background(), "")

		assert.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("returns not found for unknown email", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE email = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("nobody@example.com", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		c, err := repo.FindByEmail(context.Background(), "nobody@example.com")

		assert.Error(t, err)
		assert.Nil(t, c)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormCustomerRepository_ExistsByEmail(t *testing.T) {
	t.Run("returns true when email exists", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"count"}).AddRow(1)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "customers" WHERE email = \$1`).
			WithArgs("jane@example.com").
			WillReturnRows(rows)

		exists, err := repo.ExistsByEmail(context.Background(), "jane@example.com")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false when email is free", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"count"}).AddRow(0)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "customers" WHERE email = \$1`).
			WithArgs("free@example.com").
			WillReturnRows(rows)

		exists, err := repo.ExistsByEmail(context.Background(), "free@example.com")

		assert.NoError(t, err)
		assert.False(t, exists)
	})
}
