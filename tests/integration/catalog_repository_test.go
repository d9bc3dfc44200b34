package integration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/infrastructure/persistence"
)

func saveProduct(t *testing.T, repo *persistence.GormProductRepository, sku, name string, price int64) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(sku, name, "pcs", valueobject.NewMoneyUSD(decimal.NewFromInt(price)))
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), p))
	return p
}

// TestProductRepository_Integration tests the product repository against a
// real PostgreSQL database
func TestProductRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)
	repo := persistence.NewGormProductRepository(testDB.DB)
	ctx := context.Background()

	t.Run("Save and FindByID", func(t *testing.T) {
		p := saveProduct(t, repo, "APL-001", "Apple", 10)

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "APL-001", found.SKU)
		assert.Equal(t, "Apple", found.Name)
		assert.True(t, found.Price.Equal(decimal.NewFromInt(10)))
		assert.True(t, found.IsAvailable())
	})

	t.Run("FindBySKU is case-insensitive", func(t *testing.T) {
		saveProduct(t, repo, "BAN-001", "Banana", 5)

		found, err := repo.FindBySKU(ctx, "ban-001")
		require.NoError(t, err)
		assert.Equal(t, "BAN-001", found.SKU)
	})

	t.Run("FindSellable excludes unpublished and inactive products", func(t *testing.T) {
		sellable := saveProduct(t, repo, "SELL-001", "Cherry", 3)

		unpublished := saveProduct(t, repo, "HIDE-001", "Hidden Cherry", 3)
		unpublished.Unpublish()
		require.NoError(t, repo.Save(ctx, unpublished))

		inactive := saveProduct(t, repo, "INACT-001", "Retired Cherry", 3)
		require.NoError(t, inactive.Deactivate())
		require.NoError(t, repo.Save(ctx, inactive))

		products, total, err := repo.FindSellable(ctx, catalog.ProductListFilter{Search: "Cherry", Limit: 50})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, products, 1)
		assert.Equal(t, sellable.ID, products[0].ID)
	})

	t.Run("FindSellable filters by category", func(t *testing.T) {
		categoryRepo := persistence.NewGormCategoryRepository(testDB.DB)
		fruit, err := catalog.NewCategory("Fruit")
		require.NoError(t, err)
		require.NoError(t, categoryRepo.Save(ctx, fruit))

		inCategory := saveProduct(t, repo, "CAT-001", "Categorized Fruit", 7)
		inCategory.SetCategory(&fruit.ID)
		require.NoError(t, repo.Save(ctx, inCategory))

		saveProduct(t, repo, "CAT-002", "Uncategorized Fruit", 7)

		products, total, err := repo.FindSellable(ctx, catalog.ProductListFilter{CategoryID: &fruit.ID, Limit: 50})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, products, 1)
		assert.Equal(t, inCategory.ID, products[0].ID)
	})

	t.Run("FindSellable paginates and orders by name", func(t *testing.T) {
		saveProduct(t, repo, "PAGE-001", "Page Fruit A", 1)
		saveProduct(t, repo, "PAGE-002", "Page Fruit B", 1)
		saveProduct(t, repo, "PAGE-003", "Page Fruit C", 1)

		first, total, err := repo.FindSellable(ctx, catalog.ProductListFilter{Search: "Page Fruit", Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, first, 2)
		assert.Equal(t, "Page Fruit A", first[0].Name)
		assert.Equal(t, "Page Fruit B", first[1].Name)

		second, _, err := repo.FindSellable(ctx, catalog.ProductListFilter{Search: "Page Fruit", Offset: 2, Limit: 2})
		require.NoError(t, err)
		require.Len(t, second, 1)
		assert.Equal(t, "Page Fruit C", second[0].Name)
	})

	t.Run("ExistsBySKU", func(t *testing.T) {
		saveProduct(t, repo, "EXIST-001", "Existing", 1)

		exists, err := repo.ExistsBySKU(ctx, "EXIST-001")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsBySKU(ctx, "EXIST-404")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

// TestCategoryRepository_Integration tests the category repository against a
// real PostgreSQL database
func TestCategoryRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)
	repo := persistence.NewGormCategoryRepository(testDB.DB)
	ctx := context.Background()

	t.Run("FindAllActive returns hierarchy in sort order", func(t *testing.T) {
		parent, err := catalog.NewCategory("Electronics")
		require.NoError(t, err)
		parent.SetSortOrder(1)
		require.NoError(t, repo.Save(ctx, parent))

		child, err := catalog.NewChildCategory("Phones", parent)
		require.NoError(t, err)
		child.SetSortOrder(2)
		require.NoError(t, repo.Save(ctx, child))

		hidden, err := catalog.NewCategory("Hidden")
		require.NoError(t, err)
		require.NoError(t, hidden.Deactivate())
		require.NoError(t, repo.Save(ctx, hidden))

		categories, err := repo.FindAllActive(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Electronics", categories[0].Name)
		assert.Equal(t, "Phones", categories[1].Name)
		require.NotNil(t, categories[1].ParentID)
		assert.Equal(t, parent.ID, *categories[1].ParentID)
	})

	t.Run("HasChildren and HasProducts", func(t *testing.T) {
		parent, err := catalog.NewCategory("Grocery")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, parent))

		has, err := repo.HasChildren(ctx, parent.ID)
		require.NoError(t, err)
		assert.False(t, has)

		child, err := catalog.NewChildCategory("Produce", parent)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, child))

		has, err = repo.HasChildren(ctx, parent.ID)
		require.NoError(t, err)
		assert.True(t, has)

		hasProducts, err := repo.HasProducts(ctx, parent.ID)
		require.NoError(t, err)
		assert.False(t, hasProducts)
	})
}
