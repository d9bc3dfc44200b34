// End-to-end tests exercising the storefront API against a real PostgreSQL
// database: registration, login, browsing and the cart flow.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cartapp "github.com/storefront/backend/internal/application/cart"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	customerapp "github.com/storefront/backend/internal/application/customer"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// StorefrontTestServer wraps the test database and HTTP server for API testing
type StorefrontTestServer struct {
	DB          *TestDB
	Engine      *gin.Engine
	ProductRepo *persistence.GormProductRepository
	JWTService  *auth.JWTService
}

// NewStorefrontTestServer creates a test server with the full storefront stack
func NewStorefrontTestServer(t *testing.T) *StorefrontTestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	testDB := NewTestDB(t)

	customerRepo := persistence.NewGormCustomerRepository(testDB.DB)
	productRepo := persistence.NewGormProductRepository(testDB.DB)
	categoryRepo := persistence.NewGormCategoryRepository(testDB.DB)
	cartRepo := persistence.NewGormCartRepository(testDB.DB)

	jwtConfig := config.JWTConfig{
		Secret:                 "test-secret-key-for-api-testing-1234567890",
		RefreshSecret:          "test-refresh-secret-key-for-api-testing",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "storefront-test",
		MaxRefreshCount:        10,
	}
	jwtService := auth.NewJWTService(jwtConfig)
	blacklist := auth.NewInMemoryTokenBlacklist()

	log := zap.NewNop()
	customerService := customerapp.NewCustomerService(customerRepo, log)
	authService := customerapp.NewAuthService(customerRepo, jwtService, blacklist,
		customerapp.DefaultAuthServiceConfig(), log)
	productService := catalogapp.NewProductService(productRepo, config.CatalogConfig{
		DefaultPageSize: 20,
		MaxPageSize:     100,
	})
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	cartService := cartapp.NewCartService(cartRepo, productRepo, log)

	customerHandler := handler.NewCustomerHandler(customerService)
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	cartHandler := handler.NewCartHandler(cartService)

	engine := gin.New()
	api := engine.Group("/api")

	customerGroup := api.Group("/customer")
	customerGroup.POST("/create", customerHandler.Register)
	customerGroup.POST("/login", authHandler.Login)
	customerGroup.POST("/refresh", authHandler.RefreshToken)

	protectedCustomer := customerGroup.Group("")
	protectedCustomer.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
	}))
	protectedCustomer.POST("/logout", authHandler.Logout)
	protectedCustomer.POST("/me", authHandler.GetCurrentCustomer)
	protectedCustomer.POST("/password", authHandler.ChangePassword)

	api.POST("/products", productHandler.List)
	api.POST("/categories", categoryHandler.List)

	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
	}))
	cartGroup.POST("/add", cartHandler.Add)
	cartGroup.POST("/view", cartHandler.View)
	cartGroup.POST("/remove", cartHandler.Remove)

	return &StorefrontTestServer{
		DB:          testDB,
		Engine:      engine,
		ProductRepo: productRepo,
		JWTService:  jwtService,
	}
}

func (s *StorefrontTestServer) request(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (s *StorefrontTestServer) seedProduct(t *testing.T, sku, name string, price int64) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(sku, name, "pcs", valueobject.NewMoneyUSD(decimal.NewFromInt(price)))
	require.NoError(t, err)
	require.NoError(t, s.ProductRepo.Save(context.Background(), p))
	return p
}

func TestStorefrontAPI_FullShoppingFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	server := NewStorefrontTestServer(t)

	apple := server.seedProduct(t, "APL-001", "Apple", 10)
	banana := server.seedProduct(t, "BAN-001", "Banana", 5)

	// Register
	w := server.request(t, http.MethodPost, "/api/customer/create", "", map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "Password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Login
	w = server.request(t, http.MethodPost, "/api/customer/login", "", map[string]string{
		"email":    "jane@example.com",
		"password": "Password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	token := response["data"].(map[string]interface{})["token"].(map[string]interface{})
	accessToken := token["access_token"].(string)
	require.NotEmpty(t, accessToken)

	// Browse products without auth
	w = server.request(t, http.MethodPost, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	response = decodeResponse(t, w)
	assert.Equal(t, float64(2), response["data"].(map[string]interface{})["total"])

	// Add both products to the cart
	w = server.request(t, http.MethodPost, "/api/cart/add", accessToken, map[string]interface{}{
		"product_id": apple.ID.String(),
		"quantity":   "2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = server.request(t, http.MethodPost, "/api/cart/add", accessToken, map[string]interface{}{
		"product_id": banana.ID.String(),
		"quantity":   "4",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// View: 2*10 + 4*5 = 40
	w = server.request(t, http.MethodPost, "/api/cart/view", accessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	response = decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["items_count"])
	assert.Equal(t, "40", data["total_amount"])

	// Adding the same product again merges the line
	w = server.request(t, http.MethodPost, "/api/cart/add", accessToken, map[string]interface{}{
		"product_id": apple.ID.String(),
		"quantity":   "1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	response = decodeResponse(t, w)
	data = response["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["items_count"])
	assert.Equal(t, "50", data["total_amount"])

	// Remove the bananas
	w = server.request(t, http.MethodPost, "/api/cart/remove", accessToken, map[string]interface{}{
		"product_id": banana.ID.String(),
	})
	require.Equal(t, http.StatusOK, w.Code)
	response = decodeResponse(t, w)
	data = response["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["items_count"])
	assert.Equal(t, "30", data["total_amount"])

	// Profile
	w = server.request(t, http.MethodPost, "/api/customer/me", accessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	response = decodeResponse(t, w)
	customerData := response["data"].(map[string]interface{})["customer"].(map[string]interface{})
	assert.Equal(t, "jane@example.com", customerData["email"])

	// Logout revokes the token
	w = server.request(t, http.MethodPost, "/api/customer/logout", accessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = server.request(t, http.MethodPost, "/api/customer/me", accessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStorefrontAPI_CartRequiresAuth(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	server := NewStorefrontTestServer(t)

	w := server.request(t, http.MethodPost, "/api/cart/view", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStorefrontAPI_DuplicateRegistration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	server := NewStorefrontTestServer(t)

	payload := map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "Password123",
	}

	w := server.request(t, http.MethodPost, "/api/customer/create", "", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = server.request(t, http.MethodPost, "/api/customer/create", "", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_ALREADY_EXISTS")
}

func TestStorefrontAPI_AccountLockout(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	server := NewStorefrontTestServer(t)

	w := server.request(t, http.MethodPost, "/api/customer/create", "", map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "Password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	badLogin := map[string]string{
		"email":    "jane@example.com",
		"password": "WrongPassword1",
	}

	// Failures below the limit report invalid credentials
	for i := 0; i < 4; i++ {
		w = server.request(t, http.MethodPost, "/api/customer/login", "", badLogin)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	// The fifth failure locks the account
	w = server.request(t, http.MethodPost, "/api/customer/login", "", badLogin)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_ACCOUNT_LOCKED")

	// The correct password is rejected while locked
	w = server.request(t, http.MethodPost, "/api/customer/login", "", map[string]string{
		"email":    "jane@example.com",
		"password": "Password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_ACCOUNT_LOCKED")
}
