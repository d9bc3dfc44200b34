package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "/api", r.prefix)
	assert.Empty(t, r.registrars)
}

func TestRouterWithPrefix(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithPrefix("/storefront"))

	assert.Equal(t, "/storefront", r.prefix)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("system", "")
	group.POST("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.Register(group)
	r.Setup()

	req := httptest.NewRequest("POST", "/api/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestRouterUse(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	r.Use(func(c *gin.Context) {
		c.Header("X-Test-Middleware", "applied")
		c.Next()
	})

	group := NewDomainGroup("cart", "/cart")
	group.POST("/view", func(c *gin.Context) {
		c.String(http.StatusOK, "cart")
	})

	r.Register(group).Setup()

	req := httptest.NewRequest("POST", "/api/cart/view", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "applied", w.Header().Get("X-Test-Middleware"))
}

func TestDomainGroup(t *testing.T) {
	t.Run("creates group with name and prefix", func(t *testing.T) {
		g := NewDomainGroup("customer", "/customer")
		assert.Equal(t, "customer", g.Name())
		assert.Equal(t, "/customer", g.Prefix())
	})

	t.Run("registers GET route", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("catalog", "")
		g.GET("/products", func(c *gin.Context) {
			c.String(http.StatusOK, "products")
		})

		api := engine.Group("/api")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("GET", "/api/products", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("registers POST route", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("customer", "/customer")
		g.POST("/create", func(c *gin.Context) {
			c.String(http.StatusCreated, "created")
		})

		api := engine.Group("/api")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("POST", "/api/customer/create", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("applies middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("cart", "/cart")

		g.Use(func(c *gin.Context) {
			c.Header("X-Group-Middleware", "applied")
			c.Next()
		})

		g.POST("/add", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		api := engine.Group("/api")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("POST", "/api/cart/add", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "applied", w.Header().Get("X-Group-Middleware"))
	})

	t.Run("creates subgroups", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("customer", "/customer")

		account := g.Group("account", "/account")
		account.POST("/password", func(c *gin.Context) {
			c.String(http.StatusOK, "changed")
		})

		api := engine.Group("/api")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("POST", "/api/customer/account/password", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "changed", w.Body.String())
	})
}

func TestMultipleDomainGroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	customer := NewDomainGroup("customer", "/customer")
	customer.POST("/login", func(c *gin.Context) {
		c.String(http.StatusOK, "login")
	})

	cart := NewDomainGroup("cart", "/cart")
	cart.POST("/view", func(c *gin.Context) {
		c.String(http.StatusOK, "cart")
	})

	r.Register(customer).Register(cart)
	r.Setup()

	req1 := httptest.NewRequest("POST", "/api/customer/login", nil)
	w1 := httptest.NewRecorder()
	engine.ServeHTTP(w1, req1)
	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, "login", w1.Body.String())

	req2 := httptest.NewRequest("POST", "/api/cart/view", nil)
	w2 := httptest.NewRecorder()
	engine.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, "cart", w2.Body.String())
}

func TestChainedMethodCalls(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	g := NewDomainGroup("cart", "/cart")
	g.POST("/add", func(c *gin.Context) { c.String(http.StatusOK, "add") }).
		POST("/view", func(c *gin.Context) { c.String(http.StatusOK, "view") }).
		POST("/remove", func(c *gin.Context) { c.String(http.StatusOK, "remove") })

	r.Register(g).Setup()

	for _, path := range []string{"/api/cart/add", "/api/cart/view", "/api/cart/remove"} {
		req := httptest.NewRequest("POST", path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "route POST %s should work", path)
	}
}
