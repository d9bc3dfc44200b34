package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBodyLimit(t *testing.T) {
	router := gin.New()
	router.Use(BodyLimit(16))
	router.POST("/api/cart/add", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	t.Run("allows small body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(`{"a":1}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects oversized body", func(t *testing.T) {
		body := strings.Repeat("x", 64)
		req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, rec.Body.String(), "REQUEST_TOO_LARGE")
	})

	t.Run("allows empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/add", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
