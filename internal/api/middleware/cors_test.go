package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ConfigCORS(origins))
	r.GET("/Celebrants", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	return r
}

func TestConfigCORS(t *testing.T) {
	t.Run("allowed origin", func(t *testing.T) {
		r := newRouter([]string{"http://localhost:5173"})

		req := httptest.NewRequest(http.MethodGet, "/Celebrants", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		r := newRouter([]string{"http://localhost:5173"})

		req := httptest.NewRequest(http.MethodGet, "/Celebrants", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no list allows any origin", func(t *testing.T) {
		r := newRouter(nil)

		req := httptest.NewRequest(http.MethodGet, "/Celebrants", nil)
		req.Header.Set("Origin", "http://anywhere.example")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
