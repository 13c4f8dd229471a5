//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guillotegh/sistema-reservas/internal/handler/httperr"
	"github.com/guillotegh/sistema-reservas/internal/handler/middleware"
)

func performRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(rec, req)
	return rec
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("renders the recorded response when the handler only records", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/t", func(c *gin.Context) {
			_ = c.Error(&gin.Error{
				Err:  errors.New("no rows in result set"),
				Type: gin.ErrorTypePublic,
				Meta: httperr.Response{Status: http.StatusNotFound, Error: "Reserva no encontrada"},
			})
		})

		rec := performRequest(router, "/t")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Reserva no encontrada"}`, rec.Body.String())
	})

	t.Run("falls back to a generic 500 body", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/t", func(c *gin.Context) {
			_ = c.Error(errors.New("unhandled"))
		})

		rec := performRequest(router, "/t")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Error interno del servidor"}`, rec.Body.String())
	})

	t.Run("leaves written responses alone", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/t", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusBadRequest, errors.New("bad id"), "ID de reserva inválido")
		})

		rec := performRequest(router, "/t")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"ID de reserva inválido"}`, rec.Body.String())
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/t", func(*gin.Context) {
		panic("boom")
	})

	rec := performRequest(router, "/t")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Error interno del servidor"}`, rec.Body.String())
}
