//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"rebate-ledger/internal/domain/ledger"
	"rebate-ledger/internal/handler/middleware"
	"rebate-ledger/internal/pkg/config"
	"rebate-ledger/internal/pkg/jwt"
	"rebate-ledger/tests/common/httptest"
	usecasemock "rebate-ledger/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		router := gin.New()
		router.GET("/me", middleware.NewAuthMiddleware(validator).RequireAuth(), func(c *gin.Context) {
			owner, ok := middleware.GetOwnerID(c)
			require.True(t, ok)
			c.String(http.StatusOK, owner.String())
		})
		return router, validator
	}

	t.Run("valid token exposes the owner", func(t *testing.T) {
		router, validator := setup(t)
		owner := uuid.New()
		validator.EXPECT().ValidateToken("good").Return(owner, nil).Times(1)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "good")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, owner.String(), rec.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		router, _ := setup(t)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("rejected token", func(t *testing.T) {
		router, validator := setup(t)
		validator.EXPECT().ValidateToken("stale").Return(uuid.Nil, jwt.ErrExpiredToken).Times(1)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "stale")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	router.GET("/private", func(c *gin.Context) { _ = c.Error(ledger.ErrEntryNotFound) })
	router.GET("/opaque", func(c *gin.Context) { _ = c.Error(errors.New("boom")) })
	router.GET("/panic", func(_ *gin.Context) { panic(errors.New("kaboom")) })

	t.Run("private domain error is classified", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, ledger.ErrEntryNotFound.Error())
	})

	t.Run("unclassified error is 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/opaque", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("panic is recovered", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}

func TestLoggingMiddleware_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	router := gin.New()
	router.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		assert.NotEmpty(t, middleware.GetRequestID(c))
		c.Status(http.StatusNoContent)
	})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	httptest.AssertHeaderPresent(t, rec, "X-Request-ID")
}

func TestLimitBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/upload", middleware.LimitBody(8), func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	small := httptest.PerformRequest(t, router, http.MethodPost, "/upload", "ok", "")
	assert.Equal(t, http.StatusOK, small.Code)

	big := httptest.PerformRequest(t, router, http.MethodPost, "/upload", strings.Repeat("x", 64), "")
	assert.Equal(t, http.StatusRequestEntityTooLarge, big.Code)
}
