package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"feedbackapi/internal/models/response_models"
	"feedbackapi/pkg/utils"
)

func TestHealthController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var pingErr error
	h := NewHealthController(func(context.Context) error { return pingErr }, zap.NewNop())
	router := gin.New()
	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Feedback API is running!", decode[utils.MessageResponse](t, resp).Message)

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "ok", decode[response_models.HealthResponse](t, resp).Status)

	pingErr = errors.New("dial tcp: connection refused")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	assert.Equal(t, "unreachable", decode[response_models.HealthResponse](t, resp).Database)
}
