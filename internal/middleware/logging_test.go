package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/bank_transaction_service/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(base))
	r.GET("/transaction/findAll", func(c *gin.Context) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("handled")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/transaction/findAll", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	requestID := w.Header().Get(middleware.RequestIDHeader)
	require.NotEmpty(t, requestID)
	assert.Contains(t, buf.String(), `"msg":"handled"`)
	assert.Contains(t, buf.String(), `"request_id":"`+requestID+`"`)
	assert.Contains(t, buf.String(), `"msg":"Request completed"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := middleware.WithLogger(context.Background(), custom)
	assert.Same(t, custom, middleware.GetLoggerFromCtx(ctx))
}
