package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"workoutapi/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(middleware.RequestIDKey)) })

	w := serve(r, http.MethodGet, "/", http.Header{middleware.RequestIDHeader: {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())

	w = serve(r, http.MethodGet, "/", nil)
	generated := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	w = serve(r, http.MethodGet, "/", http.Header{middleware.RequestIDHeader: {strings.Repeat("x", 65)}})
	assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/meta", func(c *gin.Context) {
		_ = c.Error(errors.New("connection refused")).SetMeta("Erro ao listar atletas")
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	r.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"ok": false})
		_ = c.Error(errors.New("late"))
	})

	w := serve(r, http.MethodGet, "/meta", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Erro ao listar atletas"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "connection refused")

	w = serve(r, http.MethodGet, "/plain", nil)
	assert.JSONEq(t, `{"detail":"Erro interno do servidor"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/written", nil)
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.GET("/", func(c *gin.Context) { panic("kaboom") })

	w := serve(r, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Erro interno do servidor"}`, w.Body.String())
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORS())
	r.PATCH("/atletas/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/atletas/1", http.Header{"Origin": {"http://localhost:3000"}})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := gin.New()
	r.Use(middleware.NewMetrics(reg).Handler())
	r.GET("/atletas/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/atletas/1", nil)
	serve(r, http.MethodGet, "/atletas/2", nil)
	serve(r, http.MethodGet, "/nope", nil)

	expected := `
# HELP workout_api_http_requests_total HTTP requests by route, method and status.
# TYPE workout_api_http_requests_total counter
workout_api_http_requests_total{method="GET",route="/atletas/:id",status="200"} 2
workout_api_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "workout_api_http_requests_total"))
}
