package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keoroanthony/storefront/internal/middleware"
	"github.com/Keoroanthony/storefront/internal/utils"
)

func newRouter(logger *slog.Logger, development bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), middleware.Exception(logger, development), middleware.CORS([]string{"http://localhost:3000"}))
	r.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/boom", func(c *gin.Context) { panic("basket exploded") })
	return r
}

func TestExceptionMiddleware(t *testing.T) {
	t.Run("Development responses carry the panic detail", func(t *testing.T) {
		var logs bytes.Buffer
		router := newRouter(slog.New(slog.NewJSONHandler(&logs, nil)), true)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		var problem utils.Problem
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &problem))
		assert.Equal(t, "Internal Server Error", problem.Title)
		assert.Equal(t, http.StatusInternalServerError, problem.Status)
		assert.Contains(t, problem.Detail, "basket exploded")
		assert.Contains(t, logs.String(), "unhandled panic")
	})

	t.Run("Production responses hide the detail", func(t *testing.T) {
		router := newRouter(slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)), false)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		var problem utils.Problem
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &problem))
		assert.Empty(t, problem.Detail)
	})
}

func TestRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	router := newRouter(slog.New(slog.NewJSONHandler(&logs, nil)), false)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ok", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/ok", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
}

func TestCORSAllowsCredentialedFrontEnd(t *testing.T) {
	router := newRouter(slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)), false)

	t.Run("Allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/ok", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", recorder.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("Other origins are refused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set("Origin", "http://evil.test")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})
}
