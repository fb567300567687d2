package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessdev/holiday-service/internal/config"
	"github.com/tessdev/holiday-service/internal/errs"
	"github.com/tessdev/holiday-service/internal/server"
)

func testServer(t *testing.T) *server.Server {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Primary.Env = "test"
	logger := zerolog.Nop()

	return &server.Server{Config: cfg, Logger: &logger}
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 500))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
	assert.NotNil(t, LoggerFromContext(c.Request().Context()))
}

func TestEnhanceContext_StoresLogger(t *testing.T) {
	s := testServer(t)
	e := echo.New()
	e.Use(RequestID(), NewContextEnhancer(s).EnhanceContext())

	var fromEcho, fromCtx *zerolog.Logger
	e.GET("/holidays", func(c echo.Context) error {
		fromEcho = GetLogger(c)
		fromCtx = LoggerFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/holidays", nil))
	require.NotNil(t, fromEcho)
	assert.Same(t, fromEcho, fromCtx)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGlobalErrorHandler(t *testing.T) {
	s := testServer(t)
	global := NewGlobalMiddlewares(s)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"http error", errs.NewHolidaysUnavailableError(), http.StatusServiceUnavailable, errs.CodeHolidaysUnavailable},
		{"route not found", echo.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"other echo error", echo.NewHTTPError(http.StatusRequestEntityTooLarge, "too big"), http.StatusRequestEntityTooLarge, "REQUEST_ENTITY_TOO_LARGE"},
		{"database error", &pgconn.PgError{Code: "08006"}, http.StatusServiceUnavailable, errs.CodeHolidaysUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/holidays", nil), rec)

			global.GlobalErrorHandler(tc.err, c)

			assert.Equal(t, tc.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.status, body.Status)
		})
	}
}

func TestGlobalErrorHandler_HidesInternalMessages(t *testing.T) {
	global := NewGlobalMiddlewares(testServer(t))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/holidays", nil), rec)
	global.GlobalErrorHandler(errors.New("password=hunter2"), c)

	assert.NotContains(t, rec.Body.String(), "hunter2")
}

func TestRateLimit_Denies(t *testing.T) {
	s := testServer(t)
	s.Config.Server.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 1}

	rl := NewRateLimitMiddleware(s)
	require.True(t, rl.Enabled())

	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Use(rl.Limit())
	e.GET("/holidays", func(c echo.Context) error { return c.JSON(http.StatusOK, []string{}) })

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/holidays", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/holidays", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeError(t, second).Code)
}
