package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/movie-hunter/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedHealth bool

func (f fixedHealth) Healthy(context.Context) bool { return bool(f) }

func newTestServer(t *testing.T, healthy bool) *Server {
	t.Helper()
	s := New(&Config{Port: "0", CorsOrigins: []string{"*"}}, fixedHealth(healthy)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupMetrics("/metrics")
	t.Cleanup(s.stop)
	return s
}

func serve(s *Server, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(method, path, http.NoBody))
	return rec
}

func TestServer_HealthAndRequestID(t *testing.T) {
	s := newTestServer(t, true)

	rec := serve(s, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_Unhealthy(t *testing.T) {
	s := newTestServer(t, false)

	assert.Equal(t, http.StatusServiceUnavailable, serve(s, http.MethodGet, "/health").Code)
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(t, true)
	serve(s, http.MethodGet, "/health")

	rec := serve(s, http.MethodGet, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "moviehunter_http_requests_total")
}

func TestServer_ErrorHandler(t *testing.T) {
	s := newTestServer(t, true)
	s.Echo.GET("/boom", func(c echo.Context) error {
		return apperr.NewValidation("bad intent")
	})

	rec := serve(s, http.MethodGet, "/boom")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad intent")
}

func TestServer_ShutdownSignal(t *testing.T) {
	s := newTestServer(t, true)

	select {
	case <-s.ShutdownSignal():
		t.Fatal("shutdown signalled before stop")
	default:
	}

	s.stop()
	<-s.ShutdownSignal()
	assert.Error(t, s.Context().Err())
}
