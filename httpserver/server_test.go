// nolint: funlen
package httpserver_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moviecredits/errs"
	"moviecredits/httpserver"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefault(t *testing.T) {
	t.Run("uses port and allows every origin", func(t *testing.T) {
		server := httpserver.Default(testConfig())

		assert.NotNil(t, server.Router)
		assert.Equal(t, ":8080", server.Addr)
		assert.Equal(t, []string{"*"}, server.AllowOrigins)
		assert.Zero(t, server.RateLimit)
	})

	t.Run("splits configured origins", func(t *testing.T) {
		cfg := testConfig()
		cfg.AllowOrigins = "https://a.example,https://b.example"

		server := httpserver.Default(cfg)

		assert.Equal(t, []string{"https://a.example", "https://b.example"}, server.AllowOrigins)
	})
}

func TestServerStartAndShutdown(t *testing.T) {
	server := httpserver.Default(testConfig())
	port := allocateRandomPort(t)
	server.Addr = fmt.Sprintf("127.0.0.1:%d", port)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/healthcheck", port))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 50*time.Millisecond, "server never became ready")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("unexpected error during shutdown: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("server did not stop within timeout")
	}
}

func TestGlobalMiddlewares(t *testing.T) {
	server := httpserver.Default(testConfig())

	rec := serve(server, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID), "request id header")
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXContentTypeOptions), "secure headers")
}

func TestCORSConfiguration(t *testing.T) {
	tests := []struct {
		name          string
		allowOrigins  string
		requestOrigin string
		expected      string
	}{
		{name: "wildcard allows all origins", allowOrigins: "", requestOrigin: "https://example.com", expected: "*"},
		{name: "listed origin is echoed", allowOrigins: "https://example.com", requestOrigin: "https://example.com", expected: "https://example.com"},
		{name: "unlisted origin gets no header", allowOrigins: "https://example.com", requestOrigin: "https://evil.test", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.AllowOrigins = tt.allowOrigins
			server := httpserver.Default(cfg)

			req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
			req.Header.Set(echo.HeaderOrigin, tt.requestOrigin)
			rec := serve(server, req)

			assert.Equal(t, tt.expected, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		})
	}
}

func TestRateLimiter(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = 1
	server := httpserver.Default(cfg)

	var statuses []int
	for i := 0; i < 5; i++ {
		rec := serve(server, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Contains(t, statuses, http.StatusTooManyRequests)
}

func TestRecoverFromPanic(t *testing.T) {
	server := httpserver.Default(testConfig())
	server.Router.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})

	rec := serve(server, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeAPIResponse(t, rec).Message)
}

func TestCustomErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectedMsg    string
	}{
		{"invalid returns 400", errs.Errorf(errs.EINVALID, "invalid input"), http.StatusBadRequest, "100010", "invalid input"},
		{"not found returns 404", errs.Errorf(errs.ENOTFOUND, "Movie not found"), http.StatusNotFound, "100404", "Movie not found"},
		{"conflict returns 409", errs.Errorf(errs.ECONFLICT, "already exists"), http.StatusConflict, "100409", "already exists"},
		{"unauthorized returns 401", errs.Errorf(errs.EUNAUTHORIZED, "unauthorized access"), http.StatusUnauthorized, "100401", "unauthorized access"},
		{"not implemented returns 501", errs.Errorf(errs.ENOTIMPLEMENTED, "not implemented"), http.StatusNotImplemented, "100501", "not implemented"},
		{"internal hides message", errs.Errorf(errs.EINTERNAL, "database connection failed"), http.StatusInternalServerError, "100500", "Internal server error"},
		{"plain error hides message", errors.New("some random error"), http.StatusInternalServerError, "100500", "Internal server error"},
		{"wrapped app error keeps code", fmt.Errorf("get movie: %w", errs.Errorf(errs.ENOTFOUND, "Movie not found")), http.StatusNotFound, "100404", "Movie not found"},
		{"echo error keeps status", echo.NewHTTPError(http.StatusForbidden, "forbidden"), http.StatusForbidden, "100403", "forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httpserver.Default(testConfig())
			server.Router.GET("/error", func(c echo.Context) error {
				return tt.err
			})

			rec := serve(server, httptest.NewRequest(http.MethodGet, "/error", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			resp := decodeAPIResponse(t, rec)
			assert.Equal(t, tt.expectedCode, resp.Code)
			assert.Equal(t, tt.expectedMsg, resp.Message)
		})
	}

	t.Run("unknown route returns 404", func(t *testing.T) {
		server := httpserver.Default(testConfig())

		rec := serve(server, httptest.NewRequest(http.MethodGet, "/director", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "100404", decodeAPIResponse(t, rec).Code)
	})
}

func TestServerErrorsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	server := httpserver.Default(testConfig())
	server.Logger = zap.New(core).Sugar()
	server.Router.GET("/error", func(c echo.Context) error {
		return errors.New("connection reset")
	})
	server.Router.GET("/invalid", func(c echo.Context) error {
		return errs.Errorf(errs.EINVALID, "bad")
	})

	serve(server, httptest.NewRequest(http.MethodGet, "/invalid", nil))
	rec := serve(server, httptest.NewRequest(http.MethodGet, "/error", nil))

	require.Equal(t, 1, logs.Len(), "only 5xx errors are logged")
	entry := logs.All()[0]
	assert.Equal(t, "connection reset", entry.Message)
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), entry.ContextMap()["request_id"])
}

func allocateRandomPort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}
