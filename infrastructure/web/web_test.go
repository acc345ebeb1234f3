package web_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jrazmi/crudkit/infrastructure/web"
	"github.com/jrazmi/crudkit/sdk/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

func (i item) Validate() error {
	if i.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func newHandler(t *testing.T, opts ...web.HandlerOption) *web.WebHandler {
	t.Helper()
	return web.NewWebHandler(web.HandlerOptions{CORSOrigins: []string{"*"}}, opts...)
}

func TestHandleMethodsAndStatus(t *testing.T) {
	h := newHandler(t)
	g := h.Group("/items")

	g.GET("/{id}", func(ctx context.Context, r *http.Request) web.Encoder {
		id, err := web.ParamInt(r, "id")
		if err != nil {
			return web.NewError(http.StatusBadRequest, err.Error())
		}
		return web.NewJSONResponse(map[string]int{"id": id})
	})
	g.POST("", func(ctx context.Context, r *http.Request) web.Encoder {
		var in item
		if err := web.Decode(r, &in); err != nil {
			return web.NewError(http.StatusBadRequest, err.Error())
		}
		return web.NewJSONResponseWithStatus(in, http.StatusCreated)
	})
	g.DELETE("/{id}", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewNoContent()
	})

	t.Run("get", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/7", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":7}`, rec.Body.String())
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})

	t.Run("bad id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/abc", nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["detail"], "not an integer")
	})

	t.Run("create", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"name":"a"}`)))
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"name":"a"}`, rec.Body.String())
	})

	t.Run("validation hook", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{}`)))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "name is required")
	})

	t.Run("empty body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items", nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no content", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/items/1", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})
}

func TestCORSPreflight(t *testing.T) {
	h := newHandler(t)
	h.GET("/things", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewJSONResponse([]string{})
	})

	req := httptest.NewRequest(http.MethodOptions, "/things", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSSpecificOrigin(t *testing.T) {
	h := web.NewWebHandler(web.HandlerOptions{CORSOrigins: []string{"http://app.local"}})
	h.GET("/things", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewJSONResponse([]string{})
	})

	req := httptest.NewRequest(http.MethodGet, "/things", nil)
	req.Header.Set("Origin", "http://app.local")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://app.local", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestTraceHeader(t *testing.T) {
	h := newHandler(t, web.WithTelemetry(telemetry.NewTelemetry()))
	var seen string
	h.GET("/trace", func(ctx context.Context, r *http.Request) web.Encoder {
		seen = telemetry.NewTelemetry().GetTraceID(ctx)
		return web.NewJSONResponse("ok")
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trace", nil))
		assert.NotEqual(t, telemetry.NoTrace, seen)
		assert.Equal(t, seen, rec.Header().Get(web.TraceHeader))
	})

	t.Run("adopted", func(t *testing.T) {
		const inbound = "0190a4c2-7b1e-7c3a-9f00-1234567890ab"
		req := httptest.NewRequest(http.MethodGet, "/trace", nil)
		req.Header.Set(web.TraceHeader, inbound)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, inbound, seen)
		assert.Equal(t, inbound, rec.Header().Get(web.TraceHeader))
	})
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(name string) web.Middleware {
		return func(next web.HandlerFunc) web.HandlerFunc {
			return func(ctx context.Context, r *http.Request) web.Encoder {
				order = append(order, name)
				return next(ctx, r)
			}
		}
	}

	h := web.NewWebHandler(web.HandlerOptions{}, web.WithGlobalMiddleware(mw("global")))
	g := h.Group("/v1", mw("group"))
	g.GET("/x", func(ctx context.Context, r *http.Request) web.Encoder {
		order = append(order, "handler")
		return web.NewJSONResponse("ok")
	}, mw("route"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/x", nil))
	assert.Equal(t, []string{"global", "group", "route", "handler"}, order)
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNoContent, web.StatusCode(nil))
	assert.Equal(t, http.StatusNoContent, web.StatusCode(web.NewNoContent()))
	assert.Equal(t, http.StatusTeapot, web.StatusCode(web.NewError(http.StatusTeapot, "x")))
	assert.Equal(t, http.StatusOK, web.StatusCode(web.NewJSONResponse(1)))
}

func TestServerRunShutsDown(t *testing.T) {
	srv := web.NewServer(web.ServerConfig{
		Port:            "127.0.0.1:0",
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
	}, web.WithHandler(newHandler(t)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServerFromEnv(t *testing.T) {
	t.Setenv("WEBTEST_PORT", ":9090")
	t.Setenv("WEBTEST_WRITE_TIMEOUT", "3s")

	srv, err := web.NewServerFromEnv("WEBTEST")
	require.NoError(t, err)
	assert.Equal(t, ":9090", srv.Addr)
	assert.Equal(t, 3*time.Second, srv.WriteTimeout)
	assert.Equal(t, 20*time.Second, srv.Config.ShutdownTimeout)
}
