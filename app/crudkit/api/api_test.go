package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/jrazmi/crudkit/app/crudkit/api"
	"github.com/jrazmi/crudkit/app/crudkit/config"
	"github.com/jrazmi/crudkit/infrastructure/web"
	"github.com/jrazmi/crudkit/sdk/logger"
	"github.com/jrazmi/crudkit/sdk/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prefix = "APITEST"

type client struct {
	t   *testing.T
	srv *httptest.Server
}

func newClient(t *testing.T, settings config.Settings) *client {
	t.Helper()
	ctx := context.Background()
	log := logger.NewDiscard()

	if settings.Store == config.StoreSQLite {
		t.Setenv(prefix+"_SQLITE_PATH", filepath.Join(t.TempDir(), "crudkit.db"))
	}

	backing, err := api.Open(ctx, log, prefix, settings)
	require.NoError(t, err)
	t.Cleanup(backing.Close)

	h := api.WebHandler(config.Crudkit{
		Logger:       log,
		Telemetry:    telemetry.NewTelemetry(),
		Settings:     settings,
		Repositories: backing.Repositories,
		Healthy:      backing.Healthy,
	}, web.HandlerOptions{CORSOrigins: []string{"*"}})

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &client{t: t, srv: srv}
}

func defaults(store string) config.Settings {
	return config.Settings{Store: store, AutoMigrate: true, DeleteResponse: "empty"}
}

func (c *client) do(method, path, body string) (*http.Response, string) {
	c.t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, c.srv.URL+path, rdr)
	require.NoError(c.t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.srv.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, string(data)
}

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

type todo struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	TimeEstimate *int    `json:"time_estimate"`
	Completed    bool    `json:"completed"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    *string `json:"updated_at"`
}

var stores = []string{config.StoreMemory, config.StoreSQLite}

func TestStatusRoutes(t *testing.T) {
	c := newClient(t, defaults(config.StoreMemory))

	resp, body := c.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Welcome to crudkit"}`, body)
	assert.NotEmpty(t, resp.Header.Get(web.TraceHeader))

	resp, body = c.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy","message":"Service is running"}`, body)

	resp, body = c.do(http.MethodGet, "/debug/vars", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"requests"`)
}

func TestTodos(t *testing.T) {
	for _, store := range stores {
		t.Run(store, func(t *testing.T) {
			c := newClient(t, defaults(store))

			t.Run("task alias creates and reads back", func(t *testing.T) {
				resp, body := c.do(http.MethodPost, "/todos", `{"task":"Test task"}`)
				require.Equal(t, http.StatusCreated, resp.StatusCode, body)
				created := decode[todo](t, body)
				assert.Positive(t, created.ID)
				assert.Equal(t, "Test task", created.Title)
				assert.False(t, created.Completed)

				resp, got := c.do(http.MethodGet, "/todos/"+strconv.Itoa(created.ID), "")
				require.Equal(t, http.StatusOK, resp.StatusCode)
				assert.JSONEq(t, body, got)
			})

			t.Run("duplicate explicit id", func(t *testing.T) {
				resp, body := c.do(http.MethodPost, "/todos", `{"title":"Learn Docker","id":10}`)
				require.Equal(t, http.StatusCreated, resp.StatusCode, body)
				assert.Equal(t, 10, decode[todo](t, body).ID)

				resp, body = c.do(http.MethodPost, "/todos", `{"title":"Learn Docker","id":10}`)
				assert.Equal(t, http.StatusConflict, resp.StatusCode)
				assert.JSONEq(t, `{"detail":"Todo with ID 10 already exists"}`, body)
			})

			t.Run("non positive id", func(t *testing.T) {
				resp, body := c.do(http.MethodPost, "/todos", `{"title":"zero","id":0}`)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
				assert.JSONEq(t, `{"detail":"ID 0 is not allowed"}`, body)
			})

			t.Run("validation", func(t *testing.T) {
				resp, body := c.do(http.MethodPost, "/todos", `{"time_estimate":5}`)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
				assert.JSONEq(t, `{"detail":"validation failed on title (required)"}`, body)

				resp, _ = c.do(http.MethodPost, "/todos", `{"title":`)
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

				resp, body = c.do(http.MethodPost, "/todos", "")
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
				assert.JSONEq(t, `{"detail":"request body is empty"}`, body)
			})

			t.Run("complete keeps the stored title", func(t *testing.T) {
				resp, body := c.do(http.MethodPatch, "/todos/10/complete", "")
				require.Equal(t, http.StatusOK, resp.StatusCode, body)
				got := decode[todo](t, body)
				assert.True(t, got.Completed)
				assert.Equal(t, "Learn Docker", got.Title)
				assert.NotNil(t, got.UpdatedAt)

				resp, body = c.do(http.MethodPatch, "/todos/999/complete", "")
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
				assert.JSONEq(t, `{"detail":"Todo not found"}`, body)
			})

			t.Run("update", func(t *testing.T) {
				resp, before := c.do(http.MethodGet, "/todos/10", "")
				require.Equal(t, http.StatusOK, resp.StatusCode)

				resp, body := c.do(http.MethodPatch, "/todos/10", `{}`)
				require.Equal(t, http.StatusOK, resp.StatusCode)
				assert.JSONEq(t, before, body)

				resp, body = c.do(http.MethodPut, "/todos/10", `{"time_estimate":45}`)
				require.Equal(t, http.StatusOK, resp.StatusCode)
				got := decode[todo](t, body)
				require.NotNil(t, got.TimeEstimate)
				assert.Equal(t, 45, *got.TimeEstimate)
				assert.Equal(t, "Learn Docker", got.Title)

				resp, _ = c.do(http.MethodPut, "/todos/999", `{"title":"x"}`)
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			})

			t.Run("list filters and paging", func(t *testing.T) {
				resp, body := c.do(http.MethodGet, "/todos", "")
				require.Equal(t, http.StatusOK, resp.StatusCode)
				all := decode[[]todo](t, body)
				assert.Len(t, all, 2)
				assert.Equal(t, "2", resp.Header.Get("X-Total-Count"))

				resp, body = c.do(http.MethodGet, "/todos?completed=true", "")
				require.Equal(t, http.StatusOK, resp.StatusCode)
				done := decode[[]todo](t, body)
				require.Len(t, done, 1)
				assert.Equal(t, 10, done[0].ID)

				resp, body = c.do(http.MethodGet, "/todos?search=test", "")
				require.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Len(t, decode[[]todo](t, body), 1)

				resp, body = c.do(http.MethodGet, "/todos?skip=1&limit=5", "")
				require.Equal(t, http.StatusOK, resp.StatusCode)
				page := decode[[]todo](t, body)
				require.Len(t, page, 1)
				assert.Equal(t, 10, page[0].ID)
				assert.Equal(t, "2", resp.Header.Get("X-Total-Count"))

				resp, body = c.do(http.MethodGet, "/todos?skip=50", "")
				require.Equal(t, http.StatusOK, resp.StatusCode)
				assert.JSONEq(t, `[]`, body)

				resp, body = c.do(http.MethodGet, "/todos?limit=ten", "")
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
				assert.JSONEq(t, `{"detail":"limit must be an integer, got \"ten\""}`, body)

				resp, _ = c.do(http.MethodGet, "/todos?completed=maybe", "")
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			})

			t.Run("delete", func(t *testing.T) {
				resp, body := c.do(http.MethodDelete, "/todos/10", "")
				assert.Equal(t, http.StatusNoContent, resp.StatusCode)
				assert.Empty(t, body)

				resp, _ = c.do(http.MethodDelete, "/todos/10", "")
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)

				resp, body = c.do(http.MethodGet, "/todos/10", "")
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
				assert.JSONEq(t, `{"detail":"Todo not found"}`, body)
			})

			t.Run("ids are never reused", func(t *testing.T) {
				resp, body := c.do(http.MethodPost, "/todos", `{"title":"after"}`)
				require.Equal(t, http.StatusCreated, resp.StatusCode)
				assert.Greater(t, decode[todo](t, body).ID, 10)
			})

			t.Run("bad path id", func(t *testing.T) {
				resp, body := c.do(http.MethodGet, "/todos/abc", "")
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
				assert.JSONEq(t, `{"detail":"path parameter id: \"abc\" is not an integer"}`, body)

				resp, body = c.do(http.MethodGet, "/todos/0", "")
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
				assert.JSONEq(t, `{"detail":"Todo not found"}`, body)
			})
		})
	}
}

func TestTasks(t *testing.T) {
	for _, store := range stores {
		t.Run(store, func(t *testing.T) {
			c := newClient(t, defaults(store))

			resp, body := c.do(http.MethodPost, "/tasks", `{"title":"Write docs","description":"api section"}`)
			require.Equal(t, http.StatusCreated, resp.StatusCode, body)
			created := decode[map[string]any](t, body)
			assert.Equal(t, "api section", created["description"])
			assert.Equal(t, false, created["completed"])
			id := strconv.Itoa(int(created["id"].(float64)))

			resp, body = c.do(http.MethodPatch, "/tasks/"+id, `{"completed":true}`)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			updated := decode[map[string]any](t, body)
			assert.Equal(t, true, updated["completed"])
			assert.Equal(t, "api section", updated["description"])

			resp, body = c.do(http.MethodGet, "/tasks?completed=false", "")
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `[]`, body)
			assert.Equal(t, "0", resp.Header.Get("X-Total-Count"))

			resp, body = c.do(http.MethodPost, "/tasks", `{"title":"x","id":5}`)
			require.Equal(t, http.StatusCreated, resp.StatusCode)
			assert.NotEqual(t, float64(5), decode[map[string]any](t, body)["id"], "tasks ignore client ids")

			resp, _ = c.do(http.MethodDelete, "/tasks/"+id, "")
			assert.Equal(t, http.StatusNoContent, resp.StatusCode)

			resp, body = c.do(http.MethodGet, "/tasks/"+id, "")
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.JSONEq(t, `{"detail":"Task not found"}`, body)
		})
	}
}

func TestRecipes(t *testing.T) {
	for _, store := range stores {
		t.Run(store, func(t *testing.T) {
			c := newClient(t, defaults(store))

			resp, body := c.do(http.MethodPost, "/recipes", `{
				"name": "Mushroom Risotto",
				"servings": 4,
				"prep_time_minutes": 45,
				"rating": 4.5,
				"vegetarian": true,
				"last_cooked_at": "2026-04-20T18:30:00Z"
			}`)
			require.Equal(t, http.StatusCreated, resp.StatusCode, body)
			created := decode[map[string]any](t, body)
			assert.Equal(t, 4.5, created["rating"])
			assert.Equal(t, "2026-04-20T18:30:00Z", created["last_cooked_at"])
			assert.Nil(t, created["description"])
			id := strconv.Itoa(int(created["id"].(float64)))

			resp, _ = c.do(http.MethodPost, "/recipes", `{"name":"Beef Stew"}`)
			require.Equal(t, http.StatusCreated, resp.StatusCode)

			resp, body = c.do(http.MethodPost, "/recipes", `{"name":"Soup","servings":0}`)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.JSONEq(t, `{"detail":"validation failed on servings (gte=1)"}`, body)

			resp, body = c.do(http.MethodGet, "/recipes?vegetarian=true", "")
			require.Equal(t, http.StatusOK, resp.StatusCode)
			veg := decode[[]map[string]any](t, body)
			require.Len(t, veg, 1)
			assert.Equal(t, "Mushroom Risotto", veg[0]["name"])

			resp, body = c.do(http.MethodGet, "/recipes?search=STEW", "")
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Len(t, decode[[]map[string]any](t, body), 1)

			resp, body = c.do(http.MethodPatch, "/recipes/"+id, `{"rating":5}`)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			updated := decode[map[string]any](t, body)
			assert.Equal(t, 5.0, updated["rating"])
			assert.Equal(t, 4.0, updated["servings"])
		})
	}
}

func TestDeleteMessageMode(t *testing.T) {
	settings := defaults(config.StoreMemory)
	settings.DeleteResponse = "message"
	c := newClient(t, settings)

	resp, body := c.do(http.MethodPost, "/recipes", `{"name":"Pad Thai"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := strconv.Itoa(int(decode[map[string]any](t, body)["id"].(float64)))

	resp, body = c.do(http.MethodDelete, "/recipes/"+id, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Recipe item with ID `+id+` deleted"}`, body)
}

func TestSeedTodos(t *testing.T) {
	settings := defaults(config.StoreMemory)
	settings.SeedTodos = true
	c := newClient(t, settings)

	resp, body := c.do(http.MethodGet, "/todos", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	todos := decode[[]todo](t, body)
	require.Len(t, todos, 2)
	assert.Equal(t, "Learn Docker", todos[0].Title)
	assert.Equal(t, "Build a Docker Image", todos[1].Title)
}

func TestCORSPreflight(t *testing.T) {
	c := newClient(t, defaults(config.StoreMemory))

	req, err := http.NewRequest(http.MethodOptions, c.srv.URL+"/todos/1", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)

	resp, err := c.srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPatch)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Credentials"))
}
