package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/Rishit-Ranjan/Task-Pallete/docs"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/config"
	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
)

func testConfig(t *testing.T, driver string) config.Config {
	t.Helper()
	t.Setenv("STORE_DRIVER", driver)
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "tasks.db"))
	t.Setenv("APP_TIMEZONE", "UTC")
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestRouter_EndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t, config.DriverMemory)
	core, err := NewCore(context.Background(), cfg)
	require.NoError(t, err)
	defer core.Close()
	r := newRouter(cfg, core)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var health map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, true, health["ok"])
	assert.Equal(t, "memory", health["store"])
	assert.Equal(t, false, health["remote_suggest"])

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(`{"title":"Water plants"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tasks/stats", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":1,"completed":0,"pending":1,"high_priority_pending":0}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger-doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/tasks/{id}/share")
}

func TestNewCore_SQLitePersists(t *testing.T) {
	cfg := testConfig(t, config.DriverSQLite)
	ctx := context.Background()

	core, err := NewCore(ctx, cfg)
	require.NoError(t, err)
	_, err = core.Tasks.Add(ctx, dom.Draft{Title: "kept", Priority: dom.PriorityHigh})
	require.NoError(t, err)
	core.Close()

	core, err = NewCore(ctx, cfg)
	require.NoError(t, err)
	defer core.Close()
	tasks, _ := core.Tasks.Snapshot()
	require.Len(t, tasks, 1)
	assert.Equal(t, "kept", tasks[0].Title)
}
