package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rishit-Ranjan/Task-Pallete/internal/dto"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/repo"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/service"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/suggest"
)

var now = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

type stubGenerator struct {
	text string
	err  error
}

func (s stubGenerator) Generate(context.Context, string) (string, error) { return s.text, s.err }

func setupRouter(t *testing.T, gen suggest.Generator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := repo.NewKVRepo(repo.NewMemoryKV())
	clock := func() time.Time { return now }
	store := service.NewTaskService(r, nil, clock, nil)
	queries := service.NewQueryService(store, nil, clock, time.UTC)
	settings := service.NewSettingsService(r)
	engine := suggest.NewEngine(gen, time.Second, nil)

	router := gin.New()
	api := router.Group("/api/v1")
	th := NewTaskHandler(store, queries, settings)
	api.POST("/tasks", th.Create)
	api.GET("/tasks", th.List)
	api.GET("/tasks/upcoming", th.Upcoming)
	api.GET("/tasks/stats", th.Stats)
	api.GET("/tasks/:id", th.GetByID)
	api.PATCH("/tasks/:id", th.Update)
	api.DELETE("/tasks/:id", th.Delete)
	api.POST("/tasks/:id/complete", th.ToggleCompleted)
	api.POST("/tasks/:id/important", th.ToggleImportant)
	api.POST("/tasks/:id/checklist/:itemId/toggle", th.ToggleChecklistItem)
	api.GET("/tasks/:id/share", th.Share)

	sh := NewSuggestHandler(engine, store, queries)
	api.POST("/suggestions", sh.Suggest)
	api.POST("/suggestions/accept", sh.Accept)

	seth := NewSettingsHandler(settings)
	api.GET("/settings", seth.Get)
	api.PUT("/settings", seth.Update)
	api.GET("/settings/upcoming-visibility", seth.GetUpcomingVisibility)
	api.PUT("/settings/upcoming-visibility", seth.SetUpcomingVisibility)
	return router
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func createTask(t *testing.T, r http.Handler, body map[string]any) dto.TaskResponse {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/tasks", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.TaskResponse](t, w)
}

func TestCreateTask(t *testing.T) {
	r := setupRouter(t, nil)

	task := createTask(t, r, map[string]any{
		"title":     "  Buy milk  ",
		"due_date":  "2026-10-16",
		"checklist": []map[string]any{{"text": "2%"}, {"text": " "}},
	})
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "medium", task.Priority)
	assert.False(t, task.Completed)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2026-10-16", *task.DueDate)
	assert.Equal(t, "tomorrow", task.DueStatus)
	assert.Equal(t, "Due Tomorrow", task.DueLabel)
	require.Len(t, task.Checklist, 1)
	assert.NotEmpty(t, task.Checklist[0].ID)
}

func TestCreateTask_Validation(t *testing.T) {
	r := setupRouter(t, nil)

	w := do(t, r, http.MethodPost, "/api/v1/tasks", map[string]any{"title": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title cannot be empty.", decode[map[string]string](t, w)["error"])

	w = do(t, r, http.MethodPost, "/api/v1/tasks", map[string]any{"title": "x", "priority": "urgent"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/tasks", map[string]any{"title": "x", "due_date": "someday"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/tasks", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTasks_OrderAndFilters(t *testing.T) {
	r := setupRouter(t, nil)
	low := createTask(t, r, map[string]any{"title": "low one", "priority": "low"})
	high := createTask(t, r, map[string]any{"title": "high one", "priority": "high"})
	star := createTask(t, r, map[string]any{"title": "starred", "priority": "low", "description": "groceries"})
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/api/v1/tasks/"+star.ID+"/important", nil).Code)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/api/v1/tasks/"+high.ID+"/complete", nil).Code)

	list := decode[dto.ListTasksResponse](t, do(t, r, http.MethodGet, "/api/v1/tasks", nil))
	require.Len(t, list.Items, 2)
	assert.Equal(t, star.ID, list.Items[0].ID)
	assert.Equal(t, low.ID, list.Items[1].ID)

	list = decode[dto.ListTasksResponse](t, do(t, r, http.MethodGet, "/api/v1/tasks?show_completed=true", nil))
	require.Len(t, list.Items, 3)
	assert.Equal(t, []string{star.ID, low.ID, high.ID}, []string{list.Items[0].ID, list.Items[1].ID, list.Items[2].ID})

	list = decode[dto.ListTasksResponse](t, do(t, r, http.MethodGet, "/api/v1/tasks?show_completed=true&priority=HIGH", nil))
	require.Len(t, list.Items, 1)
	assert.Equal(t, high.ID, list.Items[0].ID)

	list = decode[dto.ListTasksResponse](t, do(t, r, http.MethodGet, "/api/v1/tasks?q=GROCER", nil))
	require.Len(t, list.Items, 1)
	assert.Equal(t, star.ID, list.Items[0].ID)

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/api/v1/tasks?priority=urgent", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/api/v1/tasks?show_completed=maybe", nil).Code)
}

func TestUpdateTask(t *testing.T) {
	r := setupRouter(t, nil)
	task := createTask(t, r, map[string]any{"title": "x", "due_date": "2026-10-20"})

	w := do(t, r, http.MethodPatch, "/api/v1/tasks/"+task.ID, map[string]any{"title": "y", "priority": "high"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[dto.TaskResponse](t, w)
	assert.Equal(t, "y", got.Title)
	assert.Equal(t, "high", got.Priority)
	require.NotNil(t, got.DueDate, "absent due_date keeps the date")
	assert.Equal(t, task.CreatedAt, got.CreatedAt)

	w = do(t, r, http.MethodPatch, "/api/v1/tasks/"+task.ID, `{"due_date": null}`)
	require.Equal(t, http.StatusOK, w.Code)
	got = decode[dto.TaskResponse](t, w)
	assert.Nil(t, got.DueDate)
	assert.Equal(t, "none", got.DueStatus)

	w = do(t, r, http.MethodPatch, "/api/v1/tasks/"+task.ID, map[string]any{"title": " "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPatch, "/api/v1/tasks/missing", map[string]any{"title": "z"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleAndDelete(t *testing.T) {
	r := setupRouter(t, nil)
	task := createTask(t, r, map[string]any{"title": "x", "checklist": []map[string]any{{"id": "c1", "text": "step"}}})

	w := do(t, r, http.MethodPost, "/api/v1/tasks/"+task.ID+"/checklist/c1/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.TaskResponse](t, w).Checklist[0].Completed)

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPost, "/api/v1/tasks/"+task.ID+"/checklist/nope/toggle", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPost, "/api/v1/tasks/nope/complete", nil).Code)

	w = do(t, r, http.MethodPost, "/api/v1/tasks/"+task.ID+"/complete", nil)
	assert.True(t, decode[dto.TaskResponse](t, w).Completed)
	w = do(t, r, http.MethodPost, "/api/v1/tasks/"+task.ID+"/complete", nil)
	assert.False(t, decode[dto.TaskResponse](t, w).Completed)

	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, "/api/v1/tasks/"+task.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/api/v1/tasks/"+task.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, "/api/v1/tasks/"+task.ID, nil).Code)
}

func TestShare(t *testing.T) {
	r := setupRouter(t, nil)
	task := createTask(t, r, map[string]any{"title": "Pay rent", "priority": "high"})

	w := do(t, r, http.MethodGet, "/api/v1/tasks/"+task.ID+"/share", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "📝 Pay rent\n🚩 Priority: High\n", decode[dto.ShareResponse](t, w).Text)

	w = do(t, r, http.MethodGet, "/api/v1/tasks/"+task.ID+"/share?format=text", nil)
	assert.Equal(t, "📝 Pay rent\n🚩 Priority: High\n", w.Body.String())
}

func TestUpcomingAndStats(t *testing.T) {
	r := setupRouter(t, nil)
	createTask(t, r, map[string]any{"title": "soon", "due_date": "2026-10-17"})
	createTask(t, r, map[string]any{"title": "today", "due_date": "2026-10-15", "priority": "high"})
	createTask(t, r, map[string]any{"title": "week", "due_date": "2026-10-22"})

	up := decode[dto.UpcomingResponse](t, do(t, r, http.MethodGet, "/api/v1/tasks/upcoming", nil))
	assert.True(t, up.Visible)
	assert.True(t, up.ShowPanel)
	assert.Equal(t, "#6366f1", up.AccentColor)
	require.Len(t, up.Items, 2)
	assert.Equal(t, "today", up.Items[0].Title)
	assert.Equal(t, "Due Today", up.Items[0].DueLabel)
	assert.Equal(t, "Due in 2 days", up.Items[1].DueLabel)

	w := do(t, r, http.MethodPut, "/api/v1/settings/upcoming-visibility", map[string]any{"show": false})
	require.Equal(t, http.StatusOK, w.Code)
	up = decode[dto.UpcomingResponse](t, do(t, r, http.MethodGet, "/api/v1/tasks/upcoming", nil))
	assert.False(t, up.Visible)
	assert.Len(t, up.Items, 2)

	stats := decode[dto.StatsResponse](t, do(t, r, http.MethodGet, "/api/v1/tasks/stats", nil))
	assert.Equal(t, dto.StatsResponse{Total: 3, Pending: 3, HighPriorityPending: 1}, stats)
}

func TestSuggest(t *testing.T) {
	r := setupRouter(t, nil)

	w := do(t, r, http.MethodPost, "/api/v1/suggestions", map[string]any{"goal": "Plan a birthday party"})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[dto.SuggestResponse](t, w)
	assert.Equal(t, "fallback", res.Source)
	require.Len(t, res.Items, 4)
	assert.Equal(t, "Send invitations", res.Items[0].Title)

	w = do(t, r, http.MethodPost, "/api/v1/suggestions", map[string]any{"goal": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please enter a goal.", decode[map[string]string](t, w)["error"])
}

func TestSuggest_Remote(t *testing.T) {
	r := setupRouter(t, stubGenerator{text: `[{"title":"Pick a date","description":"Check calendars"}]`})
	res := decode[dto.SuggestResponse](t, do(t, r, http.MethodPost, "/api/v1/suggestions", map[string]any{"goal": "reunion"}))
	assert.Equal(t, "remote", res.Source)
	require.Len(t, res.Items, 1)

	r = setupRouter(t, stubGenerator{err: errors.New("offline")})
	res = decode[dto.SuggestResponse](t, do(t, r, http.MethodPost, "/api/v1/suggestions", map[string]any{"goal": "reunion"}))
	assert.Equal(t, "fallback", res.Source)
	assert.Len(t, res.Items, 4)
}

func TestAcceptSuggestions(t *testing.T) {
	r := setupRouter(t, nil)
	existing := createTask(t, r, map[string]any{"title": "existing", "priority": "low"})

	w := do(t, r, http.MethodPost, "/api/v1/suggestions/accept", map[string]any{"items": []map[string]string{
		{"title": "Send invitations", "description": "Create and send out invitations to all guests."},
		{"title": "Plan the menu", "description": "Decide on food and drinks."},
	}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.ListTasksResponse](t, w)
	require.Len(t, created.Items, 2)
	for _, it := range created.Items {
		assert.Equal(t, "medium", it.Priority)
		assert.Nil(t, it.DueDate)
		assert.Empty(t, it.Checklist)
	}

	list := decode[dto.ListTasksResponse](t, do(t, r, http.MethodGet, "/api/v1/tasks", nil))
	require.Len(t, list.Items, 3)
	assert.Equal(t, existing.ID, list.Items[2].ID)

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/api/v1/suggestions/accept", map[string]any{"items": []any{}}).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/api/v1/suggestions/accept",
		map[string]any{"items": []map[string]string{{"title": " "}}}).Code)
}

func TestSettings(t *testing.T) {
	r := setupRouter(t, nil)

	s := decode[dto.SettingsResponse](t, do(t, r, http.MethodGet, "/api/v1/settings", nil))
	assert.Equal(t, "Inter", s.FontFamily)
	assert.Equal(t, "#e2e8f0", s.TextColor)
	assert.Len(t, s.FontOptions, 5)

	w := do(t, r, http.MethodPut, "/api/v1/settings", map[string]any{"accent_color": "#22c55e"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "#22c55e", decode[dto.SettingsResponse](t, w).AccentColor)

	w = do(t, r, http.MethodPut, "/api/v1/settings", map[string]any{"font_family": "Comic Sans"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	vis := decode[dto.UpcomingVisibility](t, do(t, r, http.MethodGet, "/api/v1/settings/upcoming-visibility", nil))
	require.NotNil(t, vis.Show)
	assert.True(t, *vis.Show)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPut, "/api/v1/settings/upcoming-visibility", map[string]any{}).Code)
}
