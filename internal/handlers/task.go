package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/dto"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/query"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/service"

	"github.com/gin-gonic/gin"
)

const errEmptyTitle = "Title cannot be empty."

type TaskHandler struct {
	store    *service.TaskService
	queries  *service.QueryService
	settings *service.SettingsService
}

func NewTaskHandler(store *service.TaskService, queries *service.QueryService, settings *service.SettingsService) *TaskHandler {
	return &TaskHandler{store: store, queries: queries, settings: settings}
}

// Create godoc
// @Summary      Create a task
// @Description  The new task is prepended to the collection. Priority defaults to medium.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTaskRequest  true  "Task body"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errEmptyTitle})
		return
	}
	priority := dom.PriorityMedium
	if req.Priority != "" {
		p, err := dom.ParsePriority(req.Priority)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		priority = p
	}

	t, err := h.store.Add(c.Request.Context(), dom.Draft{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Priority:    priority,
		DueDate:     req.DueDate.Ptr(),
		Checklist:   dto.ChecklistFromRequest(req.Checklist),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, taskToResponse(t, h.queries.Today()))
}

// List godoc
// @Summary      List tasks in display order
// @Description  Important first, then incomplete, then by priority, newest first.
// @Tags         tasks
// @Produce      json
// @Param        show_completed  query     bool    false  "Include completed tasks"
// @Param        priority        query     string  false  "all, low, medium or high"
// @Param        q               query     string  false  "Search in title and description"
// @Success      200  {object}  dto.ListTasksResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	f := query.Filter{Priority: query.PriorityAll, Search: c.Query("q")}
	if raw := c.Query("show_completed"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "show_completed must be true or false"})
			return
		}
		f.ShowCompleted = v
	}
	if raw := strings.TrimSpace(c.Query("priority")); raw != "" && !strings.EqualFold(raw, query.PriorityAll) {
		p, err := dom.ParsePriority(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		f.Priority = string(p)
	}

	list, err := h.queries.Visible(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{Items: tasksToResponses(list, h.queries.Today())})
}

// GetByID godoc
// @Summary      Get a task by ID
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	t, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t, h.queries.Today()))
}

// Update godoc
// @Summary      Update a task
// @Description  Absent fields are left unchanged; "due_date": null clears the due date.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Task ID"
// @Param        body  body      dto.UpdateTaskRequest  true  "Partial update"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /tasks/{id} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var p dom.Patch
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errEmptyTitle})
			return
		}
		p.Title = &title
	}
	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		p.Description = &desc
	}
	if req.Priority != nil {
		pr, err := dom.ParsePriority(*req.Priority)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p.Priority = &pr
	}
	if req.DueDate.Set() {
		if due := req.DueDate.Ptr(); due != nil {
			p.DueDate = due
		} else {
			p.ClearDueDate = true
		}
	}
	if req.Checklist != nil {
		items := dto.ChecklistFromRequest(*req.Checklist)
		p.Checklist = &items
	}
	p.Completed = req.Completed
	p.Important = req.Important

	t, err := h.store.Update(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t, h.queries.Today()))
}

// Delete godoc
// @Summary      Delete a task permanently
// @Tags         tasks
// @Param        id   path  string  true  "Task ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.store.Remove(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleCompleted godoc
// @Summary      Flip the completed flag
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id}/complete [post]
func (h *TaskHandler) ToggleCompleted(c *gin.Context) {
	t, err := h.store.ToggleCompleted(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t, h.queries.Today()))
}

// ToggleImportant godoc
// @Summary      Flip the important flag
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id}/important [post]
func (h *TaskHandler) ToggleImportant(c *gin.Context) {
	t, err := h.store.ToggleImportant(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t, h.queries.Today()))
}

// ToggleChecklistItem godoc
// @Summary      Flip one checklist item
// @Tags         tasks
// @Produce      json
// @Param        id      path      string  true  "Task ID"
// @Param        itemId  path      string  true  "Checklist item ID"
// @Success      200     {object}  dto.TaskResponse
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /tasks/{id}/checklist/{itemId}/toggle [post]
func (h *TaskHandler) ToggleChecklistItem(c *gin.Context) {
	t, err := h.store.ToggleChecklistItem(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t, h.queries.Today()))
}

// Share godoc
// @Summary      Task as shareable plain text
// @Tags         tasks
// @Produce      json
// @Produce      plain
// @Param        id      path      string  true   "Task ID"
// @Param        format  query     string  false  "json (default) or text"
// @Success      200     {object}  dto.ShareResponse
// @Failure      404     {object}  map[string]string
// @Router       /tasks/{id}/share [get]
func (h *TaskHandler) Share(c *gin.Context) {
	t, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	text := query.ShareText(t)
	if c.Query("format") == "text" {
		c.String(http.StatusOK, text)
		return
	}
	c.JSON(http.StatusOK, dto.ShareResponse{Text: text})
}

// Upcoming godoc
// @Summary      Upcoming deadlines
// @Description  Incomplete tasks due within the next 7 days, soonest first.
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  dto.UpcomingResponse
// @Failure      500  {object}  map[string]string
// @Router       /tasks/upcoming [get]
func (h *TaskHandler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.queries.Upcoming(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	show, err := h.settings.ShowUpcoming(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	s, err := h.settings.Get(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UpcomingResponse{
		Visible:     show && len(list) > 0,
		ShowPanel:   show,
		AccentColor: s.AccentColor,
		Items:       tasksToResponses(list, h.queries.Today()),
	})
}

// Stats godoc
// @Summary      Task counts
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Failure      500  {object}  map[string]string
// @Router       /tasks/stats [get]
func (h *TaskHandler) Stats(c *gin.Context) {
	s, err := h.queries.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatsResponse{
		Total:               s.Total,
		Completed:           s.Completed,
		Pending:             s.Pending,
		HighPriorityPending: s.HighPriorityPending,
	})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidPriority):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func taskToResponse(t dom.Task, today time.Time) dto.TaskResponse {
	resp := dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Important:   t.Important,
		Priority:    string(t.Priority),
		DueStatus:   string(query.ClassifyDueDate(t.DueDate, today, t.Completed)),
		CreatedAt:   t.CreatedAt,
		Checklist:   make([]dto.ChecklistItemResponse, len(t.Checklist)),
	}
	if t.DueDate != nil {
		s := t.DueDate.String()
		resp.DueDate = &s
		if !t.Completed && query.DaysUntil(*t.DueDate, today) >= 0 {
			resp.DueLabel = query.RelativeDueLabel(*t.DueDate, today)
		}
	}
	for i, item := range t.Checklist {
		resp.Checklist[i] = dto.ChecklistItemResponse{ID: item.ID, Text: item.Text, Completed: item.Completed}
	}
	return resp
}

func tasksToResponses(list []dom.Task, today time.Time) []dto.TaskResponse {
	out := make([]dto.TaskResponse, len(list))
	for i := range list {
		out[i] = taskToResponse(list[i], today)
	}
	return out
}
