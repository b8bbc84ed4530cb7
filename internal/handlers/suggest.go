package handlers

import (
	"net/http"
	"strings"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/dto"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/service"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/suggest"

	"github.com/gin-gonic/gin"
)

const errEmptyGoal = "Please enter a goal."

type SuggestHandler struct {
	engine  *suggest.Engine
	store   *service.TaskService
	queries *service.QueryService
}

func NewSuggestHandler(engine *suggest.Engine, store *service.TaskService, queries *service.QueryService) *SuggestHandler {
	return &SuggestHandler{engine: engine, store: store, queries: queries}
}

// Suggest godoc
// @Summary      Suggest tasks for a goal
// @Description  Tries remote generation when configured, otherwise a fixed keyword table. Always returns 1 to 4 items.
// @Tags         suggestions
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SuggestRequest  true  "Goal"
// @Success      200   {object}  dto.SuggestResponse
// @Failure      400   {object}  map[string]string
// @Router       /suggestions [post]
func (h *SuggestHandler) Suggest(c *gin.Context) {
	var req dto.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	goal := strings.TrimSpace(req.Goal)
	if goal == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errEmptyGoal})
		return
	}

	res := h.engine.Resolve(c.Request.Context(), goal)
	items := make([]dto.SuggestionItem, len(res.Suggestions))
	for i, s := range res.Suggestions {
		items[i] = dto.SuggestionItem{Title: s.Title, Description: s.Description}
	}
	c.JSON(http.StatusOK, dto.SuggestResponse{Source: string(res.Source), Items: items})
}

// Accept godoc
// @Summary      Add selected suggestions as tasks
// @Description  Each becomes a medium-priority task with no due date, prepended in the given order.
// @Tags         suggestions
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AcceptSuggestionsRequest  true  "Selected suggestions"
// @Success      201   {object}  dto.ListTasksResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /suggestions/accept [post]
func (h *SuggestHandler) Accept(c *gin.Context) {
	var req dto.AcceptSuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	drafts := make([]dom.Draft, 0, len(req.Items))
	for _, it := range req.Items {
		d := dom.Suggestion{Title: it.Title, Description: it.Description}.Draft()
		if d.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errEmptyTitle})
			return
		}
		drafts = append(drafts, d)
	}

	created, err := h.store.AddMany(c.Request.Context(), drafts)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ListTasksResponse{Items: tasksToResponses(created, h.queries.Today())})
}
