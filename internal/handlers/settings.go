package handlers

import (
	"net/http"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/dto"
	"github.com/Rishit-Ranjan/Task-Pallete/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	svc *service.SettingsService
}

func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get godoc
// @Summary      Appearance settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Failure      500  {object}  map[string]string
// @Router       /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, settingsToResponse(s))
}

// Update godoc
// @Summary      Change appearance settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UpdateSettingsRequest  true  "Partial update"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  map[string]string
// @Router       /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.svc.Update(c.Request.Context(), dom.SettingsPatch{
		FontFamily:  req.FontFamily,
		TextColor:   req.TextColor,
		AccentColor: req.AccentColor,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settingsToResponse(s))
}

// GetUpcomingVisibility godoc
// @Summary      Whether the upcoming-deadlines panel is shown
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.UpcomingVisibility
// @Failure      500  {object}  map[string]string
// @Router       /settings/upcoming-visibility [get]
func (h *SettingsHandler) GetUpcomingVisibility(c *gin.Context) {
	show, err := h.svc.ShowUpcoming(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UpcomingVisibility{Show: &show})
}

// SetUpcomingVisibility godoc
// @Summary      Show or hide the upcoming-deadlines panel
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UpcomingVisibility  true  "Flag"
// @Success      200   {object}  dto.UpcomingVisibility
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /settings/upcoming-visibility [put]
func (h *SettingsHandler) SetUpcomingVisibility(c *gin.Context) {
	var req dto.UpcomingVisibility
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.SetShowUpcoming(c.Request.Context(), *req.Show); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func settingsToResponse(s dom.Settings) dto.SettingsResponse {
	return dto.SettingsResponse{
		FontFamily:   s.FontFamily,
		TextColor:    s.TextColor,
		AccentColor:  s.AccentColor,
		FontOptions:  dom.FontOptions,
		ColorOptions: dom.ColorOptions,
	}
}
