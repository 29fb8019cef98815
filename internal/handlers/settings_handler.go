package handlers

import (
	"net/http"

	"deepsky/internal/numeric"
	"deepsky/internal/service"
	"deepsky/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// DigitRequest - тело PATCH /settings/digit
type DigitRequest struct {
	Field service.DigitField `json:"field" binding:"required"`
	Place string             `json:"place" binding:"required"`
	Digit int                `json:"digit"`
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to get settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": view})
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var update service.SettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, "%v", err)
		return
	}

	view, err := h.service.Update(c.Request.Context(), update)
	if err != nil {
		respondError(c, err, "failed to update settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": view})
}

// SetDigit меняет одну цифру числовой настройки
func (h *SettingsHandler) SetDigit(c *gin.Context) {
	var req DigitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "%v", err)
		return
	}
	place, err := numeric.ParsePlace(req.Place)
	if err != nil {
		badRequest(c, "%v", err)
		return
	}

	view, err := h.service.SetDigit(c.Request.Context(), req.Field, place, req.Digit)
	if err != nil {
		respondError(c, err, "failed to set digit")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": view})
}

func (h *SettingsHandler) ListPresets(c *gin.Context) {
	presets, err := h.service.ListPresets(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list presets")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": presets})
}

func (h *SettingsHandler) CreatePreset(c *gin.Context) {
	var preset settings.ImagingPreset
	if err := c.ShouldBindJSON(&preset); err != nil {
		badRequest(c, "%v", err)
		return
	}

	created, err := h.service.CreatePreset(c.Request.Context(), preset)
	if err != nil {
		respondError(c, err, "failed to create preset")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

func (h *SettingsHandler) SelectPreset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "preset id %q", c.Param("id"))
		return
	}

	view, err := h.service.SelectPreset(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to select preset")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": view})
}
