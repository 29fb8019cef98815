package handlers

import (
	"net/http"

	"deepsky/internal/service"

	"github.com/gin-gonic/gin"
)

type EphemerisHandler struct {
	service   service.EphemerisService
	locations service.LocationService
}

func NewEphemerisHandler(service service.EphemerisService, locations service.LocationService) *EphemerisHandler {
	return &EphemerisHandler{service: service, locations: locations}
}

// GetSun возвращает интервалы темноты на ночь
func (h *EphemerisHandler) GetSun(c *gin.Context) {
	loc, date, ok := locationAndDate(c, h.locations)
	if !ok {
		return
	}

	night, err := h.service.Night(c.Request.Context(), loc, date)
	if err != nil {
		respondError(c, err, "failed to get sun data")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"location": night.Location,
			"date":     night.Date,
			"sun":      night.Sun,
		},
	})
}

// GetMoon возвращает фазу, освещённость и интервал луны на ночь
func (h *EphemerisHandler) GetMoon(c *gin.Context) {
	loc, date, ok := locationAndDate(c, h.locations)
	if !ok {
		return
	}

	night, err := h.service.Night(c.Request.Context(), loc, date)
	if err != nil {
		respondError(c, err, "failed to get moon data")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"location": night.Location,
			"date":     night.Date,
			"moon":     night.Moon,
		},
	})
}
