package handlers

import (
	"net/http"

	"deepsky/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LocationHandler struct {
	service service.LocationService
}

func NewLocationHandler(service service.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list locations")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    locations,
		"total":   len(locations),
	})
}

func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var in service.NewLocation
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "%v", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "failed to create location")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "location id %q", c.Param("id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete location")
		return
	}
	c.Status(http.StatusNoContent)
}
