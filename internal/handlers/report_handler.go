package handlers

import (
	"fmt"
	"net/http"

	"deepsky/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service   service.ReportService
	export    service.ExportService
	locations service.LocationService
}

func NewReportHandler(service service.ReportService, export service.ExportService, locations service.LocationService) *ReportHandler {
	return &ReportHandler{service: service, export: export, locations: locations}
}

// GetReport - отчёт на ночь: топ-5 и топ-10 по категориям
func (h *ReportHandler) GetReport(c *gin.Context) {
	loc, date, ok := locationAndDate(c, h.locations)
	if !ok {
		return
	}

	r, err := h.service.Daily(c.Request.Context(), loc, date)
	if err != nil {
		respondError(c, err, "failed to build report")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stale":   r.Stale,
		"data":    r,
	})
}

// ExportReport отдаёт отчёт файлом xlsx или csv
func (h *ReportHandler) ExportReport(c *gin.Context) {
	loc, date, ok := locationAndDate(c, h.locations)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	r, err := h.service.Daily(ctx, loc, date)
	if err != nil {
		respondError(c, err, "failed to build report")
		return
	}

	export, err := h.export.Export(ctx, r, c.DefaultQuery("format", service.FormatXLSX))
	if err != nil {
		respondError(c, err, "failed to export report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	if export.ObjectPath != "" {
		c.Header("X-Object-Path", export.ObjectPath)
	}
	c.Data(http.StatusOK, export.ContentType, export.Data)
}
