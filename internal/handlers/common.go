package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"deepsky/internal/astro"
	"deepsky/internal/clients"
	"deepsky/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ErrorResponse структура для ошибок
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// statusFor сопоставляет ошибку сервиса с HTTP-статусом
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, clients.ErrUnaddressable),
		errors.Is(err, clients.ErrOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnavailable),
		errors.Is(err, clients.ErrUnfetchable),
		errors.Is(err, clients.ErrUndecodable),
		errors.Is(err, clients.ErrEmptyResult):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error, what string) {
	status := statusFor(err)
	entry := log.WithFields(log.Fields{
		"path":   c.Request.URL.Path,
		"status": status,
	}).WithError(err)
	if status >= http.StatusInternalServerError {
		entry.Error(what)
	} else {
		entry.Debug(what)
	}
	c.JSON(status, ErrorResponse{Error: what, Message: err.Error()})
}

func badRequest(c *gin.Context, format string, args ...interface{}) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Message: fmt.Sprintf(format, args...)})
}

// resolveLocation читает точку наблюдения: location_id (сохранённая)
// либо lat, lon и tz (текущая)
func resolveLocation(c *gin.Context, locations service.LocationService) (astro.Location, error) {
	if idStr := c.Query("location_id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return astro.Location{}, fmt.Errorf("%w: location_id %q", service.ErrInvalidInput, idStr)
		}
		return service.Resolve(c.Request.Context(), locations, id)
	}

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr == "" || lonStr == "" {
		return astro.Location{}, fmt.Errorf("%w: location_id or lat and lon are required", service.ErrInvalidInput)
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return astro.Location{}, fmt.Errorf("%w: lat %q", service.ErrInvalidInput, latStr)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return astro.Location{}, fmt.Errorf("%w: lon %q", service.ErrInvalidInput, lonStr)
	}

	tz := c.DefaultQuery("tz", "UTC")
	if _, err := time.LoadLocation(tz); err != nil {
		return astro.Location{}, fmt.Errorf("%w: unknown timezone %q", service.ErrInvalidInput, tz)
	}

	loc := astro.Location{Latitude: lat, Longitude: lon, Timezone: tz}
	if !loc.Valid() {
		return astro.Location{}, fmt.Errorf("%w: coordinates out of range", service.ErrInvalidInput)
	}
	return loc, nil
}

// parseDate читает date=YYYY-MM-DD в поясе точки; по умолчанию сегодня
func parseDate(c *gin.Context, loc astro.Location) (time.Time, error) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return loc.LocalDate(time.Now()), nil
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, loc.Zone())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q, want YYYY-MM-DD", service.ErrInvalidInput, dateStr)
	}
	return date, nil
}

// locationAndDate - общий разбор запросов /sun, /moon, /targets, /report
func locationAndDate(c *gin.Context, locations service.LocationService) (astro.Location, time.Time, bool) {
	loc, err := resolveLocation(c, locations)
	if err != nil {
		respondError(c, err, "invalid location")
		return astro.Location{}, time.Time{}, false
	}
	date, err := parseDate(c, loc)
	if err != nil {
		respondError(c, err, "invalid date")
		return astro.Location{}, time.Time{}, false
	}
	return loc, date, true
}

// splitList разбирает "a,b , c" в непустые элементы
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
