package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"deepsky/internal/catalog"
	"deepsky/internal/ephemeris"
	"deepsky/internal/scoring"
	"deepsky/internal/service"

	"github.com/gin-gonic/gin"
)

type TargetHandler struct {
	service   service.TargetService
	locations service.LocationService
}

func NewTargetHandler(service service.TargetService, locations service.LocationService) *TargetHandler {
	return &TargetHandler{service: service, locations: locations}
}

// ListTargets - список целей с фильтрами и сортировкой
func (h *TargetHandler) ListTargets(c *gin.Context) {
	loc, date, ok := locationAndDate(c, h.locations)
	if !ok {
		return
	}

	q, err := parseTargetQuery(c)
	if err != nil {
		respondError(c, err, "invalid target query")
		return
	}
	q.Location = loc
	q.Date = date

	list, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "failed to list targets")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    list,
	})
}

func parseTargetQuery(c *gin.Context) (service.TargetQuery, error) {
	var q service.TargetQuery
	var err error

	if q.Filter.Catalogs, err = parseKeys(c.Query("catalogs"), catalog.ParseDSOCatalog); err != nil {
		return q, err
	}
	if q.Filter.Constellations, err = parseKeys(c.Query("constellations"), catalog.ParseConstellation); err != nil {
		return q, err
	}
	if q.Filter.Types, err = parseKeys(c.Query("types"), catalog.ParseDSOType); err != nil {
		return q, err
	}

	bounds := []struct {
		param string
		dst   **float64
	}{
		{"brightest", &q.Filter.Brightest},
		{"dimmest", &q.Filter.Dimmest},
		{"min_size", &q.Filter.MinSize},
		{"max_size", &q.Filter.MaxSize},
		{"min_visibility", &q.Filter.MinVisibility},
		{"min_meridian", &q.Filter.MinMeridian},
	}
	for _, b := range bounds {
		if *b.dst, err = optionalFloat(c, b.param); err != nil {
			return q, err
		}
	}
	q.Filter.Search = c.Query("search")

	if s := c.Query("sort"); s != "" {
		if q.Sort, err = scoring.ParseSortKey(s); err != nil {
			return q, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
		}
	}
	switch order := c.DefaultQuery("order", "desc"); order {
	case "asc":
		q.Ascending = true
	case "desc":
	default:
		return q, fmt.Errorf("%w: order %q, want asc or desc", service.ErrInvalidInput, order)
	}

	if d := c.Query("darkness"); d != "" {
		darkness, err := ephemeris.ParseDarkness(d)
		if err != nil {
			return q, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
		}
		q.Darkness = &darkness
	}

	if l := c.Query("limit"); l != "" {
		if q.Limit, err = strconv.Atoi(l); err != nil {
			return q, fmt.Errorf("%w: limit %q", service.ErrInvalidInput, l)
		}
	}
	return q, nil
}

func parseKeys[E any](s string, parse func(string) (E, error)) ([]E, error) {
	keys := splitList(s)
	if len(keys) == 0 {
		return nil, nil
	}
	out := make([]E, 0, len(keys))
	for _, k := range keys {
		v, err := parse(k)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func optionalFloat(c *gin.Context, param string) (*float64, error) {
	s := c.Query(param)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: %s %q, want a finite number", service.ErrInvalidInput, param, s)
	}
	return &v, nil
}
