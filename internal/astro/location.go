package astro

import (
	"fmt"
	"time"
)

// Location is an observer position on Earth. It is a value type: two
// locations with the same fields are the same location, and == compares them.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"` // east-positive
	Timezone  string  `json:"timezone"`
	Elevation float64 `json:"elevation,omitempty"` // m, 0 when unknown
	Bortle    int     `json:"bortle,omitempty"`    // 1..9, 0 when unknown
}

// Zone resolves the IANA timezone, falling back to UTC when it is empty or unknown.
func (l Location) Zone() *time.Location {
	if l.Timezone == "" {
		return time.UTC
	}
	zone, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return time.UTC
	}
	return zone
}

// Key is a stable identifier used for cache keys and snapshot lookups.
func (l Location) Key() string {
	return fmt.Sprintf("%.4f:%.4f:%s", l.Latitude, l.Longitude, l.Timezone)
}

// Valid reports whether the coordinates are inside their physical ranges.
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// LocalDate returns midnight of t's calendar day in the location's zone.
func (l Location) LocalDate(t time.Time) time.Time {
	local := t.In(l.Zone())
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, local.Location())
}
