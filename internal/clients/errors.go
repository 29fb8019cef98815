package clients

import (
	"errors"
	"fmt"
	"time"

	"deepsky/internal/astro"
)

// Feed error kinds. Every error returned by a client wraps one of these.
var (
	ErrUnfetchable   = errors.New("feed unreachable")
	ErrUndecodable   = errors.New("feed payload undecodable")
	ErrUnaddressable = errors.New("feed request malformed")
	ErrOutOfRange    = errors.New("date outside feed range")
	ErrEmptyResult   = errors.New("feed returned no usable data")
)

const userAgent = "DeepSky-Planner/1.0"

// checkRequest rejects coordinates and dates no feed can answer.
func checkRequest(loc astro.Location, date time.Time, minYear, maxYear int) error {
	if !loc.Valid() {
		return fmt.Errorf("%w: lat=%.4f lon=%.4f", ErrUnaddressable, loc.Latitude, loc.Longitude)
	}
	if y := date.Year(); y < minYear || y > maxYear {
		return fmt.Errorf("%w: year %d not in %d-%d", ErrOutOfRange, y, minYear, maxYear)
	}
	return nil
}
