package clients

import (
	"context"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"deepsky/internal/astro"
	"deepsky/internal/ephemeris"
)

// localSunClient computes solar events offline. It serves as the sun feed
// when no network API is configured.
type localSunClient struct{}

func NewLocalSunClient() SunClient {
	return &localSunClient{}
}

func (c *localSunClient) FetchSun(ctx context.Context, loc astro.Location, date time.Time) (ephemeris.SunEvents, error) {
	if err := ctx.Err(); err != nil {
		return ephemeris.SunEvents{}, err
	}
	day := loc.LocalDate(date)
	if err := checkRequest(loc, day, 1900, 2100); err != nil {
		return ephemeris.SunEvents{}, err
	}

	zone := day.Location()
	y, m, d := day.Date()
	lat, lon := loc.Latitude, loc.Longitude

	events := ephemeris.SunEvents{Date: day.Format("2006-01-02")}
	events.Sunrise, events.Sunset = pair(zone)(sunrise.SunriseSunset(lat, lon, y, m, d))
	events.CivilTwilightBegin, events.CivilTwilightEnd = pair(zone)(sunrise.TimeOfElevation(lat, lon, astro.CivilAltitude, y, m, d))
	events.NauticalTwilightBegin, events.NauticalTwilightEnd = pair(zone)(sunrise.TimeOfElevation(lat, lon, astro.NauticalAltitude, y, m, d))
	events.AstroTwilightBegin, events.AstroTwilightEnd = pair(zone)(sunrise.TimeOfElevation(lat, lon, astro.AstronomicalAltitude, y, m, d))

	// Guess noon from longitude, then refine on the hour angle.
	guess := time.Date(y, m, d, 12, 0, 0, 0, time.UTC).Add(-time.Duration(lon / 15 * float64(time.Hour)))
	noon := astro.SolarTransit(loc, guess, 0).In(zone)
	midnight := astro.SolarTransit(loc, noon.Add(-12*time.Hour), 180).In(zone)
	events.SolarNoon = noon
	events.SolarMidnight = &midnight

	return events, nil
}

// pair converts go-sunrise results, where a zero time means the event does
// not occur, into optional local instants.
func pair(zone *time.Location) func(a, b time.Time) (*time.Time, *time.Time) {
	conv := func(t time.Time) *time.Time {
		if t.IsZero() {
			return nil
		}
		local := t.In(zone)
		return &local
	}
	return func(a, b time.Time) (*time.Time, *time.Time) {
		return conv(a), conv(b)
	}
}
