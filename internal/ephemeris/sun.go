package ephemeris

import (
	"time"

	"deepsky/internal/astro"
)

// SunEvents is one day's worth of solar instants as delivered by a feed.
// A nil pointer means the event does not happen that day.
type SunEvents struct {
	Date string `json:"date"` // YYYY-MM-DD, observer-local

	Sunrise               *time.Time `json:"sunrise,omitempty"`
	Sunset                *time.Time `json:"sunset,omitempty"`
	CivilTwilightBegin    *time.Time `json:"civil_twilight_begin,omitempty"`
	CivilTwilightEnd      *time.Time `json:"civil_twilight_end,omitempty"`
	NauticalTwilightBegin *time.Time `json:"nautical_twilight_begin,omitempty"`
	NauticalTwilightEnd   *time.Time `json:"nautical_twilight_end,omitempty"`
	AstroTwilightBegin    *time.Time `json:"astronomical_twilight_begin,omitempty"`
	AstroTwilightEnd      *time.Time `json:"astronomical_twilight_end,omitempty"`

	SolarNoon time.Time `json:"solar_noon"`
	// SolarMidnight is the lowest-sun instant in the early hours of Date.
	SolarMidnight *time.Time `json:"solar_midnight,omitempty"`
}

// Midnight returns the day's solar midnight, deriving it from solar noon
// when the feed did not supply one.
func (e SunEvents) Midnight() time.Time {
	if e.SolarMidnight != nil {
		return *e.SolarMidnight
	}
	return e.SolarNoon.Add(-12 * time.Hour)
}

// dusk is the evening instant at which darkness d begins.
func (e SunEvents) dusk(d Darkness) *time.Time {
	switch d {
	case Civil:
		return e.CivilTwilightEnd
	case Nautical:
		return e.NauticalTwilightEnd
	case Astronomical:
		return e.AstroTwilightEnd
	default:
		return e.Sunset
	}
}

// dawn is the morning instant at which darkness d ends.
func (e SunEvents) dawn(d Darkness) *time.Time {
	switch d {
	case Civil:
		return e.CivilTwilightBegin
	case Nautical:
		return e.NauticalTwilightBegin
	case Astronomical:
		return e.AstroTwilightBegin
	default:
		return e.Sunrise
	}
}

// SunData holds the dusk-today to dawn-tomorrow intervals for each darkness
// level. The zero value means "not computed yet".
type SunData struct {
	Night         DateInterval `json:"night"`
	Civil         DateInterval `json:"civil"`
	Nautical      DateInterval `json:"nautical"`
	Astronomical  DateInterval `json:"astronomical"`
	SolarMidnight time.Time    `json:"solar_midnight"`
}

func (s SunData) IsComputed() bool {
	return !s.SolarMidnight.IsZero()
}

// Interval returns the interval for the given darkness level.
func (s SunData) Interval(d Darkness) DateInterval {
	switch d {
	case Civil:
		return s.Civil
	case Nautical:
		return s.Nautical
	case Astronomical:
		return s.Astronomical
	default:
		return s.Night
	}
}

// AssembleSunData stitches today's dusk and tomorrow's dawn into the four
// night intervals. Missing events are resolved per interval: if the sun is
// still above the level's threshold at solar midnight the level never
// occurs (empty interval at today's noon); otherwise it lasts from noon to noon.
func AssembleSunData(loc astro.Location, today, tomorrow SunEvents) SunData {
	midnight := tomorrow.Midnight()
	midnightAlt := astro.SunAltitude(loc, midnight)

	interval := func(d Darkness) DateInterval {
		end, begin := today.dusk(d), tomorrow.dawn(d)
		if end != nil && begin != nil && !begin.Before(*end) {
			return DateInterval{Start: *end, End: *begin}
		}
		if midnightAlt > d.Threshold() {
			return EmptyAt(today.SolarNoon)
		}
		return NewInterval(today.SolarNoon, tomorrow.SolarNoon)
	}

	return SunData{
		Night:         interval(Night),
		Civil:         interval(Civil),
		Nautical:      interval(Nautical),
		Astronomical:  interval(Astronomical),
		SolarMidnight: midnight,
	}
}
