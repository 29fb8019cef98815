package astro

import (
	"math"
	"time"
)

// Twilight thresholds, in degrees of solar altitude.
const (
	HorizonAltitude      = 0.0
	CivilAltitude        = -6.0
	NauticalAltitude     = -12.0
	AstronomicalAltitude = -18.0
)

// Equatorial holds apparent equatorial coordinates in degrees.
type Equatorial struct {
	RA  float64 `json:"ra"`  // [0,360)
	Dec float64 `json:"dec"` // [-90,90]
}

// SunPosition returns the sun's low-precision geocentric RA/Dec at t.
// Accuracy is about 0.01 degrees, enough for planning.
func SunPosition(t time.Time) Equatorial {
	d := DaysSinceJ2000(t)

	L := Normalize360(280.461 + 0.985647*d)
	g := Deg2Rad(Normalize360(357.528 + 0.985647*d))

	lambda := Deg2Rad(L + 1.915*math.Sin(g) + 0.02*math.Sin(2*g))
	eps := Deg2Rad(23.439 - 0.0000004*d)

	ra := math.Atan2(math.Cos(eps)*math.Sin(lambda), math.Cos(lambda))
	dec := math.Asin(math.Sin(eps) * math.Sin(lambda))

	return Equatorial{
		RA:  Normalize360(Rad2Deg(ra)),
		Dec: Rad2Deg(dec),
	}
}

// SunAltitude returns the sun's geometric altitude in degrees at t.
func SunAltitude(loc Location, t time.Time) float64 {
	return Altitude(SunPosition(t), loc, t)
}

// SolarTransit finds the instant nearest to guess at which the sun's hour
// angle equals targetHA (0 for solar noon, 180 for solar midnight).
func SolarTransit(loc Location, guess time.Time, targetHA float64) time.Time {
	t := guess
	for i := 0; i < 4; i++ {
		ha := HourAngle(SunPosition(t).RA, loc.Longitude, t)
		delta := Normalize180(ha - targetHA)
		t = t.Add(-time.Duration(delta / SolarRate * float64(time.Hour)))
	}
	return t
}
