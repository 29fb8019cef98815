package astro

import (
	"math"
	"time"
)

// Apparent hour-angle rates in degrees per hour.
const (
	SiderealRate = 15.041
	SolarRate    = 15.0
)

// LocalSiderealTime returns the low-precision local sidereal time in degrees.
func LocalSiderealTime(longitude float64, t time.Time) float64 {
	d := DaysSinceJ2000(t)
	return Normalize360(100.46 + 0.985647*d + longitude + 15.0*UTCHours(t))
}

// HourAngle returns the hour angle of an object at right ascension ra,
// normalised to [-180,180). Negative values are east of the meridian.
func HourAngle(ra, longitude float64, t time.Time) float64 {
	return Normalize180(LocalSiderealTime(longitude, t) - ra)
}

// Altitude returns the geometric altitude in degrees of pos seen from loc at t.
func Altitude(pos Equatorial, loc Location, t time.Time) float64 {
	H := Deg2Rad(HourAngle(pos.RA, loc.Longitude, t))
	dec := Deg2Rad(pos.Dec)
	lat := Deg2Rad(loc.Latitude)

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(H)
	// Clamp to avoid NaN from floating point drift.
	sinAlt = math.Max(-1, math.Min(1, sinAlt))
	return Rad2Deg(math.Asin(sinAlt))
}

// CulminationAltitude is the highest altitude an object at dec ever
// reaches at latitude lat.
func CulminationAltitude(dec, lat float64) float64 {
	return 90.0 - math.Abs(lat-dec)
}
