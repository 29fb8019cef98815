package astro

import (
	"math"
	"time"
)

// j2000 is the J2000.0 epoch: 2000-01-01 12:00:00 UTC.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// DaysSinceJ2000 returns the signed, fractional number of days since J2000.0.
func DaysSinceJ2000(t time.Time) float64 {
	return t.UTC().Sub(j2000).Hours() / 24.0
}

// UTCHours returns the time of day of t in UTC as fractional hours [0,24).
func UTCHours(t time.Time) float64 {
	u := t.UTC()
	return float64(u.Hour()) +
		float64(u.Minute())/60.0 +
		float64(u.Second())/3600.0 +
		float64(u.Nanosecond())/(3600.0*1e9)
}

func Deg2Rad(d float64) float64 { return d * math.Pi / 180.0 }
func Rad2Deg(r float64) float64 { return r * 180.0 / math.Pi }

// Mod is a modulo whose result always has the sign of n.
func Mod(a, n float64) float64 {
	m := math.Mod(a, n)
	if m < 0 {
		m += n
	}
	return m
}

// Normalize360 wraps an angle into [0,360).
func Normalize360(deg float64) float64 {
	return Mod(deg, 360.0)
}

// Normalize180 wraps an angle into [-180,180).
func Normalize180(deg float64) float64 {
	return Mod(deg+180.0, 360.0) - 180.0
}
