package scoring

import (
	"math"
	"time"

	"deepsky/internal/astro"
	"deepsky/internal/catalog"
	"deepsky/internal/ephemeris"
	"deepsky/internal/settings"
)

// SampleStep is the altitude sampling cadence for visibility.
const SampleStep = 10 * time.Minute

// Scored is a target with its scores for one viewing window.
type Scored struct {
	Target     catalog.DeepSkyTarget `json:"target"`
	Visibility float64               `json:"visibility"`
	Meridian   float64               `json:"meridian"`
}

// VisibilityScore is the fraction of the window during which the target is
// at or above limitingAltitude. Samples run from Start to End inclusive.
func VisibilityScore(t catalog.DeepSkyTarget, loc astro.Location, window ephemeris.DateInterval, limitingAltitude float64) float64 {
	if window.IsEmpty() {
		return 0
	}
	if NeverRises(t, loc, limitingAltitude) {
		return 0
	}

	pos := t.Position()
	var total, above int
	for at := window.Start; !at.After(window.End); at = at.Add(SampleStep) {
		total++
		if astro.Altitude(pos, loc, at) >= limitingAltitude {
			above++
		}
	}
	return float64(above) / float64(total)
}

// NeverRises reports whether the target's culmination stays below floor.
func NeverRises(t catalog.DeepSkyTarget, loc astro.Location, floor float64) bool {
	return astro.CulminationAltitude(t.Dec, loc.Latitude) < floor
}

// MeridianScore rates how close the target's transit falls to the middle
// of the window: 1 when centred, 0 at either edge or outside.
func MeridianScore(t catalog.DeepSkyTarget, loc astro.Location, window ephemeris.DateInterval) float64 {
	if window.IsEmpty() {
		return 0
	}
	mid := window.Midpoint()
	ha := astro.HourAngle(t.RA, loc.Longitude, mid)

	// Hours from the midpoint to the nearest upper transit.
	offset := math.Abs(ha / astro.SiderealRate)
	half := window.Duration().Hours() / 2

	score := 1 - offset/half
	return math.Max(0, math.Min(1, score))
}

// Score computes both scores for every target. Targets that never clear
// the limiting altitude are dropped when HideNeverRises is set.
func Score(targets []catalog.DeepSkyTarget, loc astro.Location, window ephemeris.DateInterval, ts settings.TargetSettings) []Scored {
	out := make([]Scored, 0, len(targets))
	for _, t := range targets {
		if ts.HideNeverRises && NeverRises(t, loc, ts.LimitingAltitude) {
			continue
		}
		out = append(out, Scored{
			Target:     t,
			Visibility: VisibilityScore(t, loc, window, ts.LimitingAltitude),
			Meridian:   MeridianScore(t, loc, window),
		})
	}
	return out
}
