package ephemeris

import (
	"math"
	"time"

	"deepsky/internal/astro"
)

// SynodicMonth is the mean length of a lunation in days.
const SynodicMonth = 29.53058770576

// illuminationPeriod is the denominator of the sin² illumination proxy.
const illuminationPeriod = 29.86

// referenceNewMoon is a known new moon: 2000-01-06 18:14 UTC.
var referenceNewMoon = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// MoonEvents is one day's moon payload from a feed. Rise and Set are nil
// when the event does not happen that day.
type MoonEvents struct {
	Date         string     `json:"date"` // YYYY-MM-DD, observer-local
	Phase        string     `json:"phase,omitempty"`
	FractionText string     `json:"fraction_text,omitempty"` // e.g. "63%"
	Rise         *time.Time `json:"rise,omitempty"`
	Set          *time.Time `json:"set,omitempty"`
	Noon         time.Time  `json:"noon"`
}

// MoonData describes the moon for one night.
type MoonData struct {
	Phase       string       `json:"phase"`
	Illuminated float64      `json:"illuminated"`
	Interval    DateInterval `json:"interval"`
}

// MoonAge returns days since the last new moon at t, in [0, SynodicMonth).
func MoonAge(t time.Time) float64 {
	days := t.UTC().Sub(referenceNewMoon).Hours() / 24.0
	return astro.Mod(days, SynodicMonth)
}

// Illumination approximates the illuminated fraction of the lunar disc at t.
func Illumination(t time.Time) float64 {
	s := math.Sin(math.Pi * MoonAge(t) / illuminationPeriod)
	return s * s
}

// PhaseName classifies a moon age (days) into one of the eight named phases.
func PhaseName(age float64) string {
	switch {
	case age < 1.84566:
		return "New Moon"
	case age < 5.53699:
		return "Waxing Crescent"
	case age < 9.22831:
		return "First Quarter"
	case age < 12.91963:
		return "Waxing Gibbous"
	case age < 16.61096:
		return "Full Moon"
	case age < 20.30228:
		return "Waning Gibbous"
	case age < 23.99361:
		return "Last Quarter"
	case age < 27.68493:
		return "Waning Crescent"
	default:
		return "New Moon"
	}
}

// representativeInstant is when the day's illumination is sampled.
func (e MoonEvents) representativeInstant() time.Time {
	switch {
	case e.Rise != nil:
		return *e.Rise
	case e.Set != nil:
		return *e.Set
	default:
		return e.Noon
	}
}

// AssembleMoonData derives tonight's moon data from today's and tomorrow's
// rise/set events. sun must already be assembled for the same night.
func AssembleMoonData(today, tomorrow MoonEvents, sun SunData) MoonData {
	at := today.representativeInstant()
	phase := today.Phase
	if phase == "" {
		phase = PhaseName(MoonAge(at))
	}
	return MoonData{
		Phase:       phase,
		Illuminated: Illumination(at),
		Interval:    MoonInterval(today, tomorrow, sun),
	}
}

// MoonInterval picks the single rise-to-set span overlapping the night.
// The cases are evaluated in order and each assumes the previous failed.
func MoonInterval(today, tomorrow MoonEvents, sun SunData) DateInterval {
	anchor := sun.Night.Start
	span := func(rise, set *time.Time) DateInterval {
		if rise == nil || set == nil {
			return EmptyAt(anchor)
		}
		return NewInterval(*rise, *set)
	}

	switch {
	// No set today, or today's set closes the previous up-period.
	case today.Set == nil || (today.Rise != nil && today.Set.Before(*today.Rise)):
		return span(today.Rise, tomorrow.Set)

	// Here the moon sets today, after any rise today. A missing rise, or a
	// rise still before astronomical dusk, belongs to the daytime pass.
	case today.Rise == nil || (today.Rise.Before(*today.Set) && today.Rise.Before(sun.Astronomical.Start)):
		return span(tomorrow.Rise, tomorrow.Set)

	default:
		return span(today.Rise, today.Set)
	}
}
