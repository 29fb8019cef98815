package ephemeris

import (
	"testing"
	"time"

	"deepsky/internal/astro"
)

var chicago = astro.Location{Latitude: 41.833, Longitude: -87.872, Timezone: "America/Chicago"}

func at(zone *time.Location, y int, m time.Month, d, hh, mm int) *time.Time {
	t := time.Date(y, m, d, hh, mm, 0, 0, zone)
	return &t
}

// chicagoSummer returns plausible events for 2023-06-21 and 2023-06-22 in
// Chicago, all four levels present.
func chicagoSummer(t *testing.T) (SunEvents, SunEvents) {
	t.Helper()
	zone, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	day := func(d int) SunEvents {
		return SunEvents{
			Date:                  time.Date(2023, 6, d, 0, 0, 0, 0, zone).Format("2006-01-02"),
			Sunrise:               at(zone, 2023, 6, d, 5, 16),
			Sunset:                at(zone, 2023, 6, d, 20, 29),
			CivilTwilightBegin:    at(zone, 2023, 6, d, 4, 42),
			CivilTwilightEnd:      at(zone, 2023, 6, d, 21, 3),
			NauticalTwilightBegin: at(zone, 2023, 6, d, 3, 58),
			NauticalTwilightEnd:   at(zone, 2023, 6, d, 21, 47),
			AstroTwilightBegin:    at(zone, 2023, 6, d, 3, 5),
			AstroTwilightEnd:      at(zone, 2023, 6, d, 22, 40),
			SolarNoon:             *at(zone, 2023, 6, d, 12, 53),
		}
	}
	return day(21), day(22)
}

func TestAssembleSunDataNormalNight(t *testing.T) {
	today, tomorrow := chicagoSummer(t)
	sun := AssembleSunData(chicago, today, tomorrow)

	if !sun.IsComputed() {
		t.Fatal("assembled SunData should be computed")
	}
	if !sun.Night.Start.Equal(*today.Sunset) || !sun.Night.End.Equal(*tomorrow.Sunrise) {
		t.Errorf("night = %+v", sun.Night)
	}
	if !sun.Astronomical.Start.Equal(*today.AstroTwilightEnd) || !sun.Astronomical.End.Equal(*tomorrow.AstroTwilightBegin) {
		t.Errorf("astronomical = %+v", sun.Astronomical)
	}

	levels := []DateInterval{sun.Night, sun.Civil, sun.Nautical, sun.Astronomical}
	for i, iv := range levels {
		if iv.End.Before(iv.Start) {
			t.Errorf("interval %d ends before it starts", i)
		}
		if i > 0 && !levels[i-1].Covers(iv) {
			t.Errorf("interval %d not nested in interval %d", i, i-1)
		}
	}

	if !sun.SolarMidnight.Equal(tomorrow.SolarNoon.Add(-12 * time.Hour)) {
		t.Errorf("solar midnight = %s, want derived from tomorrow's noon", sun.SolarMidnight)
	}
}

func TestAssembleSunDataUsesSuppliedMidnight(t *testing.T) {
	today, tomorrow := chicagoSummer(t)
	mid := tomorrow.SolarNoon.Add(-11*time.Hour - 58*time.Minute)
	tomorrow.SolarMidnight = &mid

	sun := AssembleSunData(chicago, today, tomorrow)
	if !sun.SolarMidnight.Equal(mid) {
		t.Errorf("solar midnight = %s, want %s", sun.SolarMidnight, mid)
	}
}

func TestAssembleSunDataPolarFallback(t *testing.T) {
	// Tromsø around the summer solstice: the sun never sets.
	tromso := astro.Location{Latitude: 69.65, Longitude: 18.96, Timezone: "UTC"}
	noon := func(d int) time.Time { return time.Date(2023, 6, d, 10, 45, 0, 0, time.UTC) }
	today := SunEvents{SolarNoon: noon(21)}
	tomorrow := SunEvents{SolarNoon: noon(22)}

	sun := AssembleSunData(tromso, today, tomorrow)
	for d, iv := range map[Darkness]DateInterval{
		Night: sun.Night, Civil: sun.Civil, Nautical: sun.Nautical, Astronomical: sun.Astronomical,
	} {
		if iv.Duration() != 0 || !iv.Start.Equal(today.SolarNoon) {
			t.Errorf("%s interval = %+v, want empty at today's noon", d, iv)
		}
	}
}

func TestAssembleSunDataPolarNight(t *testing.T) {
	// Tromsø in late December: the sun stays below the horizon all day but
	// still climbs out of civil twilight around noon.
	tromso := astro.Location{Latitude: 69.65, Longitude: 18.96, Timezone: "UTC"}
	zone := time.UTC
	noon := func(d int) time.Time { return time.Date(2023, 12, d, 10, 45, 0, 0, zone) }
	today := SunEvents{
		SolarNoon:             noon(21),
		CivilTwilightBegin:    at(zone, 2023, 12, 21, 8, 40),
		CivilTwilightEnd:      at(zone, 2023, 12, 21, 12, 50),
		NauticalTwilightBegin: at(zone, 2023, 12, 21, 6, 50),
		NauticalTwilightEnd:   at(zone, 2023, 12, 21, 14, 40),
		AstroTwilightBegin:    at(zone, 2023, 12, 21, 5, 30),
		AstroTwilightEnd:      at(zone, 2023, 12, 21, 16, 0),
	}
	tomorrow := today
	tomorrow.SolarNoon = noon(22)
	tomorrow.CivilTwilightBegin = at(zone, 2023, 12, 22, 8, 40)
	tomorrow.NauticalTwilightBegin = at(zone, 2023, 12, 22, 6, 50)
	tomorrow.AstroTwilightBegin = at(zone, 2023, 12, 22, 5, 30)

	sun := AssembleSunData(tromso, today, tomorrow)

	// No sunrise or sunset: it is "night" from noon to noon.
	if !sun.Night.Start.Equal(noon(21)) || !sun.Night.End.Equal(noon(22)) {
		t.Errorf("night = %+v, want noon to noon", sun.Night)
	}
	// The other levels have their own events and are not affected.
	if !sun.Civil.Start.Equal(*today.CivilTwilightEnd) {
		t.Errorf("civil = %+v", sun.Civil)
	}
	if !sun.Night.Covers(sun.Civil) {
		t.Error("civil interval should be inside the noon-to-noon night")
	}
}

func TestSunDataZeroValue(t *testing.T) {
	var sun SunData
	if sun.IsComputed() {
		t.Error("zero SunData should not be computed")
	}
	if sun.Interval(Astronomical).Duration() != 0 {
		t.Error("zero SunData should have empty intervals")
	}
}

func TestDarknessJSON(t *testing.T) {
	for _, d := range []Darkness{Night, Civil, Nautical, Astronomical} {
		data, err := d.MarshalJSON()
		if err != nil {
			t.Fatal(err)
		}
		var got Darkness
		if err := got.UnmarshalJSON(data); err != nil || got != d {
			t.Errorf("round trip %s: got %s, err %v", d, got, err)
		}
	}
	var d Darkness
	if err := d.UnmarshalJSON([]byte(`"dusk"`)); err == nil {
		t.Error("unknown key should fail")
	}
}
