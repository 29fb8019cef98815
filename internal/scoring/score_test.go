package scoring

import (
	"testing"
	"time"

	"deepsky/internal/astro"
	"deepsky/internal/catalog"
	"deepsky/internal/ephemeris"
	"deepsky/internal/settings"
)

var chicago = astro.Location{Latitude: 41.833, Longitude: -87.872, Timezone: "America/Chicago"}

func target(id string, ra, dec float64) catalog.DeepSkyTarget {
	return catalog.DeepSkyTarget{
		ID:           id,
		Names:        []string{id},
		Designations: []catalog.Designation{{Catalog: catalog.NGC, Number: 1}},
		RA:           ra,
		Dec:          dec,
		Types:        []catalog.DSOType{catalog.Galaxy},
	}
}

func window(start time.Time, hours float64) ephemeris.DateInterval {
	return ephemeris.NewInterval(start, start.Add(time.Duration(hours*float64(time.Hour))))
}

func TestVisibilityScoreRange(t *testing.T) {
	w := window(time.Date(2023, 10, 1, 3, 0, 0, 0, time.UTC), 8)
	for ra := 0.0; ra < 360; ra += 30 {
		for dec := -80.0; dec <= 80; dec += 20 {
			got := VisibilityScore(target("t", ra, dec), chicago, w, 30)
			if got < 0 || got > 1 {
				t.Fatalf("VisibilityScore(ra=%v, dec=%v) = %v", ra, dec, got)
			}
		}
	}
}

func TestVisibilityNeverRises(t *testing.T) {
	// Dec -60 never climbs above -11 degrees from Chicago.
	southern := target("south", 200, -60)
	for day := 0; day < 365; day += 15 {
		start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)
		if got := VisibilityScore(southern, chicago, window(start, 24), 0); got != 0 {
			t.Fatalf("day %d: score %v, want 0", day, got)
		}
	}
	if !NeverRises(southern, chicago, 0) {
		t.Error("NeverRises should be true")
	}
}

func TestVisibilityCircumpolarAtPole(t *testing.T) {
	pole := astro.Location{Latitude: 90, Longitude: 0}
	polaris := target("polaris", 37.95, 89.26)
	for _, start := range []time.Time{
		time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 9, 17, 13, 0, 0, 0, time.UTC),
	} {
		if got := VisibilityScore(polaris, pole, window(start, 10), 30); got != 1 {
			t.Errorf("circumpolar score = %v, want 1", got)
		}
	}
}

func TestVisibilityEmptyWindow(t *testing.T) {
	w := ephemeris.EmptyAt(time.Date(2023, 6, 21, 17, 0, 0, 0, time.UTC))
	if got := VisibilityScore(target("m31", 10.685, 41.269), chicago, w, 0); got != 0 {
		t.Errorf("empty window score = %v", got)
	}
	if got := MeridianScore(target("m31", 10.685, 41.269), chicago, w); got != 0 {
		t.Errorf("empty window meridian = %v", got)
	}
}

// transitOf finds the instant near start at which the target's hour angle is zero.
func transitOf(t catalog.DeepSkyTarget, loc astro.Location, start time.Time) time.Time {
	ha := astro.HourAngle(t.RA, loc.Longitude, start)
	return start.Add(-time.Duration(ha / astro.SiderealRate * float64(time.Hour)))
}

func TestMeridianScore(t *testing.T) {
	m31 := target("m31", 10.685, 41.269)
	transit := transitOf(m31, chicago, time.Date(2023, 10, 1, 5, 0, 0, 0, time.UTC))

	centred := ephemeris.NewInterval(transit.Add(-4*time.Hour), transit.Add(4*time.Hour))
	if got := MeridianScore(m31, chicago, centred); got < 0.99 {
		t.Errorf("centred transit score = %v, want ~1", got)
	}

	quarter := ephemeris.NewInterval(transit.Add(-2*time.Hour), transit.Add(6*time.Hour))
	if got := MeridianScore(m31, chicago, quarter); got < 0.48 || got > 0.52 {
		t.Errorf("transit halfway to the edge scores %v, want ~0.5", got)
	}

	after := ephemeris.NewInterval(transit.Add(1*time.Hour), transit.Add(5*time.Hour))
	if got := MeridianScore(m31, chicago, after); got != 0 {
		t.Errorf("transit outside window scores %v, want 0", got)
	}
}

func TestScoreHidesNeverRises(t *testing.T) {
	targets := []catalog.DeepSkyTarget{target("m31", 10.685, 41.269), target("south", 200, -60)}
	w := window(time.Date(2023, 10, 1, 3, 0, 0, 0, time.UTC), 8)

	hidden := Score(targets, chicago, w, settings.TargetSettings{LimitingAltitude: 20, HideNeverRises: true})
	if len(hidden) != 1 || hidden[0].Target.ID != "m31" {
		t.Errorf("hidden = %+v", hidden)
	}

	shown := Score(targets, chicago, w, settings.TargetSettings{LimitingAltitude: 20})
	if len(shown) != 2 || shown[1].Visibility != 0 {
		t.Errorf("shown = %+v", shown)
	}
}
