package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"deepsky/internal/astro"
	"deepsky/internal/clients"
)

var chicago = astro.Location{Latitude: 41.833, Longitude: -87.872, Timezone: "America/Chicago"}

var winterDay = time.Date(2023, 12, 21, 18, 0, 0, 0, time.UTC)

type ephemerisFixture struct {
	svc       EphemerisService
	cache     *memCache
	snapshots *memSnapshots
	moon      *fakeMoon
}

func newEphemerisFixture(sun clients.SunClient) ephemerisFixture {
	f := ephemerisFixture{
		cache:     newMemCache(),
		snapshots: &memSnapshots{},
		moon:      &fakeMoon{},
	}
	if sun == nil {
		sun = clients.NewLocalSunClient()
	}
	f.svc = NewEphemerisService(sun, f.moon, f.snapshots, f.cache, 6*time.Hour)
	return f
}

func TestNightAssembles(t *testing.T) {
	f := newEphemerisFixture(nil)
	ctx := context.Background()

	night, err := f.svc.Night(ctx, chicago, winterDay)
	if err != nil {
		t.Fatalf("Night() error: %v", err)
	}

	if night.Date != "2023-12-21" {
		t.Errorf("date = %s", night.Date)
	}
	if !night.Sun.IsComputed() {
		t.Fatal("sun data not computed")
	}
	if got := night.Sun.Astronomical.Duration(); got < 9*time.Hour || got > 12*time.Hour {
		t.Errorf("winter astronomical night = %s", got)
	}
	if got := night.Moon.Interval.Duration(); got != 12*time.Hour {
		t.Errorf("moon interval = %s, want 12h rise-to-set", got)
	}
	if night.Moon.Illuminated < 0 || night.Moon.Illuminated > 1 {
		t.Errorf("illuminated = %f", night.Moon.Illuminated)
	}

	if keys := f.cache.keys("feed:"); len(keys) != 4 {
		t.Errorf("cached feed payloads = %v, want 4", keys)
	}
	if n, _ := f.snapshots.Count(ctx); n != 4 {
		t.Errorf("snapshots = %d, want 4", n)
	}
}

func TestNightServedFromCache(t *testing.T) {
	f := newEphemerisFixture(nil)
	ctx := context.Background()

	first, err := f.svc.Night(ctx, chicago, winterDay)
	if err != nil {
		t.Fatal(err)
	}
	calls := f.moon.count()

	second, err := f.svc.Night(ctx, chicago, winterDay)
	if err != nil {
		t.Fatal(err)
	}
	if f.moon.count() != calls {
		t.Errorf("moon feed called again: %d -> %d", calls, f.moon.count())
	}
	if !first.Sun.Astronomical.Start.Equal(second.Sun.Astronomical.Start) {
		t.Errorf("cached night differs: %s vs %s", first.Sun.Astronomical.Start, second.Sun.Astronomical.Start)
	}
}

func TestNightFailsAsWhole(t *testing.T) {
	f := newEphemerisFixture(nil)
	f.moon.fail(clients.ErrUnfetchable)

	_, err := f.svc.Night(context.Background(), chicago, winterDay)
	if !errors.Is(err, clients.ErrUnfetchable) {
		t.Fatalf("error = %v, want ErrUnfetchable", err)
	}
	if keys := f.cache.keys("feed:moon"); len(keys) != 0 {
		t.Errorf("failed payloads should not be cached: %v", keys)
	}
}

func TestNightFallsBackToSnapshot(t *testing.T) {
	f := newEphemerisFixture(nil)
	ctx := context.Background()

	want, err := f.svc.Night(ctx, chicago, winterDay)
	if err != nil {
		t.Fatal(err)
	}
	f.cache.DeletePrefix(ctx, "feed:")
	f.moon.fail(clients.ErrUnfetchable)

	got, err := f.svc.Night(ctx, chicago, winterDay)
	if err != nil {
		t.Fatalf("snapshot fallback failed: %v", err)
	}
	if !got.Moon.Interval.Start.Equal(want.Moon.Interval.Start) {
		t.Errorf("moon interval from snapshot = %v, want %v", got.Moon.Interval, want.Moon.Interval)
	}
}

func TestNightRequestErrorsSkipSnapshots(t *testing.T) {
	f := newEphemerisFixture(nil)
	ctx := context.Background()

	if _, err := f.svc.Night(ctx, chicago, winterDay); err != nil {
		t.Fatal(err)
	}
	f.cache.DeletePrefix(ctx, "feed:")
	f.moon.fail(clients.ErrOutOfRange)

	if _, err := f.svc.Night(ctx, chicago, winterDay); !errors.Is(err, clients.ErrOutOfRange) {
		t.Errorf("error = %v, want ErrOutOfRange", err)
	}
}

func TestNightRejectsBadCoordinates(t *testing.T) {
	f := newEphemerisFixture(nil)
	_, err := f.svc.Night(context.Background(), astro.Location{Latitude: 91}, winterDay)
	if !errors.Is(err, clients.ErrUnaddressable) {
		t.Errorf("error = %v, want ErrUnaddressable", err)
	}
	if f.moon.count() != 0 {
		t.Error("feeds should not be called for invalid coordinates")
	}
}

func TestPruneSnapshots(t *testing.T) {
	f := newEphemerisFixture(nil)
	ctx := context.Background()
	svc := f.svc.(*ephemerisService)

	fetched := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fetched }
	if _, err := f.svc.Night(ctx, chicago, winterDay); err != nil {
		t.Fatal(err)
	}

	svc.now = func() time.Time { return fetched.Add(12 * time.Hour) }
	if n, _ := f.svc.PruneSnapshots(ctx, 24*time.Hour); n != 0 {
		t.Errorf("pruned %d snapshots inside retention", n)
	}

	svc.now = func() time.Time { return fetched.Add(48 * time.Hour) }
	if n, _ := f.svc.PruneSnapshots(ctx, 24*time.Hour); n != 4 {
		t.Errorf("pruned %d, want 4", n)
	}
}
