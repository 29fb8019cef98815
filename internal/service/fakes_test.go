package service

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"deepsky/internal/astro"
	"deepsky/internal/clients"
	"deepsky/internal/ephemeris"
	"deepsky/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.data[key]), nil
}

func (c *memCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.SetJSON(ctx, key, value, expiration)
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	raw, ok := c.data[key]
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	return nil
}

func (c *memCache) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
			n++
		}
	}
	return n, nil
}

func (c *memCache) keys(prefix string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

type memSnapshots struct {
	mu    sync.Mutex
	items []models.FeedSnapshot
}

func (r *memSnapshots) Create(ctx context.Context, snapshot *models.FeedSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot.ID = uint(len(r.items) + 1)
	r.items = append(r.items, *snapshot)
	return nil
}

func (r *memSnapshots) GetLatest(ctx context.Context, source, locationKey, date string) (*models.FeedSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.items) - 1; i >= 0; i-- {
		s := r.items[i]
		if s.Source == source && s.LocationKey == locationKey && s.Date == date {
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memSnapshots) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *memSnapshots) DeleteOld(ctx context.Context, olderThan time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	var deleted int64
	for _, s := range r.items {
		if s.FetchedAt.Before(olderThan) {
			deleted++
			continue
		}
		kept = append(kept, s)
	}
	r.items = kept
	return deleted, nil
}

// fakeMoon отдаёт луну, встающую в 18:00 и заходящую в 06:00 следующего дня
type fakeMoon struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeMoon) FetchMoon(ctx context.Context, loc astro.Location, date time.Time) (ephemeris.MoonEvents, error) {
	f.mu.Lock()
	f.calls++
	err := f.err
	f.mu.Unlock()
	if err != nil {
		return ephemeris.MoonEvents{}, err
	}
	day := loc.LocalDate(date)
	rise := day.Add(18 * time.Hour)
	set := day.Add(6 * time.Hour)
	return ephemeris.MoonEvents{
		Date:  day.Format("2006-01-02"),
		Phase: "Waxing Gibbous",
		Rise:  &rise,
		Set:   &set,
		Noon:  day.Add(12 * time.Hour),
	}, nil
}

func (f *fakeMoon) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeMoon) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// failingSun всегда отвечает ошибкой фида
type failingSun struct{}

func (failingSun) FetchSun(ctx context.Context, loc astro.Location, date time.Time) (ephemeris.SunEvents, error) {
	return ephemeris.SunEvents{}, clients.ErrUnfetchable
}

// switchSun переключается между локальным расчётом и ошибкой
type switchSun struct {
	mu   sync.Mutex
	down bool
}

func (s *switchSun) FetchSun(ctx context.Context, loc astro.Location, date time.Time) (ephemeris.SunEvents, error) {
	s.mu.Lock()
	down := s.down
	s.mu.Unlock()
	if down {
		return ephemeris.SunEvents{}, errors.New("dial tcp: connection refused")
	}
	return clients.NewLocalSunClient().FetchSun(ctx, loc, date)
}

func (s *switchSun) setDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.down = down
}

type memSettings struct {
	record  *models.SettingsRecord
	presets []models.ImagingPresetRecord
	saves   int
}

func (r *memSettings) Get(ctx context.Context) (*models.SettingsRecord, error) {
	if r.record == nil {
		d := models.DefaultSettingsRecord()
		return &d, nil
	}
	copied := *r.record
	return &copied, nil
}

func (r *memSettings) Save(ctx context.Context, record *models.SettingsRecord) error {
	copied := *record
	r.record = &copied
	r.saves++
	return nil
}

func (r *memSettings) CreatePreset(ctx context.Context, preset *models.ImagingPresetRecord) error {
	if preset.ID == uuid.Nil {
		preset.ID = uuid.New()
	}
	r.presets = append(r.presets, *preset)
	return nil
}

func (r *memSettings) GetPreset(ctx context.Context, id uuid.UUID) (*models.ImagingPresetRecord, error) {
	for _, p := range r.presets {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memSettings) ListPresets(ctx context.Context) ([]models.ImagingPresetRecord, error) {
	return r.presets, nil
}

type memLocations struct {
	items []models.SavedLocation
}

func (r *memLocations) Create(ctx context.Context, location *models.SavedLocation) error {
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	r.items = append(r.items, *location)
	return nil
}

func (r *memLocations) GetByID(ctx context.Context, id uuid.UUID) (*models.SavedLocation, error) {
	for _, l := range r.items {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memLocations) List(ctx context.Context) ([]models.SavedLocation, error) {
	return r.items, nil
}

func (r *memLocations) Delete(ctx context.Context, id uuid.UUID) error {
	for i, l := range r.items {
		if l.ID == id {
			r.items = slices.Delete(r.items, i, i+1)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memLocations) Count(ctx context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

type memStore struct {
	objects map[string][]byte
	err     error
}

func (s *memStore) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.objects == nil {
		s.objects = make(map[string][]byte)
	}
	s.objects[name] = data
	return "exports/" + name, nil
}
