package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"deepsky/internal/astro"
	"deepsky/internal/catalog"
	"deepsky/internal/report"
	"deepsky/internal/repository"

	log "github.com/sirupsen/logrus"
)

type ReportService interface {
	Daily(ctx context.Context, loc astro.Location, date time.Time) (report.DailyReport, error)
	// WarmSavedLocations строит сегодняшние отчёты для всех сохранённых точек
	WarmSavedLocations(ctx context.Context) (int, error)
}

type reportService struct {
	ephemerisService EphemerisService
	settingsService  SettingsService
	locationService  LocationService
	cacheRepo        repository.CacheRepository
	targets          []catalog.DeepSkyTarget
	cacheTTL         time.Duration
	now              func() time.Time

	mu       sync.Mutex
	lastGood map[string]report.DailyReport
}

func NewReportService(
	ephemerisService EphemerisService,
	settingsService SettingsService,
	locationService LocationService,
	cacheRepo repository.CacheRepository,
	targets []catalog.DeepSkyTarget,
	cacheTTL time.Duration,
) ReportService {
	return &reportService{
		ephemerisService: ephemerisService,
		settingsService:  settingsService,
		locationService:  locationService,
		cacheRepo:        cacheRepo,
		targets:          targets,
		cacheTTL:         cacheTTL,
		now:              time.Now,
		lastGood:         make(map[string]report.DailyReport),
	}
}

func reportCacheKey(loc astro.Location, date time.Time) string {
	return fmt.Sprintf("%s%s:%s", reportCachePrefix, loc.Key(), loc.LocalDate(date).Format("2006-01-02"))
}

// Daily строит отчёт на ночь. Если фиды недоступны, отдаётся последний
// удачный отчёт для этой точки с пометкой Stale.
func (s *reportService) Daily(ctx context.Context, loc astro.Location, date time.Time) (report.DailyReport, error) {
	key := reportCacheKey(loc, date)
	logger := log.WithFields(log.Fields{"location": loc.Key(), "key": key})

	var cached report.DailyReport
	if found, err := s.cacheRepo.GetJSON(ctx, key, &cached); err != nil {
		logger.WithError(err).Warn("Ошибка чтения кэша отчёта")
	} else if found {
		return cached, nil
	}

	view, err := s.settingsService.Get(ctx)
	if err != nil {
		return report.DailyReport{}, err
	}

	night, err := s.ephemerisService.Night(ctx, loc, date)
	if err != nil {
		if isRequestError(err) {
			return report.DailyReport{}, err
		}
		if prev, ok := s.previous(loc); ok {
			logger.WithError(err).Warn("Фиды недоступны, отдаём предыдущий отчёт")
			prev.Stale = true
			return prev, nil
		}
		logger.WithError(err).Error("Фиды недоступны, предыдущего отчёта нет")
		return report.DailyReport{}, feedError(err)
	}

	r := report.Generate(report.Input{
		Location:    loc,
		Date:        loc.LocalDate(date),
		Sun:         night.Sun,
		Moon:        night.Moon,
		Settings:    view.Snapshot,
		Catalog:     s.targets,
		GeneratedAt: s.now().UTC(),
	})

	s.mu.Lock()
	s.lastGood[loc.Key()] = r
	s.mu.Unlock()

	if err := s.cacheRepo.SetJSON(ctx, key, r, s.cacheTTL); err != nil {
		logger.WithError(err).Warn("Не удалось закэшировать отчёт")
	}
	return r, nil
}

func (s *reportService) previous(loc astro.Location) (report.DailyReport, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.lastGood[loc.Key()]
	return r, ok
}

func (s *reportService) WarmSavedLocations(ctx context.Context) (int, error) {
	locations, err := s.locationService.List(ctx)
	if err != nil {
		return 0, err
	}

	var (
		warmed int
		errs   []error
	)
	now := time.Now()
	for _, saved := range locations {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		r, err := s.Daily(ctx, saved.ToLocation(), now)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", saved.Name, err))
			continue
		}
		if !r.Stale {
			warmed++
		}
	}
	return warmed, errors.Join(errs...)
}
