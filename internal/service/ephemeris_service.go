package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"deepsky/internal/astro"
	"deepsky/internal/clients"
	"deepsky/internal/ephemeris"
	"deepsky/internal/models"
	"deepsky/internal/repository"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Night - солнце и луна для ночи, начинающейся в указанный локальный день
type Night struct {
	Location astro.Location     `json:"location"`
	Date     string             `json:"date"`
	Sun      ephemeris.SunData  `json:"sun"`
	Moon     ephemeris.MoonData `json:"moon"`
}

type EphemerisService interface {
	Night(ctx context.Context, loc astro.Location, date time.Time) (Night, error)
	PruneSnapshots(ctx context.Context, retention time.Duration) (int64, error)
}

type ephemerisService struct {
	sunClient    clients.SunClient
	moonClient   clients.MoonClient
	snapshotRepo repository.FeedSnapshotRepository
	cacheRepo    repository.CacheRepository
	cacheTTL     time.Duration
	now          func() time.Time
}

func NewEphemerisService(
	sunClient clients.SunClient,
	moonClient clients.MoonClient,
	snapshotRepo repository.FeedSnapshotRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
) EphemerisService {
	return &ephemerisService{
		sunClient:    sunClient,
		moonClient:   moonClient,
		snapshotRepo: snapshotRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
		now:          time.Now,
	}
}

// Night запрашивает сегодня и завтра для солнца и луны параллельно.
// Ночь собирается только если успешны все четыре запроса.
func (s *ephemerisService) Night(ctx context.Context, loc astro.Location, date time.Time) (Night, error) {
	if !loc.Valid() {
		return Night{}, fmt.Errorf("%w: coordinates %.4f, %.4f", clients.ErrUnaddressable, loc.Latitude, loc.Longitude)
	}
	today := loc.LocalDate(date)
	tomorrow := today.AddDate(0, 0, 1)

	var (
		sunToday, sunTomorrow   ephemeris.SunEvents
		moonToday, moonTomorrow ephemeris.MoonEvents
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sunToday, err = fetchCached(gctx, s, models.SourceSun, loc, today, s.sunClient.FetchSun)
		return err
	})
	g.Go(func() (err error) {
		sunTomorrow, err = fetchCached(gctx, s, models.SourceSun, loc, tomorrow, s.sunClient.FetchSun)
		return err
	})
	g.Go(func() (err error) {
		moonToday, err = fetchCached(gctx, s, models.SourceMoon, loc, today, s.moonClient.FetchMoon)
		return err
	})
	g.Go(func() (err error) {
		moonTomorrow, err = fetchCached(gctx, s, models.SourceMoon, loc, tomorrow, s.moonClient.FetchMoon)
		return err
	})
	if err := g.Wait(); err != nil {
		return Night{}, err
	}

	sun := ephemeris.AssembleSunData(loc, sunToday, sunTomorrow)
	return Night{
		Location: loc,
		Date:     today.Format("2006-01-02"),
		Sun:      sun,
		Moon:     ephemeris.AssembleMoonData(moonToday, moonTomorrow, sun),
	}, nil
}

func feedCacheKey(source string, loc astro.Location, day time.Time) string {
	return fmt.Sprintf("feed:%s:%s:%s", source, loc.Key(), day.Format("2006-01-02"))
}

// fetchCached: Redis -> фид -> последний снимок в БД.
// Успешный ответ фида кладётся в Redis и сохраняется снимком.
func fetchCached[T any](
	ctx context.Context,
	s *ephemerisService,
	source string,
	loc astro.Location,
	day time.Time,
	fetch func(context.Context, astro.Location, time.Time) (T, error),
) (T, error) {
	var payload T
	key := feedCacheKey(source, loc, day)
	date := day.Format("2006-01-02")
	logger := log.WithFields(log.Fields{"source": source, "location": loc.Key(), "date": date})

	if found, err := s.cacheRepo.GetJSON(ctx, key, &payload); err != nil {
		logger.WithError(err).Warn("Ошибка чтения кэша фида")
	} else if found {
		return payload, nil
	}

	payload, fetchErr := fetch(ctx, loc, day)
	if fetchErr == nil {
		if err := s.cacheRepo.SetJSON(ctx, key, payload, s.cacheTTL); err != nil {
			logger.WithError(err).Warn("Не удалось закэшировать ответ фида")
		}
		s.storeSnapshot(ctx, source, loc, date, payload, logger)
		return payload, nil
	}

	logger.WithError(fetchErr).Warn("Ошибка запроса фида")
	if isRequestError(fetchErr) {
		return payload, fetchErr
	}

	snapshot, err := s.snapshotRepo.GetLatest(ctx, source, loc.Key(), date)
	if err != nil {
		return payload, fetchErr
	}
	if err := json.Unmarshal(snapshot.Payload, &payload); err != nil {
		logger.WithError(err).Error("Повреждённый снимок фида")
		return payload, fetchErr
	}
	logger.WithField("fetched_at", snapshot.FetchedAt).Info("Используется сохранённый снимок фида")
	return payload, nil
}

func (s *ephemerisService) storeSnapshot(ctx context.Context, source string, loc astro.Location, date string, payload any, logger *log.Entry) {
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.WithError(err).Warn("Не удалось сериализовать снимок")
		return
	}
	snapshot := &models.FeedSnapshot{
		Source:      source,
		LocationKey: loc.Key(),
		Date:        date,
		FetchedAt:   s.now().UTC(),
		Payload:     raw,
	}
	if err := s.snapshotRepo.Create(ctx, snapshot); err != nil {
		logger.WithError(err).Warn("Не удалось сохранить снимок фида")
	}
}

func (s *ephemerisService) PruneSnapshots(ctx context.Context, retention time.Duration) (int64, error) {
	deleted, err := s.snapshotRepo.DeleteOld(ctx, s.now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("failed to prune feed snapshots: %w", err)
	}
	return deleted, nil
}
