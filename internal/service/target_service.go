package service

import (
	"context"
	"fmt"
	"time"

	"deepsky/internal/astro"
	"deepsky/internal/catalog"
	"deepsky/internal/ephemeris"
	"deepsky/internal/scoring"
)

// TargetQuery - параметры списка целей
type TargetQuery struct {
	Location astro.Location
	Date     time.Time
	// Darkness переопределяет порог темноты из настроек
	Darkness  *ephemeris.Darkness
	Filter    scoring.Filter
	Sort      scoring.SortKey
	Ascending bool
	Limit     int
}

type TargetList struct {
	Date     string                 `json:"date"`
	Darkness ephemeris.Darkness     `json:"darkness"`
	Interval ephemeris.DateInterval `json:"interval"`
	Total    int                    `json:"total"`
	Items    []scoring.Scored       `json:"items"`
}

type TargetService interface {
	List(ctx context.Context, q TargetQuery) (TargetList, error)
}

type targetService struct {
	ephemerisService EphemerisService
	settingsService  SettingsService
	targets          []catalog.DeepSkyTarget
}

func NewTargetService(
	ephemerisService EphemerisService,
	settingsService SettingsService,
	targets []catalog.DeepSkyTarget,
) TargetService {
	return &targetService{
		ephemerisService: ephemerisService,
		settingsService:  settingsService,
		targets:          targets,
	}
}

func (s *targetService) List(ctx context.Context, q TargetQuery) (TargetList, error) {
	if q.Limit < 0 {
		return TargetList{}, fmt.Errorf("%w: negative limit", ErrInvalidInput)
	}
	view, err := s.settingsService.Get(ctx)
	if err != nil {
		return TargetList{}, err
	}
	night, err := s.ephemerisService.Night(ctx, q.Location, q.Date)
	if err != nil {
		return TargetList{}, feedError(err)
	}

	darkness := view.Report.DarknessThreshold
	if q.Darkness != nil {
		darkness = *q.Darkness
	}
	window := night.Sun.Interval(darkness)

	items := scoring.Apply(scoring.Score(s.targets, q.Location, window, view.Target), q.Filter)
	scoring.Sort(items, q.Sort, q.Ascending)

	list := TargetList{
		Date:     night.Date,
		Darkness: darkness,
		Interval: window,
		Total:    len(items),
		Items:    items,
	}
	if q.Limit > 0 && len(list.Items) > q.Limit {
		list.Items = list.Items[:q.Limit]
	}
	return list, nil
}
