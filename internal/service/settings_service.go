package service

import (
	"context"
	"errors"
	"fmt"

	"deepsky/internal/models"
	"deepsky/internal/numeric"
	"deepsky/internal/repository"
	"deepsky/internal/settings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// reportCachePrefix - префикс кэшированных отчётов, сбрасывается при смене настроек
const reportCachePrefix = "report:"

// SettingsView - текущие настройки вместе с выбранным пресетом
type SettingsView struct {
	settings.Snapshot
	SelectedPresetID *uuid.UUID `json:"selected_preset_id,omitempty"`
}

// SettingsUpdate - тело PUT /settings
type SettingsUpdate struct {
	Report settings.ReportSettings `json:"report"`
	Target settings.TargetSettings `json:"target"`
}

// DigitField - числовые настройки, которые можно править поразрядно
type DigitField string

const (
	FieldMaxAllowedMoon   DigitField = "max_allowed_moon"
	FieldMinFOVCoverage   DigitField = "min_fov_coverage"
	FieldMinVisibility    DigitField = "min_visibility"
	FieldLimitingAltitude DigitField = "limiting_altitude"
)

type SettingsService interface {
	Get(ctx context.Context) (SettingsView, error)
	Update(ctx context.Context, update SettingsUpdate) (SettingsView, error)
	SetDigit(ctx context.Context, field DigitField, place numeric.Place, digit int) (SettingsView, error)

	ListPresets(ctx context.Context) ([]models.ImagingPresetRecord, error)
	CreatePreset(ctx context.Context, preset settings.ImagingPreset) (*models.ImagingPresetRecord, error)
	SelectPreset(ctx context.Context, id uuid.UUID) (SettingsView, error)
}

type settingsService struct {
	repo      repository.SettingsRepository
	cacheRepo repository.CacheRepository
}

func NewSettingsService(repo repository.SettingsRepository, cacheRepo repository.CacheRepository) SettingsService {
	return &settingsService{
		repo:      repo,
		cacheRepo: cacheRepo,
	}
}

func (s *settingsService) Get(ctx context.Context) (SettingsView, error) {
	record, err := s.repo.Get(ctx)
	if err != nil {
		return SettingsView{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return s.view(ctx, record)
}

func (s *settingsService) view(ctx context.Context, record *models.SettingsRecord) (SettingsView, error) {
	v := SettingsView{
		Snapshot: settings.Snapshot{
			Report: record.Report(),
			Target: record.Target(),
		},
		SelectedPresetID: record.SelectedPresetID,
	}
	if record.SelectedPresetID == nil {
		return v, nil
	}

	preset, err := s.repo.GetPreset(ctx, *record.SelectedPresetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.WithField("preset_id", record.SelectedPresetID.String()).Warn("Выбранный пресет не найден")
		v.SelectedPresetID = nil
		return v, nil
	}
	if err != nil {
		return SettingsView{}, fmt.Errorf("failed to load preset: %w", err)
	}
	p := preset.ToPreset()
	v.Preset = &p
	return v, nil
}

func (s *settingsService) Update(ctx context.Context, update SettingsUpdate) (SettingsView, error) {
	if err := s.check(update.Report, update.Target); err != nil {
		return SettingsView{}, err
	}

	record, err := s.repo.Get(ctx)
	if err != nil {
		return SettingsView{}, fmt.Errorf("failed to load settings: %w", err)
	}
	record.Apply(update.Report, update.Target)
	return s.save(ctx, record)
}

func (s *settingsService) SetDigit(ctx context.Context, field DigitField, place numeric.Place, digit int) (SettingsView, error) {
	if digit < 0 || digit > 9 {
		return SettingsView{}, fmt.Errorf("%w: digit %d out of 0..9", ErrInvalidInput, digit)
	}
	record, err := s.repo.Get(ctx)
	if err != nil {
		return SettingsView{}, fmt.Errorf("failed to load settings: %w", err)
	}

	rs, ts := record.Report(), record.Target()
	var value *float64
	switch field {
	case FieldMaxAllowedMoon:
		value = &rs.MaxAllowedMoon
	case FieldMinFOVCoverage:
		value = &rs.MinFOVCoverage
	case FieldMinVisibility:
		value = &rs.MinVisibility
	case FieldLimitingAltitude:
		value = &ts.LimitingAltitude
	default:
		return SettingsView{}, fmt.Errorf("%w: unknown field %q", ErrInvalidInput, field)
	}
	*value = numeric.SetDigit(*value, place, digit)

	if err := s.check(rs, ts); err != nil {
		return SettingsView{}, err
	}
	record.Apply(rs, ts)
	return s.save(ctx, record)
}

func (s *settingsService) check(rs settings.ReportSettings, ts settings.TargetSettings) error {
	if err := validate.Struct(rs); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validate.Struct(ts); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (s *settingsService) save(ctx context.Context, record *models.SettingsRecord) (SettingsView, error) {
	if err := s.repo.Save(ctx, record); err != nil {
		return SettingsView{}, fmt.Errorf("failed to save settings: %w", err)
	}
	s.invalidateReports(ctx)
	return s.view(ctx, record)
}

func (s *settingsService) invalidateReports(ctx context.Context) {
	n, err := s.cacheRepo.DeletePrefix(ctx, reportCachePrefix)
	if err != nil {
		log.WithError(err).Warn("Не удалось сбросить кэш отчётов")
		return
	}
	log.WithField("keys", n).Debug("Кэш отчётов сброшен")
}

func (s *settingsService) ListPresets(ctx context.Context) ([]models.ImagingPresetRecord, error) {
	presets, err := s.repo.ListPresets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	return presets, nil
}

func (s *settingsService) CreatePreset(ctx context.Context, preset settings.ImagingPreset) (*models.ImagingPresetRecord, error) {
	if err := validate.Struct(preset); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	record := models.NewImagingPresetRecord(preset)
	if err := s.repo.CreatePreset(ctx, &record); err != nil {
		return nil, fmt.Errorf("failed to create preset: %w", err)
	}
	return &record, nil
}

func (s *settingsService) SelectPreset(ctx context.Context, id uuid.UUID) (SettingsView, error) {
	if _, err := s.repo.GetPreset(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingsView{}, fmt.Errorf("%w: preset %s", ErrNotFound, id)
		}
		return SettingsView{}, fmt.Errorf("failed to load preset: %w", err)
	}

	record, err := s.repo.Get(ctx)
	if err != nil {
		return SettingsView{}, fmt.Errorf("failed to load settings: %w", err)
	}
	record.SelectedPresetID = &id
	return s.save(ctx, record)
}
