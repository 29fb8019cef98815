package repository

import (
	"context"
	"errors"

	"deepsky/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	// Get возвращает настройки по умолчанию, пока запись не сохранена
	Get(ctx context.Context) (*models.SettingsRecord, error)
	Save(ctx context.Context, record *models.SettingsRecord) error

	CreatePreset(ctx context.Context, preset *models.ImagingPresetRecord) error
	GetPreset(ctx context.Context, id uuid.UUID) (*models.ImagingPresetRecord, error)
	ListPresets(ctx context.Context) ([]models.ImagingPresetRecord, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*models.SettingsRecord, error) {
	var record models.SettingsRecord
	err := r.db.WithContext(ctx).
		Where("id = ?", models.SettingsID).
		First(&record).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.DefaultSettingsRecord()
		return &record, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Save записывает единственную строку настроек (upsert по id)
func (r *settingsRepository) Save(ctx context.Context, record *models.SettingsRecord) error {
	record.ID = models.SettingsID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(record).
		Error
}

func (r *settingsRepository) CreatePreset(ctx context.Context, preset *models.ImagingPresetRecord) error {
	return r.db.WithContext(ctx).Create(preset).Error
}

func (r *settingsRepository) GetPreset(ctx context.Context, id uuid.UUID) (*models.ImagingPresetRecord, error) {
	var preset models.ImagingPresetRecord
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&preset).
		Error
	if err != nil {
		return nil, err
	}
	return &preset, nil
}

func (r *settingsRepository) ListPresets(ctx context.Context) ([]models.ImagingPresetRecord, error) {
	var presets []models.ImagingPresetRecord
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&presets).
		Error
	return presets, err
}
