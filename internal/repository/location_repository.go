package repository

import (
	"context"

	"deepsky/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LocationRepository interface {
	Create(ctx context.Context, location *models.SavedLocation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SavedLocation, error)
	List(ctx context.Context) ([]models.SavedLocation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *models.SavedLocation) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SavedLocation, error) {
	var location models.SavedLocation
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&location).
		Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) List(ctx context.Context) ([]models.SavedLocation, error) {
	var locations []models.SavedLocation
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&locations).
		Error
	return locations, err
}

// Delete возвращает gorm.ErrRecordNotFound, если удалять нечего
func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.SavedLocation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *locationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SavedLocation{}).Count(&count).Error
	return count, err
}
