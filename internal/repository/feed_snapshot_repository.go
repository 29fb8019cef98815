package repository

import (
	"context"
	"time"

	"deepsky/internal/models"

	"gorm.io/gorm"
)

type FeedSnapshotRepository interface {
	Create(ctx context.Context, snapshot *models.FeedSnapshot) error
	GetLatest(ctx context.Context, source, locationKey, date string) (*models.FeedSnapshot, error)
	Count(ctx context.Context) (int64, error)
	DeleteOld(ctx context.Context, olderThan time.Time) (int64, error)
}

type feedSnapshotRepository struct {
	db *gorm.DB
}

func NewFeedSnapshotRepository(db *gorm.DB) FeedSnapshotRepository {
	return &feedSnapshotRepository{db: db}
}

func (r *feedSnapshotRepository) Create(ctx context.Context, snapshot *models.FeedSnapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

// GetLatest возвращает gorm.ErrRecordNotFound, если снимка нет
func (r *feedSnapshotRepository) GetLatest(ctx context.Context, source, locationKey, date string) (*models.FeedSnapshot, error) {
	var snapshot models.FeedSnapshot
	err := r.db.WithContext(ctx).
		Where("source = ? AND location_key = ? AND date = ?", source, locationKey, date).
		Order("fetched_at DESC").
		First(&snapshot).
		Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *feedSnapshotRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.FeedSnapshot{}).Count(&count).Error
	return count, err
}

func (r *feedSnapshotRepository) DeleteOld(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("fetched_at < ?", olderThan).
		Delete(&models.FeedSnapshot{})
	return result.RowsAffected, result.Error
}
