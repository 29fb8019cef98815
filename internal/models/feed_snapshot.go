package models

import (
	"time"

	"gorm.io/datatypes"
)

// Источники сырых данных
const (
	SourceSun  = "sun"
	SourceMoon = "moon"
)

// FeedSnapshot хранит сырой ответ фида за один локальный день.
// Тип колонки Payload выбирает datatypes.JSON (jsonb в postgres, JSON в mysql).
type FeedSnapshot struct {
	ID          uint           `gorm:"primaryKey"`
	Source      string         `gorm:"size:16;not null;index:idx_feed_snapshot_lookup,priority:1"`
	LocationKey string         `gorm:"size:96;not null;index:idx_feed_snapshot_lookup,priority:2"`
	Date        string         `gorm:"size:10;not null;index:idx_feed_snapshot_lookup,priority:3"`
	FetchedAt   time.Time      `gorm:"not null;index"`
	Payload     datatypes.JSON `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}
