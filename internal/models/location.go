package models

import (
	"time"

	"deepsky/internal/astro"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SavedLocation struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Latitude  float64   `gorm:"not null" json:"latitude"`
	Longitude float64   `gorm:"not null" json:"longitude"`
	Timezone  string    `gorm:"size:64;not null" json:"timezone"`
	Elevation *float64  `json:"elevation,omitempty"`
	Bortle    *int      `json:"bortle,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (l *SavedLocation) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (l SavedLocation) ToLocation() astro.Location {
	loc := astro.Location{
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Timezone:  l.Timezone,
	}
	if l.Elevation != nil {
		loc.Elevation = *l.Elevation
	}
	if l.Bortle != nil {
		loc.Bortle = *l.Bortle
	}
	return loc
}
