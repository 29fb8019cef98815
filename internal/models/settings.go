package models

import (
	"time"

	"deepsky/internal/ephemeris"
	"deepsky/internal/settings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingsID - единственная строка таблицы настроек
const SettingsID = 1

type SettingsRecord struct {
	ID                uint       `gorm:"primaryKey;autoIncrement:false"`
	DarknessThreshold string     `gorm:"size:16;not null"`
	MaxAllowedMoon    float64    `gorm:"not null"`
	MinFOVCoverage    float64    `gorm:"not null"`
	MinVisibility     float64    `gorm:"not null"`
	PreferBroadband   bool       `gorm:"not null"`
	LimitingAltitude  float64    `gorm:"not null"`
	HideNeverRises    bool       `gorm:"not null"`
	SelectedPresetID  *uuid.UUID `gorm:"type:char(36)"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

func (SettingsRecord) TableName() string {
	return "settings"
}

func DefaultSettingsRecord() SettingsRecord {
	r := SettingsRecord{ID: SettingsID}
	r.Apply(settings.DefaultReportSettings(), settings.DefaultTargetSettings())
	return r
}

// Apply копирует настройки в запись
func (r *SettingsRecord) Apply(rs settings.ReportSettings, ts settings.TargetSettings) {
	r.DarknessThreshold = rs.DarknessThreshold.String()
	r.MaxAllowedMoon = rs.MaxAllowedMoon
	r.MinFOVCoverage = rs.MinFOVCoverage
	r.MinVisibility = rs.MinVisibility
	r.PreferBroadband = rs.PreferBroadband
	r.LimitingAltitude = ts.LimitingAltitude
	r.HideNeverRises = ts.HideNeverRises
}

// Report восстанавливает настройки отчёта. Неизвестный порог темноты
// заменяется значением по умолчанию.
func (r SettingsRecord) Report() settings.ReportSettings {
	darkness, err := ephemeris.ParseDarkness(r.DarknessThreshold)
	if err != nil {
		darkness = settings.DefaultReportSettings().DarknessThreshold
	}
	return settings.ReportSettings{
		DarknessThreshold: darkness,
		MaxAllowedMoon:    r.MaxAllowedMoon,
		MinFOVCoverage:    r.MinFOVCoverage,
		MinVisibility:     r.MinVisibility,
		PreferBroadband:   r.PreferBroadband,
	}
}

func (r SettingsRecord) Target() settings.TargetSettings {
	return settings.TargetSettings{
		LimitingAltitude: r.LimitingAltitude,
		HideNeverRises:   r.HideNeverRises,
	}
}

type ImagingPresetRecord struct {
	ID               uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name             string    `gorm:"size:64;not null;uniqueIndex" json:"name"`
	FocalLength      float64   `gorm:"not null" json:"focal_length"`
	PixelSize        float64   `gorm:"not null" json:"pixel_size"`
	ResolutionLength int       `gorm:"not null" json:"resolution_length"`
	ResolutionWidth  int       `gorm:"not null" json:"resolution_width"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ImagingPresetRecord) TableName() string {
	return "imaging_presets"
}

func (p *ImagingPresetRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func NewImagingPresetRecord(p settings.ImagingPreset) ImagingPresetRecord {
	return ImagingPresetRecord{
		Name:             p.Name,
		FocalLength:      p.FocalLength,
		PixelSize:        p.PixelSize,
		ResolutionLength: p.ResolutionLength,
		ResolutionWidth:  p.ResolutionWidth,
	}
}

func (p ImagingPresetRecord) ToPreset() settings.ImagingPreset {
	return settings.ImagingPreset{
		Name:             p.Name,
		FocalLength:      p.FocalLength,
		PixelSize:        p.PixelSize,
		ResolutionLength: p.ResolutionLength,
		ResolutionWidth:  p.ResolutionWidth,
	}
}
