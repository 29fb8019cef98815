package settings

import "deepsky/internal/ephemeris"

// ReportSettings tune the daily report.
type ReportSettings struct {
	DarknessThreshold ephemeris.Darkness `json:"darkness_threshold" validate:"gte=1,lte=3"`
	MaxAllowedMoon    float64            `json:"max_allowed_moon" validate:"gte=0,lte=1"`
	MinFOVCoverage    float64            `json:"min_fov_coverage" validate:"gte=0,lte=10"`
	MinVisibility     float64            `json:"min_visibility" validate:"gte=0,lte=1"`
	PreferBroadband   bool               `json:"prefer_broadband"`
}

// TargetSettings tune target scoring.
type TargetSettings struct {
	LimitingAltitude float64 `json:"limiting_altitude" validate:"gte=-10,lte=90"`
	HideNeverRises   bool    `json:"hide_never_rises"`
}

func DefaultReportSettings() ReportSettings {
	return ReportSettings{
		DarknessThreshold: ephemeris.Astronomical,
		MaxAllowedMoon:    0.2,
		MinFOVCoverage:    0.1,
		MinVisibility:     0.5,
		PreferBroadband:   true,
	}
}

func DefaultTargetSettings() TargetSettings {
	return TargetSettings{
		LimitingAltitude: 30,
		HideNeverRises:   true,
	}
}

// Snapshot is the settings state a computation runs against.
type Snapshot struct {
	Report ReportSettings `json:"report"`
	Target TargetSettings `json:"target"`
	Preset *ImagingPreset `json:"preset,omitempty"`
}
