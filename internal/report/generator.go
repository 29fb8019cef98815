package report

import (
	"time"

	"deepsky/internal/astro"
	"deepsky/internal/catalog"
	"deepsky/internal/ephemeris"
	"deepsky/internal/scoring"
	"deepsky/internal/settings"
)

const (
	TopOverall     = 5
	TopPerCategory = 10
)

// Input is everything a report is computed from.
type Input struct {
	Location astro.Location
	Date     time.Time
	Sun      ephemeris.SunData
	Moon     ephemeris.MoonData
	Settings settings.Snapshot
	Catalog  []catalog.DeepSkyTarget
	// GeneratedAt is stamped onto the report as is.
	GeneratedAt time.Time
}

// DailyReport is the ranked output for one night. It is never persisted.
type DailyReport struct {
	Location           astro.Location         `json:"location"`
	Date               string                 `json:"date"`
	Darkness           ephemeris.Darkness     `json:"darkness"`
	Interval           ephemeris.DateInterval `json:"interval"`
	Moon               ephemeris.MoonData     `json:"moon"`
	BroadbandPreferred bool                   `json:"broadband_preferred"`
	TopFive            []scoring.Scored       `json:"top_five"`
	TopTenNebulae      []scoring.Scored       `json:"top_ten_nebulae"`
	TopTenGalaxies     []scoring.Scored       `json:"top_ten_galaxies"`
	TopTenStarClusters []scoring.Scored       `json:"top_ten_star_clusters"`
	GeneratedAt        time.Time              `json:"generated_at"`
	Stale              bool                   `json:"stale"`
}

// Generate builds the daily report. It never fails: lists may be empty.
func Generate(in Input) DailyReport {
	rs := in.Settings.Report
	window := in.Sun.Interval(rs.DarknessThreshold)

	scored := scoring.Score(in.Catalog, in.Location, window, in.Settings.Target)
	candidates := make([]scoring.Scored, 0, len(scored))
	for _, s := range scored {
		if s.Visibility < rs.MinVisibility {
			continue
		}
		if in.Settings.Preset != nil && Coverage(s.Target, *in.Settings.Preset) < rs.MinFOVCoverage {
			continue
		}
		candidates = append(candidates, s)
	}
	scoring.Rank(candidates)

	preferBroadband := rs.PreferBroadband && in.Moon.Illuminated > rs.MaxAllowedMoon
	overall := candidates
	if preferBroadband {
		overall = keep(candidates, func(t catalog.DeepSkyTarget) bool { return t.IsBroadband() })
	}

	inCategory := func(c catalog.Category) []scoring.Scored {
		return top(keep(candidates, func(t catalog.DeepSkyTarget) bool { return t.InCategory(c) }), TopPerCategory)
	}

	return DailyReport{
		Location:           in.Location,
		Date:               in.Date.Format("2006-01-02"),
		Darkness:           rs.DarknessThreshold,
		Interval:           window,
		Moon:               in.Moon,
		BroadbandPreferred: preferBroadband,
		TopFive:            top(overall, TopOverall),
		TopTenNebulae:      inCategory(catalog.Nebulae),
		TopTenGalaxies:     inCategory(catalog.Galaxies),
		TopTenStarClusters: inCategory(catalog.StarClusters),
		GeneratedAt:        in.GeneratedAt,
	}
}

// Coverage is the fraction of the frame's long side spanned by the target.
func Coverage(t catalog.DeepSkyTarget, p settings.ImagingPreset) float64 {
	fov := p.FOVLength()
	if fov <= 0 {
		return 0
	}
	return t.Size.Length / fov
}

func keep(items []scoring.Scored, pred func(catalog.DeepSkyTarget) bool) []scoring.Scored {
	out := make([]scoring.Scored, 0, len(items))
	for _, s := range items {
		if pred(s.Target) {
			out = append(out, s)
		}
	}
	return out
}

func top(items []scoring.Scored, n int) []scoring.Scored {
	if len(items) > n {
		items = items[:n]
	}
	return append([]scoring.Scored{}, items...)
}
