package scoring

import (
	"slices"

	"deepsky/internal/catalog"
)

// Filter narrows a scored target list. Empty sets and nil bounds do not
// restrict anything; every non-empty criterion must pass.
type Filter struct {
	Catalogs       []catalog.DSOCatalog    `json:"catalogs,omitempty"`
	Constellations []catalog.Constellation `json:"constellations,omitempty"`
	Types          []catalog.DSOType       `json:"types,omitempty"`

	// Magnitude bounds. Brightest is the lower numeric bound.
	Brightest *float64 `json:"brightest,omitempty"`
	Dimmest   *float64 `json:"dimmest,omitempty"`

	// Major-axis size bounds in arcmin.
	MinSize *float64 `json:"min_size,omitempty"`
	MaxSize *float64 `json:"max_size,omitempty"`

	MinVisibility *float64 `json:"min_visibility,omitempty"`
	MinMeridian   *float64 `json:"min_meridian,omitempty"`

	Search string `json:"search,omitempty"`
}

// Match reports whether s passes every criterion.
func (f Filter) Match(s Scored) bool {
	t := s.Target

	if len(f.Catalogs) > 0 && !slices.ContainsFunc(f.Catalogs, t.InCatalog) {
		return false
	}
	if len(f.Constellations) > 0 && !slices.Contains(f.Constellations, t.Constellation) {
		return false
	}
	if len(f.Types) > 0 && !slices.ContainsFunc(f.Types, t.HasType) {
		return false
	}
	if !f.matchMagnitude(t.Magnitude) {
		return false
	}
	if !within(t.Size.Length, f.MinSize, f.MaxSize) {
		return false
	}
	if f.MinVisibility != nil && s.Visibility < *f.MinVisibility {
		return false
	}
	if f.MinMeridian != nil && s.Meridian < *f.MinMeridian {
		return false
	}
	return t.Matches(f.Search)
}

// An unknown magnitude counts as the faintest possible, so it only passes
// while the dimmest bound is open.
func (f Filter) matchMagnitude(mag *float64) bool {
	if mag == nil {
		return f.Dimmest == nil
	}
	return within(*mag, f.Brightest, f.Dimmest)
}

func within(v float64, lo, hi *float64) bool {
	if lo != nil && v < *lo {
		return false
	}
	if hi != nil && v > *hi {
		return false
	}
	return true
}

// Apply returns the targets that match f, in their original order.
func Apply(items []Scored, f Filter) []Scored {
	out := make([]Scored, 0, len(items))
	for _, s := range items {
		if f.Match(s) {
			out = append(out, s)
		}
	}
	return out
}
