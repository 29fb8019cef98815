package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"deepsky/internal/astro"
)

// Size is an angular extent in arcminutes.
type Size struct {
	Length float64 `json:"length"` // major axis
	Width  float64 `json:"width"`
}

// DeepSkyTarget is an immutable catalog entry.
type DeepSkyTarget struct {
	ID              string        `json:"id"`
	Names           []string      `json:"names"`
	Designations    []Designation `json:"designations"`
	SubDesignations []Designation `json:"sub_designations,omitempty"`
	RA              float64       `json:"ra"`  // degrees
	Dec             float64       `json:"dec"` // degrees
	Size            Size          `json:"size"`
	Magnitude       *float64      `json:"magnitude,omitempty"`
	Types           []DSOType     `json:"types"`
	Constellation   Constellation `json:"constellation"`
}

// Name returns the primary display name.
func (t DeepSkyTarget) Name() string {
	if len(t.Names) > 0 {
		return t.Names[0]
	}
	if len(t.Designations) > 0 {
		return t.Designations[0].String()
	}
	return t.ID
}

func (t DeepSkyTarget) Position() astro.Equatorial {
	return astro.Equatorial{RA: t.RA, Dec: t.Dec}
}

// InCatalog reports whether any designation or sub-designation belongs to c.
func (t DeepSkyTarget) InCatalog(c DSOCatalog) bool {
	for _, d := range t.Designations {
		if d.Catalog == c {
			return true
		}
	}
	for _, d := range t.SubDesignations {
		if d.Catalog == c {
			return true
		}
	}
	return false
}

func (t DeepSkyTarget) HasType(typ DSOType) bool {
	for _, own := range t.Types {
		if own == typ {
			return true
		}
	}
	return false
}

// InCategory reports whether any of the target's types maps onto c.
func (t DeepSkyTarget) InCategory(c Category) bool {
	for _, typ := range t.Types {
		if typ.Category() == c {
			return true
		}
	}
	return false
}

// IsBroadband reports whether at least one type is a broadband type.
func (t DeepSkyTarget) IsBroadband() bool {
	for _, typ := range t.Types {
		if typ.IsBroadband() {
			return true
		}
	}
	return false
}

// Matches does a case-insensitive substring search over names and
// designations. "m 31", "M31" and "andromeda" all find M31.
func (t DeepSkyTarget) Matches(query string) bool {
	q := normalizeSearch(query)
	if q == "" {
		return true
	}
	for _, name := range t.Names {
		if strings.Contains(normalizeSearch(name), q) {
			return true
		}
	}
	for _, list := range [][]Designation{t.Designations, t.SubDesignations} {
		for _, d := range list {
			if strings.Contains(normalizeSearch(d.String()), q) {
				return true
			}
		}
	}
	return false
}

func normalizeSearch(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

func (t DeepSkyTarget) validate() error {
	switch {
	case t.ID == "":
		return fmt.Errorf("target without id")
	case len(t.Names) == 0:
		return fmt.Errorf("target %s: no names", t.ID)
	case len(t.Designations) == 0:
		return fmt.Errorf("target %s: no designations", t.ID)
	case len(t.Types) == 0:
		return fmt.Errorf("target %s: no types", t.ID)
	case t.RA < 0 || t.RA >= 360:
		return fmt.Errorf("target %s: ra %.3f out of range", t.ID, t.RA)
	case t.Dec < -90 || t.Dec > 90:
		return fmt.Errorf("target %s: dec %.3f out of range", t.ID, t.Dec)
	}
	return nil
}

//go:embed data/targets.json
var bundled []byte

// Parse decodes and validates a JSON target list.
func Parse(data []byte) ([]DeepSkyTarget, error) {
	var targets []DeepSkyTarget
	if err := json.Unmarshal(data, &targets); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	seen := make(map[string]bool, len(targets))
	for _, t := range targets {
		if err := t.validate(); err != nil {
			return nil, err
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("duplicate target id %s", t.ID)
		}
		seen[t.ID] = true
	}
	return targets, nil
}

// Default returns the bundled catalog. It is decoded once.
var Default = sync.OnceValues(func() ([]DeepSkyTarget, error) {
	return Parse(bundled)
})
