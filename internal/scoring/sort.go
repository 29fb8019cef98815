package scoring

import (
	"cmp"
	"fmt"
	"slices"
)

// SortKey selects the value a target list is ordered by.
type SortKey int

const (
	ByVisibility SortKey = iota
	ByMeridian
	ByDeclination
	ByRightAscension
)

var sortKeys = map[SortKey]string{
	ByVisibility:     "visibility",
	ByMeridian:       "meridian",
	ByDeclination:    "dec",
	ByRightAscension: "ra",
}

func (k SortKey) String() string {
	if s, ok := sortKeys[k]; ok {
		return s
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

func ParseSortKey(s string) (SortKey, error) {
	for k, v := range sortKeys {
		if v == s {
			return k, nil
		}
	}
	return ByVisibility, fmt.Errorf("unknown sort key %q", s)
}

func (k SortKey) value(s Scored) float64 {
	switch k {
	case ByMeridian:
		return s.Meridian
	case ByDeclination:
		return s.Target.Dec
	case ByRightAscension:
		return s.Target.RA
	default:
		return s.Visibility
	}
}

// Sort orders items in place. Equal values keep their input order.
func Sort(items []Scored, key SortKey, ascending bool) {
	slices.SortStableFunc(items, func(a, b Scored) int {
		c := cmp.Compare(key.value(a), key.value(b))
		if !ascending {
			c = -c
		}
		return c
	})
}

// Rank orders by visibility, then meridian, both descending.
func Rank(items []Scored) {
	slices.SortStableFunc(items, func(a, b Scored) int {
		if c := cmp.Compare(b.Visibility, a.Visibility); c != 0 {
			return c
		}
		return cmp.Compare(b.Meridian, a.Meridian)
	})
}
