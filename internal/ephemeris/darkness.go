package ephemeris

import (
	"encoding/json"
	"fmt"

	"deepsky/internal/astro"
)

// Darkness selects one of the four dusk-to-dawn intervals.
type Darkness int

const (
	Night Darkness = iota
	Civil
	Nautical
	Astronomical
)

var darknessKeys = map[Darkness]string{
	Night:        "night",
	Civil:        "civil",
	Nautical:     "nautical",
	Astronomical: "astronomical",
}

// Threshold is the solar altitude below which this level of darkness holds.
func (d Darkness) Threshold() float64 {
	switch d {
	case Civil:
		return astro.CivilAltitude
	case Nautical:
		return astro.NauticalAltitude
	case Astronomical:
		return astro.AstronomicalAltitude
	default:
		return astro.HorizonAltitude
	}
}

func (d Darkness) String() string {
	if key, ok := darknessKeys[d]; ok {
		return key
	}
	return fmt.Sprintf("Darkness(%d)", int(d))
}

func ParseDarkness(key string) (Darkness, error) {
	for d, k := range darknessKeys {
		if k == key {
			return d, nil
		}
	}
	return Night, fmt.Errorf("unknown darkness threshold %q", key)
}

func (d Darkness) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Darkness) UnmarshalJSON(data []byte) error {
	var key string
	if err := json.Unmarshal(data, &key); err != nil {
		return err
	}
	parsed, err := ParseDarkness(key)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
