package numeric

import (
	"fmt"
	"math"
)

// Place is a decimal digit position used by digit-wise number entry.
type Place int

const (
	Hundreds Place = iota
	Tens
	Ones
	Tenths
	Hundredths
)

var placeKeys = map[Place]string{
	Hundreds:   "hundreds",
	Tens:       "tens",
	Ones:       "ones",
	Tenths:     "tenths",
	Hundredths: "hundredths",
}

// unit is the weight of each place in hundredths.
var unit = map[Place]int64{
	Hundreds:   10000,
	Tens:       1000,
	Ones:       100,
	Tenths:     10,
	Hundredths: 1,
}

func (p Place) String() string {
	if key, ok := placeKeys[p]; ok {
		return key
	}
	return fmt.Sprintf("Place(%d)", int(p))
}

// ParsePlace maps a string key ("tens", "tenths", ...) to a Place.
func ParsePlace(key string) (Place, error) {
	for p, k := range placeKeys {
		if k == key {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown digit place %q", key)
}

// hundredths returns |v| as a whole number of hundredths. NaN and
// infinities read as zero so every place has a defined digit.
func hundredths(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Round(math.Abs(v) * 100))
}

// GetDigit returns the decimal digit of v at place.
func GetDigit(v float64, place Place) int {
	w, ok := unit[place]
	if !ok {
		return 0
	}
	return int(hundredths(v) / w % 10)
}

// SetDigit returns v with the digit at place replaced by d. The sign of v
// is kept; NaN is treated as zero. d is clamped to 0..9.
func SetDigit(v float64, place Place, d int) float64 {
	w, ok := unit[place]
	if !ok {
		return v
	}
	if d < 0 {
		d = 0
	}
	if d > 9 {
		d = 9
	}

	n := hundredths(v)
	cur := n / w % 10
	n += (int64(d) - cur) * w

	out := float64(n) / 100
	if v < 0 {
		out = -out
	}
	return out
}
