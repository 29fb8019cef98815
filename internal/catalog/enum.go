package catalog

import (
	"encoding/json"
	"fmt"
	"slices"
)

type enumEntry struct {
	key  string // stable serialisation key
	name string // display name
}

// enumTable maps enum values to their string keys. Keys, not Go
// identifiers, are what appear in JSON.
type enumTable[E ~int] map[E]enumEntry

func (t enumTable[E]) key(v E) string {
	if e, ok := t[v]; ok {
		return e.key
	}
	return fmt.Sprintf("unknown(%d)", int(v))
}

func (t enumTable[E]) name(v E) string {
	if e, ok := t[v]; ok {
		return e.name
	}
	return fmt.Sprintf("Unknown(%d)", int(v))
}

func (t enumTable[E]) parse(kind, key string) (E, error) {
	for v, e := range t {
		if e.key == key {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, key)
}

func (t enumTable[E]) marshal(v E) ([]byte, error) {
	e, ok := t[v]
	if !ok {
		return nil, fmt.Errorf("cannot marshal enum value %d", int(v))
	}
	return json.Marshal(e.key)
}

func (t enumTable[E]) unmarshal(kind string, data []byte, dst *E) error {
	var key string
	if err := json.Unmarshal(data, &key); err != nil {
		return fmt.Errorf("decode %s: %w", kind, err)
	}
	v, err := t.parse(kind, key)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func (t enumTable[E]) values() []E {
	out := make([]E, 0, len(t))
	for v := range t {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
