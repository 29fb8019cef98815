package catalog

import "fmt"

// DSOCatalog is a published catalogue of deep-sky objects.
type DSOCatalog int

const (
	Messier DSOCatalog = iota
	NGC
	IC
	Caldwell
	Sharpless
	Barnard
	LBN
	LDN
	Collinder
	Melotte
	Abell
	Arp
	Hickson
	VdB
)

var catalogTable = enumTable[DSOCatalog]{
	Messier:   {key: "messier", name: "M"},
	NGC:       {key: "ngc", name: "NGC"},
	IC:        {key: "ic", name: "IC"},
	Caldwell:  {key: "caldwell", name: "C"},
	Sharpless: {key: "sharpless", name: "Sh2-"},
	Barnard:   {key: "barnard", name: "B"},
	LBN:       {key: "lbn", name: "LBN"},
	LDN:       {key: "ldn", name: "LDN"},
	Collinder: {key: "collinder", name: "Cr"},
	Melotte:   {key: "melotte", name: "Mel"},
	Abell:     {key: "abell", name: "Abell"},
	Arp:       {key: "arp", name: "Arp"},
	Hickson:   {key: "hickson", name: "HCG"},
	VdB:       {key: "vdb", name: "vdB"},
}

func (c DSOCatalog) Key() string    { return catalogTable.key(c) }
func (c DSOCatalog) String() string { return catalogTable.name(c) }

func ParseDSOCatalog(key string) (DSOCatalog, error) {
	return catalogTable.parse("catalog", key)
}

func (c DSOCatalog) MarshalJSON() ([]byte, error) {
	return catalogTable.marshal(c)
}

func (c *DSOCatalog) UnmarshalJSON(data []byte) error {
	return catalogTable.unmarshal("catalog", data, c)
}

func DSOCatalogs() []DSOCatalog {
	return catalogTable.values()
}

// Designation identifies a target within one catalogue, e.g. M31.
type Designation struct {
	Catalog DSOCatalog `json:"catalog"`
	Number  int        `json:"number"`
}

func (d Designation) String() string {
	switch d.Catalog {
	case Messier, Caldwell, Sharpless, Barnard:
		return fmt.Sprintf("%s%d", d.Catalog, d.Number)
	default:
		return fmt.Sprintf("%s %d", d.Catalog, d.Number)
	}
}
