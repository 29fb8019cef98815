package catalog

// DSOType tags what kind of deep-sky object a target is.
type DSOType int

const (
	EmissionNebula DSOType = iota
	ReflectionNebula
	DarkNebula
	PlanetaryNebula
	SupernovaRemnant
	HIIRegion
	Galaxy
	GalaxyGroup
	OpenCluster
	GlobularCluster
	StarCloud
)

var typeTable = enumTable[DSOType]{
	EmissionNebula:   {key: "emission_nebula", name: "Emission Nebula"},
	ReflectionNebula: {key: "reflection_nebula", name: "Reflection Nebula"},
	DarkNebula:       {key: "dark_nebula", name: "Dark Nebula"},
	PlanetaryNebula:  {key: "planetary_nebula", name: "Planetary Nebula"},
	SupernovaRemnant: {key: "supernova_remnant", name: "Supernova Remnant"},
	HIIRegion:        {key: "hii_region", name: "H II Region"},
	Galaxy:           {key: "galaxy", name: "Galaxy"},
	GalaxyGroup:      {key: "galaxy_group", name: "Galaxy Group"},
	OpenCluster:      {key: "open_cluster", name: "Open Cluster"},
	GlobularCluster:  {key: "globular_cluster", name: "Globular Cluster"},
	StarCloud:        {key: "star_cloud", name: "Star Cloud"},
}

// Category is the coarse grouping used by the daily report.
type Category int

const (
	Nebulae Category = iota
	Galaxies
	StarClusters
)

func (c Category) String() string {
	switch c {
	case Nebulae:
		return "nebulae"
	case Galaxies:
		return "galaxies"
	case StarClusters:
		return "star_clusters"
	}
	return "unknown"
}

func (t DSOType) Key() string    { return typeTable.key(t) }
func (t DSOType) String() string { return typeTable.name(t) }

func ParseDSOType(key string) (DSOType, error) {
	return typeTable.parse("type", key)
}

func (t DSOType) MarshalJSON() ([]byte, error) {
	return typeTable.marshal(t)
}

func (t *DSOType) UnmarshalJSON(data []byte) error {
	return typeTable.unmarshal("type", data, t)
}

// Category maps the type onto its coarse report category.
func (t DSOType) Category() Category {
	switch t {
	case Galaxy, GalaxyGroup:
		return Galaxies
	case OpenCluster, GlobularCluster, StarCloud:
		return StarClusters
	default:
		return Nebulae
	}
}

// IsBroadband reports whether the type images well through broadband
// filters. Narrowband types tolerate moonlight.
func (t DSOType) IsBroadband() bool {
	switch t {
	case Galaxy, DarkNebula, GalaxyGroup, ReflectionNebula, PlanetaryNebula:
		return true
	}
	return false
}

func DSOTypes() []DSOType {
	return typeTable.values()
}
