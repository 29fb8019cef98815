package catalog

// Constellation is one of the 88 IAU constellations.
type Constellation int

const (
	Andromeda Constellation = iota
	Antlia
	Apus
	Aquarius
	Aquila
	Ara
	Aries
	Auriga
	Bootes
	Caelum
	Camelopardalis
	Cancer
	CanesVenatici
	CanisMajor
	CanisMinor
	Capricornus
	Carina
	Cassiopeia
	Centaurus
	Cepheus
	Cetus
	Chamaeleon
	Circinus
	Columba
	ComaBerenices
	CoronaAustralis
	CoronaBorealis
	Corvus
	Crater
	Crux
	Cygnus
	Delphinus
	Dorado
	Draco
	Equuleus
	Eridanus
	Fornax
	Gemini
	Grus
	Hercules
	Horologium
	Hydra
	Hydrus
	Indus
	Lacerta
	Leo
	LeoMinor
	Lepus
	Libra
	Lupus
	Lynx
	Lyra
	Mensa
	Microscopium
	Monoceros
	Musca
	Norma
	Octans
	Ophiuchus
	Orion
	Pavo
	Pegasus
	Perseus
	Phoenix
	Pictor
	Pisces
	PiscisAustrinus
	Puppis
	Pyxis
	Reticulum
	Sagitta
	Sagittarius
	Scorpius
	Sculptor
	Scutum
	Serpens
	Sextans
	Taurus
	Telescopium
	Triangulum
	TriangulumAustrale
	Tucana
	UrsaMajor
	UrsaMinor
	Vela
	Virgo
	Volans
	Vulpecula
)

var constellationTable = enumTable[Constellation]{
	Andromeda:          {key: "andromeda", name: "Andromeda"},
	Antlia:             {key: "antlia", name: "Antlia"},
	Apus:               {key: "apus", name: "Apus"},
	Aquarius:           {key: "aquarius", name: "Aquarius"},
	Aquila:             {key: "aquila", name: "Aquila"},
	Ara:                {key: "ara", name: "Ara"},
	Aries:              {key: "aries", name: "Aries"},
	Auriga:             {key: "auriga", name: "Auriga"},
	Bootes:             {key: "bootes", name: "Boötes"},
	Caelum:             {key: "caelum", name: "Caelum"},
	Camelopardalis:     {key: "camelopardalis", name: "Camelopardalis"},
	Cancer:             {key: "cancer", name: "Cancer"},
	CanesVenatici:      {key: "canes_venatici", name: "Canes Venatici"},
	CanisMajor:         {key: "canis_major", name: "Canis Major"},
	CanisMinor:         {key: "canis_minor", name: "Canis Minor"},
	Capricornus:        {key: "capricornus", name: "Capricornus"},
	Carina:             {key: "carina", name: "Carina"},
	Cassiopeia:         {key: "cassiopeia", name: "Cassiopeia"},
	Centaurus:          {key: "centaurus", name: "Centaurus"},
	Cepheus:            {key: "cepheus", name: "Cepheus"},
	Cetus:              {key: "cetus", name: "Cetus"},
	Chamaeleon:         {key: "chamaeleon", name: "Chamaeleon"},
	Circinus:           {key: "circinus", name: "Circinus"},
	Columba:            {key: "columba", name: "Columba"},
	ComaBerenices:      {key: "coma_berenices", name: "Coma Berenices"},
	CoronaAustralis:    {key: "corona_australis", name: "Corona Australis"},
	CoronaBorealis:     {key: "corona_borealis", name: "Corona Borealis"},
	Corvus:             {key: "corvus", name: "Corvus"},
	Crater:             {key: "crater", name: "Crater"},
	Crux:               {key: "crux", name: "Crux"},
	Cygnus:             {key: "cygnus", name: "Cygnus"},
	Delphinus:          {key: "delphinus", name: "Delphinus"},
	Dorado:             {key: "dorado", name: "Dorado"},
	Draco:              {key: "draco", name: "Draco"},
	Equuleus:           {key: "equuleus", name: "Equuleus"},
	Eridanus:           {key: "eridanus", name: "Eridanus"},
	Fornax:             {key: "fornax", name: "Fornax"},
	Gemini:             {key: "gemini", name: "Gemini"},
	Grus:               {key: "grus", name: "Grus"},
	Hercules:           {key: "hercules", name: "Hercules"},
	Horologium:         {key: "horologium", name: "Horologium"},
	Hydra:              {key: "hydra", name: "Hydra"},
	Hydrus:             {key: "hydrus", name: "Hydrus"},
	Indus:              {key: "indus", name: "Indus"},
	Lacerta:            {key: "lacerta", name: "Lacerta"},
	Leo:                {key: "leo", name: "Leo"},
	LeoMinor:           {key: "leo_minor", name: "Leo Minor"},
	Lepus:              {key: "lepus", name: "Lepus"},
	Libra:              {key: "libra", name: "Libra"},
	Lupus:              {key: "lupus", name: "Lupus"},
	Lynx:               {key: "lynx", name: "Lynx"},
	Lyra:               {key: "lyra", name: "Lyra"},
	Mensa:              {key: "mensa", name: "Mensa"},
	Microscopium:       {key: "microscopium", name: "Microscopium"},
	Monoceros:          {key: "monoceros", name: "Monoceros"},
	Musca:              {key: "musca", name: "Musca"},
	Norma:              {key: "norma", name: "Norma"},
	Octans:             {key: "octans", name: "Octans"},
	Ophiuchus:          {key: "ophiuchus", name: "Ophiuchus"},
	Orion:              {key: "orion", name: "Orion"},
	Pavo:               {key: "pavo", name: "Pavo"},
	Pegasus:            {key: "pegasus", name: "Pegasus"},
	Perseus:            {key: "perseus", name: "Perseus"},
	Phoenix:            {key: "phoenix", name: "Phoenix"},
	Pictor:             {key: "pictor", name: "Pictor"},
	Pisces:             {key: "pisces", name: "Pisces"},
	PiscisAustrinus:    {key: "piscis_austrinus", name: "Piscis Austrinus"},
	Puppis:             {key: "puppis", name: "Puppis"},
	Pyxis:              {key: "pyxis", name: "Pyxis"},
	Reticulum:          {key: "reticulum", name: "Reticulum"},
	Sagitta:            {key: "sagitta", name: "Sagitta"},
	Sagittarius:        {key: "sagittarius", name: "Sagittarius"},
	Scorpius:           {key: "scorpius", name: "Scorpius"},
	Sculptor:           {key: "sculptor", name: "Sculptor"},
	Scutum:             {key: "scutum", name: "Scutum"},
	Serpens:            {key: "serpens", name: "Serpens"},
	Sextans:            {key: "sextans", name: "Sextans"},
	Taurus:             {key: "taurus", name: "Taurus"},
	Telescopium:        {key: "telescopium", name: "Telescopium"},
	Triangulum:         {key: "triangulum", name: "Triangulum"},
	TriangulumAustrale: {key: "triangulum_australe", name: "Triangulum Australe"},
	Tucana:             {key: "tucana", name: "Tucana"},
	UrsaMajor:          {key: "ursa_major", name: "Ursa Major"},
	UrsaMinor:          {key: "ursa_minor", name: "Ursa Minor"},
	Vela:               {key: "vela", name: "Vela"},
	Virgo:              {key: "virgo", name: "Virgo"},
	Volans:             {key: "volans", name: "Volans"},
	Vulpecula:          {key: "vulpecula", name: "Vulpecula"},
}

func (c Constellation) Key() string { return constellationTable.key(c) }
func (c Constellation) String() string { return constellationTable.name(c) }

func ParseConstellation(key string) (Constellation, error) {
	return constellationTable.parse("constellation", key)
}

func (c Constellation) MarshalJSON() ([]byte, error) {
	return constellationTable.marshal(c)
}

func (c *Constellation) UnmarshalJSON(data []byte) error {
	return constellationTable.unmarshal("constellation", data, c)
}

// Constellations lists every constellation in declaration order.
func Constellations() []Constellation {
	return constellationTable.values()
}
