package domain

// Coordinate is a geographic point for the winery headquarters.
type Coordinate struct {
	Lat float64 `firestore:"lat" json:"lat"`
	Lng float64 `firestore:"lng" json:"lng"`
}

// Representative is the winery's contact person.
type Representative struct {
	Name  string `firestore:"name" json:"name"`
	Email string `firestore:"email" json:"email"`
	Phone string `firestore:"phone" json:"phone"`
}

// GeneralInfo is the winery's business profile.
type GeneralInfo struct {
	Name                       string         `firestore:"name" json:"name"`
	FoundedOn                  string         `firestore:"foundedOn" json:"foundedOn"`
	Logo                       string         `firestore:"logo" json:"logo"`
	Collections                string         `firestore:"collections" json:"collections"`
	NoOfProducedWines          string         `firestore:"noOfProducedWines" json:"noOfProducedWines"`
	VineyardsSurface           string         `firestore:"vineyardsSurface" json:"vineyardsSurface"`
	NoOfBottlesProducedPerYear string         `firestore:"noOfBottlesProducedPerYear" json:"noOfBottlesProducedPerYear"`
	GrapeVarieties             string         `firestore:"grapeVarieties" json:"grapeVarieties"`
	LastUpdated                string         `firestore:"lastUpdated" json:"lastUpdated"`
	Certifications             []string       `firestore:"certifications" json:"certifications"`
	WineryHeadquarters         Coordinate     `firestore:"wineryHeadquarters" json:"wineryHeadquarters"`
	WineryRepresentative       Representative `firestore:"wineryRepresentative" json:"wineryRepresentative"`
}

// Winery is the per-tenant document, keyed by the owning account id.
type Winery struct {
	ID          string        `firestore:"-" json:"id"`
	Tier        string        `firestore:"tier" json:"tier"`
	Level       int64         `firestore:"level" json:"level"`
	GeneralInfo GeneralInfo   `firestore:"generalInfo" json:"generalInfo"`
	EULabels    []interface{} `firestore:"euLabels" json:"euLabels"`
	Wines       []interface{} `firestore:"wines" json:"wines"`
	Disabled    bool          `firestore:"disabled" json:"disabled"`
}

// NewWinery returns an empty winery document with the given subscription.
func NewWinery(tier string, level int64) *Winery {
	return &Winery{
		Tier:     tier,
		Level:    level,
		EULabels: []interface{}{},
		Wines:    []interface{}{},
		Disabled: false,
	}
}
