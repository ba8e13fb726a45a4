package domain

// Subscription tiers priced by the level map.
const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

// TierPricing is the price and quota attached to one subscription tier.
type TierPricing struct {
	Price float64 `firestore:"price" json:"price"`
	Quota int64   `firestore:"quota" json:"quota"`
}

// LevelMap maps a subscription tier to its pricing.
type LevelMap map[string]TierPricing

// Tiers returns the fixed set of tiers a level map must cover.
func Tiers() []string {
	return []string{TierBronze, TierSilver, TierGold, TierPlatinum}
}

// Complete reports whether the map covers exactly the fixed tiers.
func (m LevelMap) Complete() bool {
	if len(m) != len(Tiers()) {
		return false
	}

	for _, tier := range Tiers() {
		if _, ok := m[tier]; !ok {
			return false
		}
	}

	return true
}

// Defaults are the tier and level assigned to newly created wineries.
type Defaults struct {
	Tier  string `firestore:"tier" json:"tier"`
	Level int64  `firestore:"level" json:"level"`
}

// Lists maps the public taxonomy key to its field on the system variables
// singleton. Every taxonomy is an independently settable list of strings.
var Lists = map[string]string{
	"wine-colours":             "wineColours",
	"wine-types":               "wineTypes",
	"bottle-sizes":             "wineBottleSizes",
	"aroma-profiles":           "aromaProfiles",
	"flavour-profiles":         "flavourProfiles",
	"sustainability-practices": "sustainabilityPractices",
	"irrigation-practices":     "irrigationPractices",
	"closure-types":            "closureTypes",
}
