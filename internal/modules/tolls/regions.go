// README: Toll region definitions and route classification.
package tolls

import "strings"

// Region identifies one named toll region. The values double as the keys of
// the per-region multiplier/portion maps in the pricing config.
type Region string

const (
	RegionNortheast    Region = "northeast"
	RegionNewEngland   Region = "newEngland"
	RegionMidAtlantic  Region = "midAtlantic"
	RegionGreatLakes   Region = "greatLakes"
	RegionSoutheast    Region = "southeast"
	RegionTexas        Region = "texas"
	RegionMountainWest Region = "mountainWest"
	RegionGreatPlains  Region = "greatPlains"
	RegionPacificCoast Region = "pacificCoast"
	RegionLouisiana    Region = "louisiana"
)

// regionOrder is the fixed enumeration order. Apportionment walks regions in
// this order against a shrinking remainder, so the order is part of the
// contract, not a presentation detail.
var regionOrder = []Region{
	RegionNortheast,
	RegionNewEngland,
	RegionMidAtlantic,
	RegionGreatLakes,
	RegionSoutheast,
	RegionTexas,
	RegionMountainWest,
	RegionGreatPlains,
	RegionPacificCoast,
	RegionLouisiana,
}

var regionDisplayNames = map[Region]string{
	RegionNortheast:    "Northeast",
	RegionNewEngland:   "New England",
	RegionMidAtlantic:  "Mid-Atlantic",
	RegionGreatLakes:   "Great Lakes",
	RegionSoutheast:    "Southeast",
	RegionTexas:        "Texas",
	RegionMountainWest: "Mountain West",
	RegionGreatPlains:  "Great Plains",
	RegionPacificCoast: "Pacific Coast",
	RegionLouisiana:    "Louisiana",
}

// DisplayName returns the human-readable region name used in segment labels.
func (r Region) DisplayName() string {
	return regionDisplayNames[r]
}

var regionStates = map[Region][]string{
	RegionNortheast:    {"NY", "NJ", "PA"},
	RegionNewEngland:   {"ME", "NH", "VT", "MA", "RI", "CT"},
	RegionMidAtlantic:  {"MD", "DE", "VA", "WV", "DC"},
	RegionGreatLakes:   {"OH", "MI", "IN", "IL", "WI", "MN"},
	RegionSoutheast:    {"FL", "GA", "SC", "NC", "TN", "AL", "MS", "AR", "KY"},
	RegionTexas:        {"TX", "OK"},
	RegionMountainWest: {"CO", "UT", "NV", "ID", "MT", "WY", "AZ", "NM"},
	RegionGreatPlains:  {"KS", "NE", "SD", "ND", "IA", "MO"},
	RegionPacificCoast: {"CA", "OR", "WA"},
	RegionLouisiana:    {"LA"},
}

// regionKeywords matches free-text route descriptions (turn-by-turn steps,
// road names) when no structured state list is available. Lower-case.
var regionKeywords = map[Region][]string{
	RegionNortheast:    {"new york", "new jersey", "pennsylvania", "garden state parkway", "jersey turnpike", "pennsylvania turnpike"},
	RegionNewEngland:   {"massachusetts", "maine", "new hampshire", "vermont", "rhode island", "connecticut", "mass pike", "massachusetts turnpike"},
	RegionMidAtlantic:  {"maryland", "delaware", "virginia", "west virginia", "washington, dc", "chesapeake"},
	RegionGreatLakes:   {"ohio", "michigan", "indiana", "illinois", "wisconsin", "minnesota", "ohio turnpike", "indiana toll road", "chicago skyway"},
	RegionSoutheast:    {"florida", "georgia", "south carolina", "north carolina", "tennessee", "alabama", "mississippi", "arkansas", "kentucky", "florida turnpike"},
	RegionTexas:        {"texas", "oklahoma", "sam houston tollway", "dallas north tollway"},
	RegionMountainWest: {"colorado", "utah", "nevada", "idaho", "montana", "wyoming", "arizona", "new mexico"},
	RegionGreatPlains:  {"kansas", "nebraska", "south dakota", "north dakota", "iowa", "missouri", "kansas turnpike"},
	RegionPacificCoast: {"california", "oregon", "washington state", "golden gate", "bay bridge"},
	RegionLouisiana:    {"louisiana", "pontchartrain"},
}

// Classify returns the toll regions a route touches, in the fixed
// enumeration order. Regions are not mutually exclusive: a route crossing
// New Jersey and Illinois matches both Northeast and Great Lakes. Both the
// state-code list and the free-text route description are consulted; either
// may be empty.
func Classify(stateCodes []string, routeText string) []Region {
	states := make(map[string]bool, len(stateCodes))
	for _, s := range stateCodes {
		states[strings.ToUpper(strings.TrimSpace(s))] = true
	}
	text := strings.ToLower(routeText)

	var matched []Region
	for _, region := range regionOrder {
		if matchesStates(region, states) || matchesText(region, text) {
			matched = append(matched, region)
		}
	}
	return matched
}

func matchesStates(region Region, states map[string]bool) bool {
	for _, code := range regionStates[region] {
		if states[code] {
			return true
		}
	}
	return false
}

func matchesText(region Region, text string) bool {
	if text == "" {
		return false
	}
	for _, kw := range regionKeywords[region] {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
