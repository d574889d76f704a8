// README: Toll cost estimation heuristic with regional apportionment.
package tolls

import (
	"math"

	"haulquote/internal/modules/pricingconfig"
)

// Segment is one named share of the estimated toll total.
type Segment struct {
	Location string  `json:"location"`
	Cost     float64 `json:"cost"`
	Details  string  `json:"details,omitempty"`
}

// Estimate is a full replacement toll figure for one route; segments always
// sum to Total.
type Estimate struct {
	Total    float64   `json:"total"`
	Segments []Segment `json:"segments"`
}

// Estimator derives a bounded toll total from distance and matched regions
// and apportions it into named segments.
type Estimator struct{}

func NewEstimator() *Estimator {
	return &Estimator{}
}

// EstimateTolls is best-effort: with no usable route data it returns a zero
// estimate rather than an error, so tolls never block a price calculation.
func (e *Estimator) EstimateTolls(distanceMiles float64, stateCodes []string, routeText string, cfg pricingconfig.Tolls) Estimate {
	if distanceMiles <= 0 {
		return Estimate{Total: 0, Segments: []Segment{}}
	}

	regions := Classify(stateCodes, routeText)

	// Compound the base rate by every matched region's multiplier. Routes
	// crossing more toll-heavy regions get proportionally higher estimates.
	rate := cfg.BaseTollRate
	for _, region := range regions {
		if m, ok := cfg.RegionMultipliers[string(region)]; ok && m > 0 {
			rate *= m
		}
	}

	// Long-haul discounts stack multiplicatively past each bracket.
	if distanceMiles > 1000 && cfg.DistanceDiscounts.Over1000Miles > 0 {
		rate *= cfg.DistanceDiscounts.Over1000Miles
	}
	if distanceMiles > 2000 && cfg.DistanceDiscounts.Over2000Miles > 0 {
		rate *= cfg.DistanceDiscounts.Over2000Miles
	}

	total := round2(distanceMiles * rate)

	lower := math.Max(cfg.MinCostBase, distanceMiles*cfg.MinCostMultiplier)
	upper := distanceMiles * cfg.MaxCostMultiplier
	if upper < lower {
		upper = lower
	}
	if total < lower {
		total = lower
	}
	if total > upper {
		total = upper
	}
	total = round2(total)

	return Estimate{
		Total:    total,
		Segments: apportion(total, regions, cfg),
	}
}

// apportion walks matched regions in the fixed enumeration order, carving
// each region's portion out of the remaining total. Portions apply to the
// shrinking remainder, not the original total; the remainder segment absorbs
// whatever is left, including rounding residue.
func apportion(total float64, regions []Region, cfg pricingconfig.Tolls) []Segment {
	segments := make([]Segment, 0, len(regions)+1)
	remaining := total

	for _, region := range regions {
		portion, ok := cfg.RegionPortions[string(region)]
		if !ok || portion <= 0 {
			continue
		}
		cost := round2(remaining * portion)
		if cost <= 0 {
			continue
		}
		segments = append(segments, Segment{
			Location: region.DisplayName() + " Region Tolls",
			Cost:     cost,
		})
		remaining = round2(remaining - cost)
	}

	if remaining > 0 {
		name := "General Toll Charges"
		if len(regions) > 0 {
			name = "Other Regional Toll Roads"
		}
		segments = append(segments, Segment{Location: name, Cost: remaining})
	}

	return segments
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
