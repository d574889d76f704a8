package tolls

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"haulquote/internal/modules/pricingconfig"
)

func TestEstimateTolls_NortheastRoute(t *testing.T) {
	cfg := pricingconfig.Default().Tolls
	e := NewEstimator()

	// 500mi at 0.12 x 1.3 = 0.156/mi -> $78, clamped to the $75 upper
	// bound (500 x 0.15).
	got := e.EstimateTolls(500, []string{"NJ", "NY"}, "", cfg)

	assert.Equal(t, 75.0, got.Total)
	assert.Len(t, got.Segments, 2)
	assert.Equal(t, "Northeast Region Tolls", got.Segments[0].Location)
	assert.Equal(t, 26.25, got.Segments[0].Cost) // 75 x 0.35
	assert.Equal(t, "Other Regional Toll Roads", got.Segments[1].Location)
	assert.Equal(t, 48.75, got.Segments[1].Cost)
}

func TestEstimateTolls_NoRegionMatched(t *testing.T) {
	cfg := pricingconfig.Default().Tolls
	e := NewEstimator()

	got := e.EstimateTolls(800, nil, "", cfg)

	assert.Len(t, got.Segments, 1)
	assert.Equal(t, "General Toll Charges", got.Segments[0].Location)
	assert.Equal(t, got.Total, got.Segments[0].Cost)
}

func TestEstimateTolls_NoRouteData(t *testing.T) {
	cfg := pricingconfig.Default().Tolls
	e := NewEstimator()

	got := e.EstimateTolls(0, nil, "", cfg)
	assert.Equal(t, 0.0, got.Total)
	assert.Empty(t, got.Segments)

	got = e.EstimateTolls(-10, []string{"NJ"}, "", cfg)
	assert.Equal(t, 0.0, got.Total)
}

func TestEstimateTolls_ShortRouteFloor(t *testing.T) {
	cfg := pricingconfig.Default().Tolls
	e := NewEstimator()

	// 100mi: raw estimate 12 is below the $25 floor, and the floor exceeds
	// the distance-proportional ceiling, so the floor wins.
	got := e.EstimateTolls(100, nil, "", cfg)
	assert.Equal(t, 25.0, got.Total)
}

// Property: for any distance and region set, the total stays inside
// [max(minCostBase, d x minCostMultiplier), d x maxCostMultiplier] and the
// segments sum back to the total.
func TestEstimateTolls_BoundsAndSegmentSum(t *testing.T) {
	cfg := pricingconfig.Default().Tolls
	e := NewEstimator()

	distances := []float64{200, 500, 1200, 1800, 2600}
	routes := [][]string{
		nil,
		{"NJ"},
		{"NJ", "IL"},
		{"NJ", "MA", "MD", "IL", "FL", "TX", "CO", "KS", "CA", "LA"},
		{"TX", "LA"},
	}

	for _, d := range distances {
		for _, states := range routes {
			got := e.EstimateTolls(d, states, "", cfg)

			lower := math.Max(cfg.MinCostBase, d*cfg.MinCostMultiplier)
			upper := d * cfg.MaxCostMultiplier

			assert.GreaterOrEqual(t, got.Total, lower, "d=%v states=%v", d, states)
			assert.LessOrEqual(t, got.Total, upper, "d=%v states=%v", d, states)

			var sum float64
			for _, seg := range got.Segments {
				sum += seg.Cost
			}
			assert.InDelta(t, got.Total, sum, 0.01*float64(len(got.Segments)),
				"segments must sum to total, d=%v states=%v", d, states)
		}
	}
}

func TestEstimateTolls_DistanceDiscountsStack(t *testing.T) {
	cfg := pricingconfig.Default().Tolls
	// Widen the bounds so clamping does not mask the rate arithmetic.
	cfg.MaxCostMultiplier = 10
	e := NewEstimator()

	short := e.EstimateTolls(900, nil, "", cfg)
	mid := e.EstimateTolls(1800, nil, "", cfg)
	long := e.EstimateTolls(2600, nil, "", cfg)

	assert.Equal(t, round2(900*cfg.BaseTollRate), short.Total)
	assert.Equal(t, round2(1800*cfg.BaseTollRate*0.9), mid.Total)
	assert.Equal(t, round2(2600*cfg.BaseTollRate*0.9*0.85), long.Total)
}

// Apportionment walks regions in the fixed enumeration order against a
// shrinking remainder, so each later region's share is a fraction of what
// is left, not of the original total.
func TestEstimateTolls_SequentialApportionment(t *testing.T) {
	cfg := pricingconfig.Default().Tolls
	e := NewEstimator()

	got := e.EstimateTolls(1500, []string{"NJ", "IL"}, "", cfg)

	assert.Len(t, got.Segments, 3)
	assert.Equal(t, "Northeast Region Tolls", got.Segments[0].Location)
	assert.Equal(t, "Great Lakes Region Tolls", got.Segments[1].Location)
	assert.Equal(t, "Other Regional Toll Roads", got.Segments[2].Location)

	first := round2(got.Total * cfg.RegionPortions["northeast"])
	assert.Equal(t, first, got.Segments[0].Cost)

	second := round2(round2(got.Total-first) * cfg.RegionPortions["greatLakes"])
	assert.Equal(t, second, got.Segments[1].Cost)
}
