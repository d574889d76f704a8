// README: Signal-to-multiplier mapping tables (weather, fuel, traffic, vehicle value).
package pricing

import (
	"strings"

	"haulquote/internal/modules/pricingconfig"
)

// WeatherMultiplier maps a provider condition text to a multiplier. Matching
// is keyword-based and checks the harshest classes first, so "Blizzard
// Conditions with Rain" resolves as severe, not rain.
func WeatherMultiplier(condition string, cfg pricingconfig.Weather) float64 {
	c := strings.ToLower(condition)
	switch {
	case c == "":
		return 1.0
	case strings.Contains(c, "blizzard") || strings.Contains(c, "hurricane"):
		return cfg.Severe
	case strings.Contains(c, "snow"):
		return cfg.Snow
	case strings.Contains(c, "storm") || strings.Contains(c, "thunder"):
		return cfg.Storm
	case strings.Contains(c, "rain") || strings.Contains(c, "drizzle"):
		return cfg.Rain
	default:
		return 1.0
	}
}

// WorstWeatherMultiplier returns the max multiplier across sampled points
// (pickup, midpoint, delivery); the worst conditions on the route win.
func WorstWeatherMultiplier(conditions []string, cfg pricingconfig.Weather) float64 {
	worst := 1.0
	for _, c := range conditions {
		if m := WeatherMultiplier(c, cfg); m > worst {
			worst = m
		}
	}
	return worst
}

// FuelMultiplier maps a period-over-period fuel price change ratio
// (0.05 = +5%) onto the stepped multiplier table.
func FuelMultiplier(change float64, cfg pricingconfig.Fuel) float64 {
	switch {
	case change > 0.15:
		return cfg.SurgeHigh
	case change > 0.10:
		return cfg.SurgeMid
	case change > 0.05:
		return cfg.SurgeLow
	case change < -0.10:
		return cfg.DropHigh
	case change < -0.05:
		return cfg.DropLow
	default:
		return 1.0
	}
}

// TrafficMultiplier maps the congestion ratio (duration in traffic over
// free-flow duration) to the configured light/moderate/heavy multiplier.
// A non-positive ratio means the signal is unavailable and stays neutral.
func TrafficMultiplier(congestionRatio float64, cfg pricingconfig.Traffic) float64 {
	switch {
	case congestionRatio <= 0:
		return 1.0
	case congestionRatio < cfg.LightMax:
		return cfg.Light
	case congestionRatio < cfg.ModerateMax:
		return cfg.Moderate
	default:
		return cfg.Heavy
	}
}

// VehicleMultiplier returns the multiplier for a declared-value tier.
// Unknown tiers price as the lowest tier.
func VehicleMultiplier(tier VehicleValueTier, cfg pricingconfig.VehicleValue) float64 {
	switch tier {
	case TierUnder300K:
		return cfg.Under300K
	case TierUnder500K:
		return cfg.Under500K
	case TierOver500K:
		return cfg.Over500K
	default:
		return cfg.Under100K
	}
}
