package pricingconfig

// Default returns the compiled-in fallback configuration used whenever the
// remote store is unreachable. Values mirror the last reviewed published
// version.
func Default() PricingConfig {
	return PricingConfig{
		Version: "default-2025.4",
		BaseRates: BaseRates{
			Open:     RateRange{Min: 0.62, Max: 0.93},
			Enclosed: RateRange{Min: 0.88, Max: 1.29},
		},
		VehicleValue: VehicleValue{
			Under100K: 1.0,
			Under300K: 1.05,
			Under500K: 1.10,
			Over500K:  1.15,
		},
		Services: Services{
			PremiumEnhancements:    0.30,
			SpecialLoad:            0.30,
			Inoperable:             0.30,
			SupplementaryInsurance: 0,
		},
		PaymentFees: PaymentFees{CreditCard: 0.03},
		Weather: Weather{
			Rain:   1.05,
			Snow:   1.20,
			Storm:  1.15,
			Severe: 1.20,
		},
		Fuel: Fuel{
			SurgeHigh: 1.25,
			SurgeMid:  1.15,
			SurgeLow:  1.10,
			DropHigh:  0.90,
			DropLow:   0.95,
		},
		Traffic: Traffic{
			LightMax:    1.3,
			ModerateMax: 1.6,
			Light:       1.0,
			Moderate:    1.1,
			Heavy:       1.2,
		},
		Validation: Validation{
			MaxDistanceMiles:   3500,
			MinPriceThreshold:  600,
			ShortDistanceLimit: 300,
		},
		Tolls: Tolls{
			BaseTollRate:      0.12,
			MinCostBase:       25,
			MinCostMultiplier: 0.02,
			MaxCostMultiplier: 0.15,
			RegionMultipliers: map[string]float64{
				"northeast":    1.30,
				"newEngland":   1.20,
				"midAtlantic":  1.15,
				"greatLakes":   1.20,
				"southeast":    1.10,
				"texas":        1.15,
				"mountainWest": 1.05,
				"greatPlains":  1.05,
				"pacificCoast": 1.10,
				"louisiana":    1.10,
			},
			RegionPortions: map[string]float64{
				"northeast":    0.35,
				"newEngland":   0.25,
				"midAtlantic":  0.25,
				"greatLakes":   0.30,
				"southeast":    0.25,
				"texas":        0.30,
				"mountainWest": 0.20,
				"greatPlains":  0.15,
				"pacificCoast": 0.25,
				"louisiana":    0.20,
			},
			DistanceDiscounts: DistanceDiscounts{
				Over1000Miles: 0.90,
				Over2000Miles: 0.85,
			},
		},
		AutoShow: AutoShow{
			SearchRadiusMiles: 50,
			DateWindowDays:    7,
			Multiplier:        1.10,
		},
		RoutePopular: RoutePopular{
			PopularFactor:   0.95,
			UnpopularFactor: 1.05,
		},
	}
}
