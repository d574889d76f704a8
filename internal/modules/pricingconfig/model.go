// README: Versioned pricing configuration consumed by the calculators.
package pricingconfig

// PricingConfig is one immutable snapshot of every tunable rate, multiplier,
// and threshold. All fields are concrete; defaults are applied once at load
// time, never at the point of use.
type PricingConfig struct {
	Version string `json:"version"`

	BaseRates     BaseRates     `json:"baseRates"`
	VehicleValue  VehicleValue  `json:"vehicleValue"`
	Services      Services      `json:"services"`
	PaymentFees   PaymentFees   `json:"paymentFees"`
	Weather       Weather       `json:"weather"`
	Fuel          Fuel          `json:"fuel"`
	Traffic       Traffic       `json:"traffic"`
	Validation    Validation    `json:"validation"`
	Tolls         Tolls         `json:"tolls"`
	AutoShow      AutoShow      `json:"autoShow"`
	RoutePopular  RoutePopular  `json:"routePopularity"`
}

// RateRange is the configured $/mile band for one transport type. The live
// calculator quotes at Max; Min is retained so stored versions round-trip.
type RateRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type BaseRates struct {
	Open     RateRange `json:"open"`
	Enclosed RateRange `json:"enclosed"`
}

// VehicleValue holds the multiplier per declared-value tier.
type VehicleValue struct {
	Under100K float64 `json:"under100k"`
	Under300K float64 `json:"under300k"`
	Under500K float64 `json:"under500k"`
	Over500K  float64 `json:"over500k"`
}

// Services holds the share-of-base multiplier per optional service.
// SupplementaryInsurance is manager-priced and contributes zero automatically.
type Services struct {
	PremiumEnhancements    float64 `json:"premiumEnhancements"`
	SpecialLoad            float64 `json:"specialLoad"`
	Inoperable             float64 `json:"inoperable"`
	SupplementaryInsurance float64 `json:"supplementaryInsurance"`
}

type PaymentFees struct {
	CreditCard float64 `json:"creditCard"`
}

// Weather maps condition classes to multipliers.
type Weather struct {
	Rain   float64 `json:"rain"`
	Snow   float64 `json:"snow"`
	Storm  float64 `json:"storm"`
	Severe float64 `json:"severe"`
}

// Fuel holds the stepped price-trend multiplier table. Thresholds are
// period-over-period change ratios (0.05 = +5%).
type Fuel struct {
	SurgeHigh float64 `json:"surgeHigh"` // change > +15%
	SurgeMid  float64 `json:"surgeMid"`  // change > +10%
	SurgeLow  float64 `json:"surgeLow"`  // change > +5%
	DropHigh  float64 `json:"dropHigh"`  // change < -10%
	DropLow   float64 `json:"dropLow"`   // change < -5%
}

// Traffic maps the congestion ratio (duration in traffic / free flow) to a
// multiplier via two thresholds.
type Traffic struct {
	LightMax    float64 `json:"lightMax"`
	ModerateMax float64 `json:"moderateMax"`
	Light       float64 `json:"light"`
	Moderate    float64 `json:"moderate"`
	Heavy       float64 `json:"heavy"`
}

type Validation struct {
	MaxDistanceMiles   float64 `json:"maxDistanceMiles"`
	MinPriceThreshold  float64 `json:"minPriceThreshold"`
	ShortDistanceLimit float64 `json:"shortDistanceLimit"`
}

// Tolls holds every parameter of the toll estimation heuristic. The
// per-region maps are keyed by the toll region slug (see the tolls package).
type Tolls struct {
	BaseTollRate      float64            `json:"baseTollRate"`
	MinCostBase       float64            `json:"minCostBase"`
	MinCostMultiplier float64            `json:"minCostMultiplier"`
	MaxCostMultiplier float64            `json:"maxCostMultiplier"`
	RegionMultipliers map[string]float64 `json:"regionMultipliers"`
	RegionPortions    map[string]float64 `json:"regionPortions"`
	DistanceDiscounts DistanceDiscounts  `json:"distanceDiscounts"`
}

type DistanceDiscounts struct {
	Over1000Miles float64 `json:"over1000Miles"`
	Over2000Miles float64 `json:"over2000Miles"`
}

type AutoShow struct {
	SearchRadiusMiles float64 `json:"searchRadiusMiles"`
	DateWindowDays    int     `json:"dateWindowDays"`
	Multiplier        float64 `json:"multiplier"`
}

type RoutePopular struct {
	PopularFactor   float64 `json:"popularFactor"`
	UnpopularFactor float64 `json:"unpopularFactor"`
}
