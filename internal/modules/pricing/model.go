// README: Price breakdown types and calculation inputs.
package pricing

import "haulquote/internal/modules/tolls"

type TransportType string

const (
	TransportOpen     TransportType = "open"
	TransportEnclosed TransportType = "enclosed"
)

// VehicleValueTier is the declared-value bracket of the shipped vehicle.
type VehicleValueTier string

const (
	TierUnder100K VehicleValueTier = "under100k"
	TierUnder300K VehicleValueTier = "under300k"
	TierUnder500K VehicleValueTier = "under500k"
	TierOver500K  VehicleValueTier = "over500k"
)

// RequiresPremium reports whether this value tier forces premium
// enhancements on. High-value vehicles always get premium handling; the
// flag arrives forced-true from the UI but the composer enforces it
// regardless of source.
func (t VehicleValueTier) RequiresPremium() bool {
	return t == TierUnder500K || t == TierOver500K
}

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "creditCard"
	PaymentCash       PaymentMethod = "cash"
	PaymentZelle      PaymentMethod = "zelle"
	PaymentCheck      PaymentMethod = "check"
)

// ServiceFlags are the optional add-on selections.
type ServiceFlags struct {
	PremiumEnhancements    bool `json:"premiumEnhancements"`
	SpecialLoad            bool `json:"specialLoad"`
	Inoperable             bool `json:"inoperable"`
	SupplementaryInsurance bool `json:"supplementaryInsurance"`
}

// FactorSet carries the independently resolved signal multipliers. A factor
// that has not resolved (or failed) stays at the neutral 1.0 so a recompute
// with partial signals never distorts the price.
type FactorSet struct {
	Weather  float64 `json:"weather"`
	Traffic  float64 `json:"traffic"`
	Fuel     float64 `json:"fuel"`
	AutoShow float64 `json:"autoShow"`
}

// NeutralFactors returns a FactorSet with every multiplier at 1.0.
func NeutralFactors() FactorSet {
	return FactorSet{Weather: 1.0, Traffic: 1.0, Fuel: 1.0, AutoShow: 1.0}
}

// ComposeInput is everything the composer needs for one full recompute.
type ComposeInput struct {
	DistanceMiles float64
	TransportType TransportType
	VehicleTier   VehicleValueTier
	Services      ServiceFlags
	Factors       FactorSet
	Tolls         tolls.Estimate
	Payment       PaymentMethod
}

// BasePriceBreakdown reports how the base price was derived. FixedPrice is
// set for short routes priced at the flat floor; RatePerMile is 0 there.
type BasePriceBreakdown struct {
	RatePerMile float64 `json:"ratePerMile"`
	Distance    float64 `json:"distance"`
	Total       float64 `json:"total"`
	FixedPrice  bool    `json:"fixedPrice"`
}

// FactorImpact pairs one factor's multiplier with its equivalent dollar
// impact on top of the base price.
type FactorImpact struct {
	Multiplier float64 `json:"multiplier"`
	Impact     float64 `json:"impact"`
}

type MainMultipliers struct {
	Vehicle  FactorImpact `json:"vehicle"`
	Weather  FactorImpact `json:"weather"`
	Traffic  FactorImpact `json:"traffic"`
	Fuel     FactorImpact `json:"fuel"`
	AutoShow FactorImpact `json:"autoShow"`
}

// ServiceImpact reports one selected service's dollar contribution.
type ServiceImpact struct {
	Selected bool    `json:"selected"`
	Impact   float64 `json:"impact"`
}

type AdditionalServices struct {
	PremiumEnhancements    ServiceImpact `json:"premiumEnhancements"`
	SpecialLoad            ServiceImpact `json:"specialLoad"`
	Inoperable             ServiceImpact `json:"inoperable"`
	SupplementaryInsurance ServiceImpact `json:"supplementaryInsurance"`
	TotalImpact            float64       `json:"totalImpact"`
}

// PriceBreakdown is the full auditable decomposition of one quote. The
// final price is always reconstructible from the breakdown's own fields:
// base + factor impacts + service impacts + toll total + card fee.
type PriceBreakdown struct {
	BasePrice          float64            `json:"basePrice"`
	BasePriceBreakdown BasePriceBreakdown `json:"basePriceBreakdown"`
	MainMultipliers    MainMultipliers    `json:"mainMultipliers"`
	AdditionalServices AdditionalServices `json:"additionalServices"`
	TollCosts          tolls.Estimate     `json:"tollCosts"`
	PaymentMethod      PaymentMethod      `json:"paymentMethod"`
	CardFee            float64            `json:"cardFee"`
	FinalPrice         float64            `json:"finalPrice"`
}
