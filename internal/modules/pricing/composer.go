// README: Price composition; turns base rate, factors, services, tolls, and
// payment fee into an auditable breakdown.
package pricing

import (
	"math"

	"haulquote/internal/modules/pricingconfig"
)

// Composer combines the distance-based base price with every adjustment
// factor using the additive-impact model: each factor contributes
// base × (multiplier − 1) in dollars on top of the base price. Factors are
// never chained as a product.
type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// Compose performs one full recompute from the currently known factor set.
// It is pure: callers re-run it whenever a signal resolves, always against
// the complete input, never on top of an already-adjusted price.
func (c *Composer) Compose(in ComposeInput, cfg pricingconfig.PricingConfig) PriceBreakdown {
	base := c.basePrice(in.DistanceMiles, in.TransportType, cfg)

	factors := in.Factors
	if factors == (FactorSet{}) {
		factors = NeutralFactors()
	}

	services := in.Services
	if in.VehicleTier.RequiresPremium() {
		services.PremiumEnhancements = true
	}

	main := MainMultipliers{
		Vehicle:  impact(base.Total, VehicleMultiplier(in.VehicleTier, cfg.VehicleValue)),
		Weather:  impact(base.Total, factors.Weather),
		Traffic:  impact(base.Total, factors.Traffic),
		Fuel:     impact(base.Total, factors.Fuel),
		AutoShow: impact(base.Total, factors.AutoShow),
	}

	add := c.additionalServices(base.Total, services, cfg.Services)

	subtotal := base.Total +
		main.Vehicle.Impact + main.Weather.Impact + main.Traffic.Impact +
		main.Fuel.Impact + main.AutoShow.Impact +
		add.TotalImpact +
		in.Tolls.Total

	var cardFee float64
	if in.Payment == PaymentCreditCard {
		cardFee = round2(subtotal * cfg.PaymentFees.CreditCard)
	}

	return PriceBreakdown{
		BasePrice:          base.Total,
		BasePriceBreakdown: base,
		MainMultipliers:    main,
		AdditionalServices: add,
		TollCosts:          in.Tolls,
		PaymentMethod:      in.Payment,
		CardFee:            cardFee,
		FinalPrice:         round2(subtotal + cardFee),
	}
}

// basePrice applies the short-distance flat floor, otherwise prices at the
// top of the configured rate band for the transport type.
func (c *Composer) basePrice(distance float64, transport TransportType, cfg pricingconfig.PricingConfig) BasePriceBreakdown {
	if distance <= cfg.Validation.ShortDistanceLimit {
		return BasePriceBreakdown{
			RatePerMile: 0,
			Distance:    distance,
			Total:       cfg.Validation.MinPriceThreshold,
			FixedPrice:  true,
		}
	}

	rate := cfg.BaseRates.Open.Max
	if transport == TransportEnclosed {
		rate = cfg.BaseRates.Enclosed.Max
	}

	return BasePriceBreakdown{
		RatePerMile: rate,
		Distance:    distance,
		Total:       round2(distance * rate),
	}
}

func (c *Composer) additionalServices(base float64, flags ServiceFlags, cfg pricingconfig.Services) AdditionalServices {
	add := AdditionalServices{
		PremiumEnhancements:    serviceImpact(base, flags.PremiumEnhancements, cfg.PremiumEnhancements),
		SpecialLoad:            serviceImpact(base, flags.SpecialLoad, cfg.SpecialLoad),
		Inoperable:             serviceImpact(base, flags.Inoperable, cfg.Inoperable),
		SupplementaryInsurance: serviceImpact(base, flags.SupplementaryInsurance, cfg.SupplementaryInsurance),
	}
	add.TotalImpact = round2(add.PremiumEnhancements.Impact +
		add.SpecialLoad.Impact +
		add.Inoperable.Impact +
		add.SupplementaryInsurance.Impact)
	return add
}

func impact(base, multiplier float64) FactorImpact {
	if multiplier <= 0 {
		multiplier = 1.0
	}
	return FactorImpact{
		Multiplier: multiplier,
		Impact:     round2(base * (multiplier - 1)),
	}
}

func serviceImpact(base float64, selected bool, multiplier float64) ServiceImpact {
	si := ServiceImpact{Selected: selected}
	if selected {
		si.Impact = round2(base * multiplier)
	}
	return si
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
