// README: Quote request/result types and module errors.
package quote

import (
	"errors"

	"haulquote/internal/maps"
	"haulquote/internal/modules/pricing"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrRoute      = errors.New("route could not be resolved")
	ErrDistance   = errors.New("distance out of range")
)

// QuoteRequest is one user's in-flight price request.
type QuoteRequest struct {
	Pickup   string `json:"pickup"`
	Delivery string `json:"delivery"`
	ShipDate string `json:"shipDate"` // YYYY-MM-DD

	TransportType pricing.TransportType    `json:"transportType"`
	VehicleType   string                   `json:"vehicleType"`
	VehicleValue  pricing.VehicleValueTier `json:"vehicleValue"`
	Services      pricing.ServiceFlags     `json:"services"`
	Payment       pricing.PaymentMethod    `json:"paymentMethod"`

	// ClientID identifies the requester; set by the transport layer, never
	// bound from the request body. A client's new calculation supersedes only
	// that client's previous one.
	ClientID string `json:"-"`
}

// QuoteResult is the finalized breakdown plus the idempotency hash the lead
// submission path reuses.
type QuoteResult struct {
	Breakdown       pricing.PriceBreakdown `json:"breakdown"`
	Route           maps.RouteQuote        `json:"route"`
	ConfigVersion   string                 `json:"configVersion"`
	CalculationHash string                 `json:"calculationHash"`
}
