// README: Lead aggregate and submission outcome types.
package leads

import (
	"errors"
	"time"

	"haulquote/internal/modules/pricing"
)

var ErrBadRequest = errors.New("bad request")

// Action codes identify which affordance triggered the submission.
const (
	ActionQuoteSubmit = "quote_submit"
	ActionEmailQuote  = "email_quote"
	ActionCallback    = "callback_request"
)

type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Lead is the finalized payload handed to the CRM collaborator and persisted
// locally. CalculationHash is the idempotency key embedded in a lead field.
type Lead struct {
	ID              string                 `json:"id"`
	Contact         Contact                `json:"contact"`
	Pickup          string                 `json:"pickup"`
	Delivery        string                 `json:"delivery"`
	ShipDate        string                 `json:"shipDate"`
	TransportType   string                 `json:"transportType"`
	VehicleType     string                 `json:"vehicleType"`
	VehicleValue    string                 `json:"vehicleValue"`
	Services        pricing.ServiceFlags   `json:"services"`
	PaymentMethod   string                 `json:"paymentMethod"`
	Breakdown       pricing.PriceBreakdown `json:"breakdown"`
	FinalPrice      float64                `json:"finalPrice"`
	CalculationHash string                 `json:"calculationHash"`
	ActionCode      string                 `json:"actionCode"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// Status of one submission attempt.
type Status string

const (
	// StatusSubmitted: the CRM accepted the lead.
	StatusSubmitted Status = "submitted"
	// StatusDuplicate: an identical calculation was already submitted; no
	// CRM call was made.
	StatusDuplicate Status = "duplicate"
	// StatusWarning: the CRM call failed; the hash is still recorded
	// (at-most-one-attempt) and the quote remains valid.
	StatusWarning Status = "accepted-with-warning"
)

type Result struct {
	Status          Status `json:"status"`
	LeadID          string `json:"leadId,omitempty"`
	CalculationHash string `json:"calculationHash"`
}
