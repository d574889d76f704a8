// README: Lead handler; submits a priced calculation to the CRM.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haulquote/internal/modules/leads"
	"haulquote/internal/modules/pricing"
)

type LeadHandler struct {
	leads *leads.Service
}

func NewLeadHandler(svc *leads.Service) *LeadHandler {
	return &LeadHandler{leads: svc}
}

type submitLeadReq struct {
	Contact       leads.Contact          `json:"contact"`
	Pickup        string                 `json:"pickup"`
	Delivery      string                 `json:"delivery"`
	ShipDate      string                 `json:"shipDate"`
	TransportType string                 `json:"transportType"`
	VehicleType   string                 `json:"vehicleType"`
	VehicleValue  string                 `json:"vehicleValue"`
	Services      pricing.ServiceFlags   `json:"services"`
	PaymentMethod string                 `json:"paymentMethod"`
	FinalPrice    float64                `json:"finalPrice"`
	Breakdown     pricing.PriceBreakdown `json:"breakdown"`
	ActionCode    string                 `json:"actionCode"`
}

func (h *LeadHandler) Submit(c *gin.Context) {
	var req submitLeadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	result, err := h.leads.Submit(c.Request.Context(), leads.SubmitCommand{
		Contact:       req.Contact,
		Pickup:        req.Pickup,
		Delivery:      req.Delivery,
		ShipDate:      req.ShipDate,
		TransportType: req.TransportType,
		VehicleType:   req.VehicleType,
		VehicleValue:  req.VehicleValue,
		Services:      req.Services,
		PaymentMethod: req.PaymentMethod,
		FinalPrice:    req.FinalPrice,
		Breakdown:     req.Breakdown,
		ActionCode:    req.ActionCode,
		ClientID:      c.ClientIP(),
	})
	if err != nil {
		writeLeadError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, result)
}
