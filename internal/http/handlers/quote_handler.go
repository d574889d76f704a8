// README: Quote handler; computes a price breakdown for a shipment request.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haulquote/internal/modules/quote"
)

type QuoteHandler struct {
	quotes *quote.Service
}

func NewQuoteHandler(svc *quote.Service) *QuoteHandler {
	return &QuoteHandler{quotes: svc}
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req quote.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.ClientID = c.ClientIP()

	result, err := h.quotes.Quote(c.Request.Context(), req)
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, result)
}
