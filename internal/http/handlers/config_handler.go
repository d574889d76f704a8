// README: Pricing config handlers; read the active version, publish a new one.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"haulquote/internal/modules/pricingconfig"
)

type ConfigHandler struct {
	resolver *pricingconfig.Resolver
	store    *pricingconfig.Store
}

func NewConfigHandler(resolver *pricingconfig.Resolver, store *pricingconfig.Store) *ConfigHandler {
	return &ConfigHandler{resolver: resolver, store: store}
}

func (h *ConfigHandler) Get(c *gin.Context) {
	cfg := h.resolver.Resolve(c.Request.Context())
	writeJSON(c, http.StatusOK, cfg)
}

func (h *ConfigHandler) Put(c *gin.Context) {
	var cfg pricingconfig.PricingConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.store.Put(c.Request.Context(), cfg); err != nil {
		if errors.Is(err, pricingconfig.ErrMissingVersion) {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "failed to store config")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"version": cfg.Version})
}
