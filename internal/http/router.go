// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"haulquote/internal/http/handlers"
	"haulquote/internal/http/middleware"
	"haulquote/internal/modules/leads"
	"haulquote/internal/modules/pricingconfig"
	"haulquote/internal/modules/quote"
	"haulquote/internal/ratelimit"
)

type RouterDeps struct {
	Quote       *quote.Service
	Leads       *leads.Service
	ConfigStore *pricingconfig.Store
	Configs     *pricingconfig.Resolver
	Limiter     ratelimit.Limiter
	AdminToken  string
	Logger      *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.Logging(deps.Logger))

	quoteHandler := handlers.NewQuoteHandler(deps.Quote)
	leadHandler := handlers.NewLeadHandler(deps.Leads)
	configHandler := handlers.NewConfigHandler(deps.Configs, deps.ConfigStore)

	api := router.Group("/api")
	api.POST("/quotes",
		middleware.RateLimit(deps.Limiter, "quotes", deps.Logger),
		quoteHandler.Create)
	api.POST("/leads",
		middleware.RateLimit(deps.Limiter, "leads", deps.Logger),
		leadHandler.Submit)
	api.GET("/pricing-config", configHandler.Get)
	api.PUT("/pricing-config",
		middleware.AdminToken(deps.AdminToken),
		configHandler.Put)

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return router
}
