// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"haulquote/internal/config"
	httptransport "haulquote/internal/http"
	"haulquote/internal/infra"
	"haulquote/internal/logger"
	"haulquote/internal/maps"
	"haulquote/internal/modules/dedup"
	"haulquote/internal/modules/leads"
	"haulquote/internal/modules/pricingconfig"
	"haulquote/internal/modules/quote"
	"haulquote/internal/ratelimit"
	"haulquote/internal/signals"
	"haulquote/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DBDSN)
	if err != nil {
		zlog.Fatal("db init", zap.Error(err))
	}
	defer dbPool.Close()

	if err := storage.RunMigrations(ctx, dbPool, zlog); err != nil {
		zlog.Fatal("migrations", zap.Error(err))
	}

	redisClient := infra.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = redisClient.Close() }()

	routeSvc, err := maps.NewRouteService(cfg.MapsAPIKey)
	if err != nil {
		zlog.Fatal("maps init", zap.Error(err))
	}

	configStore := pricingconfig.NewStore(redisClient)
	configResolver := pricingconfig.NewResolver(configStore, zlog)

	weatherClient := signals.NewWeatherClient(cfg.WeatherBaseURL, cfg.ProviderTimeout, zlog)
	fuelClient := signals.NewFuelClient(cfg.FuelBaseURL, cfg.ProviderTimeout, zlog)

	var showDetector quote.ShowDetector = quote.NoopShowDetector{}
	if eventsSvc, err := maps.NewEventsService(cfg.MapsAPIKey); err == nil {
		showDetector = eventsSvc
	}

	quoteSvc := quote.NewService(routeSvc, configResolver, weatherClient, fuelClient, showDetector, zlog)

	deduper := dedup.NewDeduper(dedup.NewRedisStore(redisClient))
	crmClient := leads.NewCRMClient(cfg.CRMBaseURL, cfg.CRMToken, cfg.ProviderTimeout, zlog)
	leadStore := leads.NewStore(dbPool)
	leadSvc := leads.NewService(deduper, crmClient, leadStore, zlog)

	limiter := ratelimit.NewRedisLimiter(redisClient, cfg.RateLimitPerMinute, time.Minute)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Quote:       quoteSvc,
		Leads:       leadSvc,
		ConfigStore: configStore,
		Configs:     configResolver,
		Limiter:     limiter,
		AdminToken:  cfg.AdminToken,
		Logger:      zlog,
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	zlog.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal("server", zap.Error(err))
	}
}
