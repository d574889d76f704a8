// README: Quote service; validates input, fans out signal resolution, and
// composes the final breakdown.
package quote

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"haulquote/internal/maps"
	"haulquote/internal/modules/dedup"
	"haulquote/internal/modules/pricing"
	"haulquote/internal/modules/pricingconfig"
	"haulquote/internal/modules/tolls"
	"haulquote/internal/signals"
)

type RouteResolver interface {
	ResolveRoute(ctx context.Context, origin, destination string, departure time.Time) (maps.RouteQuote, error)
}

type ConfigResolver interface {
	Resolve(ctx context.Context) pricingconfig.PricingConfig
}

type WeatherProvider interface {
	Conditions(ctx context.Context, lat, lng float64, date time.Time) (signals.WeatherReport, error)
}

type FuelProvider interface {
	TrendRatio(ctx context.Context) (float64, error)
}

type ShowDetector interface {
	NearbyAutoShow(ctx context.Context, loc maps.LatLng, shipDate time.Time, radiusMiles float64, windowDays int) (bool, error)
}

// NoopShowDetector is used when no events feed is configured; the auto-show
// factor stays neutral.
type NoopShowDetector struct{}

func (NoopShowDetector) NearbyAutoShow(context.Context, maps.LatLng, time.Time, float64, int) (bool, error) {
	return false, nil
}

type Service struct {
	routes  RouteResolver
	configs ConfigResolver
	weather WeatherProvider
	fuel    FuelProvider
	shows   ShowDetector
	tolls   *tolls.Estimator
	logger  *zap.Logger

	// Session token sources, one counter per client. A counter is shared
	// only between one client's successive calculations, so concurrent
	// clients never invalidate each other's in-flight sessions.
	mu      sync.Mutex
	sources map[string]*atomic.Uint64
}

func NewService(routes RouteResolver, configs ConfigResolver, weather WeatherProvider, fuel FuelProvider, shows ShowDetector, logger *zap.Logger) *Service {
	if shows == nil {
		shows = NoopShowDetector{}
	}
	return &Service{
		routes:  routes,
		configs: configs,
		weather: weather,
		fuel:    fuel,
		shows:   shows,
		tolls:   tolls.NewEstimator(),
		logger:  logger,
		sources: make(map[string]*atomic.Uint64),
	}
}

// Quote runs one full calculation. Signal providers are independent and
// best-effort: any one failing leaves its factor neutral and never aborts
// the quote. Only input validation and route resolution are fatal.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (QuoteResult, error) {
	shipDate, err := s.validate(req)
	if err != nil {
		return QuoteResult{}, err
	}

	cfg := s.configs.Resolve(ctx)

	route, err := s.routes.ResolveRoute(ctx, req.Pickup, req.Delivery, shipDate)
	if err != nil {
		s.logger.Warn("route resolution failed", zap.Error(err))
		return QuoteResult{}, ErrRoute
	}
	if route.DistanceMiles <= 0 || route.DistanceMiles > cfg.Validation.MaxDistanceMiles {
		return QuoteResult{}, ErrDistance
	}

	sess := NewSession(s.sourceFor(req.ClientID), pricing.ComposeInput{
		DistanceMiles: route.DistanceMiles,
		TransportType: req.TransportType,
		VehicleTier:   req.VehicleValue,
		Services:      req.Services,
		Payment:       req.Payment,
	}, cfg)

	// Tolls and traffic derive from the already-resolved route.
	sess.SetTolls(s.tolls.EstimateTolls(route.DistanceMiles, route.States, route.RouteText, cfg.Tolls))
	sess.SetTraffic(pricing.TrafficMultiplier(route.CongestionRatio(), cfg.Traffic))

	s.resolveSignals(ctx, sess, route, shipDate, cfg)

	breakdown := sess.Recompute()

	return QuoteResult{
		Breakdown:     breakdown,
		Route:         route,
		ConfigVersion: cfg.Version,
		CalculationHash: dedup.Hash(dedup.Inputs{
			Pickup:                 req.Pickup,
			Delivery:               req.Delivery,
			ShipDate:               req.ShipDate,
			TransportType:          string(req.TransportType),
			VehicleType:            req.VehicleType,
			VehicleValue:           string(req.VehicleValue),
			PremiumEnhancements:    breakdown.AdditionalServices.PremiumEnhancements.Selected,
			SpecialLoad:            req.Services.SpecialLoad,
			Inoperable:             req.Services.Inoperable,
			SupplementaryInsurance: req.Services.SupplementaryInsurance,
			FinalPrice:             breakdown.FinalPrice,
		}),
	}, nil
}

// resolveSignals fans out the remote signal lookups and waits for all of
// them. Each failure substitutes the neutral default and logs; the group
// never carries an error out.
func (s *Service) resolveSignals(ctx context.Context, sess *Session, route maps.RouteQuote, shipDate time.Time, cfg pricingconfig.PricingConfig) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		points := []maps.LatLng{route.OriginLoc, route.Midpoint, route.DestinationLoc}
		conditions := make([]string, 0, len(points))
		for _, p := range points {
			report, err := s.weather.Conditions(gctx, p.Lat, p.Lng, shipDate)
			if err != nil {
				s.logger.Warn("weather signal unavailable", zap.Error(err))
				continue
			}
			conditions = append(conditions, report.Condition)
		}
		sess.SetWeather(pricing.WorstWeatherMultiplier(conditions, cfg.Weather))
		return nil
	})

	g.Go(func() error {
		change, err := s.fuel.TrendRatio(gctx)
		if err != nil {
			s.logger.Warn("fuel signal unavailable", zap.Error(err))
			return nil
		}
		sess.SetFuel(pricing.FuelMultiplier(change, cfg.Fuel))
		return nil
	})

	g.Go(func() error {
		for _, loc := range []maps.LatLng{route.OriginLoc, route.DestinationLoc} {
			found, err := s.shows.NearbyAutoShow(gctx, loc, shipDate,
				cfg.AutoShow.SearchRadiusMiles, cfg.AutoShow.DateWindowDays)
			if err != nil {
				s.logger.Warn("auto-show signal unavailable", zap.Error(err))
				continue
			}
			if found {
				sess.SetAutoShow(cfg.AutoShow.Multiplier)
				return nil
			}
		}
		return nil
	})

	_ = g.Wait()
}

func (s *Service) sourceFor(clientID string) *atomic.Uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, ok := s.sources[clientID]
	if !ok {
		src = &atomic.Uint64{}
		s.sources[clientID] = src
	}
	return src
}

func (s *Service) validate(req QuoteRequest) (time.Time, error) {
	if strings.TrimSpace(req.Pickup) == "" || strings.TrimSpace(req.Delivery) == "" {
		return time.Time{}, ErrBadRequest
	}
	if req.TransportType != pricing.TransportOpen && req.TransportType != pricing.TransportEnclosed {
		return time.Time{}, ErrBadRequest
	}
	shipDate, err := time.Parse("2006-01-02", req.ShipDate)
	if err != nil {
		return time.Time{}, ErrBadRequest
	}
	return shipDate, nil
}
