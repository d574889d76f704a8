// README: Resolver serves the active pricing config with a compiled-in fallback.
package pricingconfig

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Getter is the narrow read surface the resolver needs from a store.
type Getter interface {
	Get(ctx context.Context) (PricingConfig, error)
}

// Resolver fetches the published config, retrying transient store errors,
// and falls back to Default() so a calculation can always proceed.
type Resolver struct {
	store  Getter
	logger *zap.Logger
}

func NewResolver(store Getter, logger *zap.Logger) *Resolver {
	return &Resolver{store: store, logger: logger}
}

// Resolve never fails: an unreachable or empty store yields the default
// config. The snapshot returned is the caller's to keep for the whole
// calculation; later published versions do not leak into it.
func (r *Resolver) Resolve(ctx context.Context) PricingConfig {
	var cfg PricingConfig

	op := func() error {
		var err error
		cfg, err = r.store.Get(ctx)
		if errors.Is(err, ErrNotFound) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 3 * time.Second

	if err := backoff.Retry(op, backoff.WithContext(policy, ctx)); err != nil {
		r.logger.Warn("pricing config unavailable, using default",
			zap.String("version", Default().Version),
			zap.Error(err))
		return Default()
	}
	return cfg
}
