package pricingconfig

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResolver_FallsBackToDefault(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	r := NewResolver(NewStore(client), zap.NewNop())

	got := r.Resolve(context.Background())
	assert.Equal(t, Default().Version, got.Version)
	assert.Equal(t, 600.0, got.Validation.MinPriceThreshold)
}

func TestResolver_ReturnsPublishedConfig(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewStore(client)

	published := Default()
	published.Version = "2026.9-test"
	published.BaseRates.Open.Max = 1.01
	require.NoError(t, store.Put(context.Background(), published))

	r := NewResolver(store, zap.NewNop())
	got := r.Resolve(context.Background())

	assert.Equal(t, "2026.9-test", got.Version)
	assert.Equal(t, 1.01, got.BaseRates.Open.Max)
	// Maps survive the round trip intact.
	assert.Equal(t, 0.35, got.Tolls.RegionPortions["northeast"])
}

func TestStore_PutRequiresVersion(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewStore(client)

	cfg := Default()
	cfg.Version = ""
	assert.Error(t, store.Put(context.Background(), cfg))
}

func TestDefault_AllRegionsConfigured(t *testing.T) {
	cfg := Default()
	assert.Len(t, cfg.Tolls.RegionMultipliers, 10)
	assert.Len(t, cfg.Tolls.RegionPortions, 10)
	for region, m := range cfg.Tolls.RegionMultipliers {
		assert.Greater(t, m, 0.0, "multiplier for %s", region)
		assert.Greater(t, cfg.Tolls.RegionPortions[region], 0.0, "portion for %s", region)
	}
}
