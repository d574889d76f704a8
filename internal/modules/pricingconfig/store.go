// README: Pricing config store backed by Redis.
package pricingconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const configKey = "pricing:config"

// ErrNotFound is returned when no config document has been published yet.
var ErrNotFound = errors.New("pricing config not found")

// ErrMissingVersion rejects publishing an unversioned document.
var ErrMissingVersion = errors.New("pricing config version is required")

type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context) (PricingConfig, error) {
	data, err := s.client.Get(ctx, configKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return PricingConfig{}, ErrNotFound
	}
	if err != nil {
		return PricingConfig{}, fmt.Errorf("get pricing config: %w", err)
	}

	var cfg PricingConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return PricingConfig{}, fmt.Errorf("unmarshal pricing config: %w", err)
	}
	return cfg, nil
}

func (s *Store) Put(ctx context.Context, cfg PricingConfig) error {
	if cfg.Version == "" {
		return ErrMissingVersion
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal pricing config: %w", err)
	}
	return s.client.Set(ctx, configKey, data, 0).Err()
}
