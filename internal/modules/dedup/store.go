// README: Hash history stores: Redis list for production, in-memory for tests.
package dedup

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one capped redis list per client.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Contains(ctx context.Context, clientID, hash string) (bool, error) {
	_, err := s.client.LPos(ctx, historyKey(clientID), hash, redis.LPosArgs{}).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lpos: %w", err)
	}
	return true, nil
}

func (s *RedisStore) Append(ctx context.Context, clientID, hash string, limit int) error {
	key := historyKey(clientID)
	if err := s.client.RPush(ctx, key, hash).Err(); err != nil {
		return fmt.Errorf("rpush: %w", err)
	}
	// Keep only the newest cap entries; LTrim drops from the head, which is
	// the oldest side of the list.
	if err := s.client.LTrim(ctx, key, int64(-limit), -1).Err(); err != nil {
		return fmt.Errorf("ltrim: %w", err)
	}
	return nil
}

func historyKey(clientID string) string {
	return "dedup:" + clientID
}

// MemoryStore is the process-local implementation used in tests and when no
// redis is configured.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]string)}
}

func (s *MemoryStore) Contains(_ context.Context, clientID, hash string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.entries[clientID] {
		if h == hash {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) Append(_ context.Context, clientID, hash string, limit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := append(s.entries[clientID], hash)
	if len(list) > limit {
		list = list[len(list)-limit:]
	}
	s.entries[clientID] = list
	return nil
}
