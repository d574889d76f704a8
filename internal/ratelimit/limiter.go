// README: Injected rate-limit capability; fixed-window counters with
// pluggable storage.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter checks and records one request for a client in a named bucket.
// Implementations fail open: abuse protection must not take the API down
// with it.
type Limiter interface {
	CheckAndRecord(ctx context.Context, clientID, bucket string) (bool, error)
}

// MemoryLimiter is a process-local fixed-window counter.
type MemoryLimiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	counts  map[string]int
	resets  map[string]time.Time
	nowFunc func() time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		counts:  make(map[string]int),
		resets:  make(map[string]time.Time),
		nowFunc: time.Now,
	}
}

func (l *MemoryLimiter) CheckAndRecord(_ context.Context, clientID, bucket string) (bool, error) {
	key := bucket + ":" + clientID
	now := l.nowFunc()

	l.mu.Lock()
	defer l.mu.Unlock()

	if reset, ok := l.resets[key]; !ok || now.After(reset) {
		l.counts[key] = 0
		l.resets[key] = now.Add(l.window)
	}
	if l.counts[key] >= l.limit {
		return false, nil
	}
	l.counts[key]++
	return true, nil
}
