package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_EnforcesLimit(t *testing.T) {
	l := NewMemoryLimiter(2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.CheckAndRecord(ctx, "203.0.113.7", "quotes")
		require.NoError(t, err)
		assert.True(t, ok, "request %d should pass", i+1)
	}

	ok, err := l.CheckAndRecord(ctx, "203.0.113.7", "quotes")
	require.NoError(t, err)
	assert.False(t, ok, "third request in the window must be rejected")
}

func TestMemoryLimiter_BucketsAreIndependent(t *testing.T) {
	l := NewMemoryLimiter(1, time.Minute)
	ctx := context.Background()

	ok, _ := l.CheckAndRecord(ctx, "203.0.113.7", "quotes")
	require.True(t, ok)
	ok, _ = l.CheckAndRecord(ctx, "203.0.113.7", "quotes")
	require.False(t, ok)

	ok, _ = l.CheckAndRecord(ctx, "203.0.113.7", "leads")
	assert.True(t, ok, "exhausting one bucket must not touch another")
}

func TestMemoryLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewMemoryLimiter(1, time.Minute)
	ctx := context.Background()

	ok, _ := l.CheckAndRecord(ctx, "203.0.113.7", "quotes")
	require.True(t, ok)

	ok, _ = l.CheckAndRecord(ctx, "198.51.100.4", "quotes")
	assert.True(t, ok)
}

func TestMemoryLimiter_WindowExpiry(t *testing.T) {
	l := NewMemoryLimiter(1, time.Minute)
	ctx := context.Background()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	l.nowFunc = func() time.Time { return now }

	ok, _ := l.CheckAndRecord(ctx, "203.0.113.7", "quotes")
	require.True(t, ok)
	ok, _ = l.CheckAndRecord(ctx, "203.0.113.7", "quotes")
	require.False(t, ok)

	now = now.Add(61 * time.Second)
	ok, _ = l.CheckAndRecord(ctx, "203.0.113.7", "quotes")
	assert.True(t, ok, "a fresh window resets the counter")
}
