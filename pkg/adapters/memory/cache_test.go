package memory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aretw0/chempath/pkg/adapters/memory"
	"github.com/aretw0/chempath/pkg/domain"
	"github.com/aretw0/chempath/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_Contract(t *testing.T) {
	ports.RunPathCacheContract(t, memory.NewCache())
}

func TestMemoryCache_TTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := memory.NewCache(
		memory.WithTTL(time.Minute),
		memory.WithClock(func() time.Time { return now }),
	)
	ctx := context.Background()

	out := domain.Outcome{Start: domain.MustCompound(1, domain.Alkane), Target: domain.MustCompound(1, domain.Alkane), Found: true}
	require.NoError(t, cache.Put(ctx, "k", out))

	_, err := cache.Get(ctx, "k")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = cache.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_Concurrent(t *testing.T) {
	cache := memory.NewCache()
	ctx := context.Background()
	out := domain.Outcome{Start: domain.MustCompound(2, domain.Alkene), Target: domain.MustCompound(2, domain.Alkane)}

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = cache.Put(ctx, "shared", out)
				_, _ = cache.Get(ctx, "shared")
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	assert.Equal(t, 1, cache.Len())
}

func TestMemoryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := memory.NewCache(memory.WithMaxEntries(2))
	ctx := context.Background()
	out := domain.Outcome{Start: domain.MustCompound(1, domain.Alkane), Target: domain.MustCompound(1, domain.Alkane), Found: true}

	require.NoError(t, cache.Put(ctx, "a", out))
	require.NoError(t, cache.Put(ctx, "b", out))
	_, err := cache.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, cache.Put(ctx, "c", out))
	assert.Equal(t, 2, cache.Len())

	_, err = cache.Get(ctx, "b")
	assert.ErrorIs(t, err, domain.ErrCacheMiss, "b was the least recently used")
	_, err = cache.Get(ctx, "a")
	assert.NoError(t, err)
	_, err = cache.Get(ctx, "c")
	assert.NoError(t, err)
}

func TestMemoryCache_DefaultBound(t *testing.T) {
	cache := memory.NewCache(memory.WithMaxEntries(0))
	ctx := context.Background()
	out := domain.Outcome{Start: domain.MustCompound(1, domain.Alkane), Target: domain.MustCompound(1, domain.Alkane)}

	for i := 0; i < memory.DefaultMaxEntries+10; i++ {
		require.NoError(t, cache.Put(ctx, fmt.Sprintf("k%d", i), out))
	}
	assert.Equal(t, memory.DefaultMaxEntries, cache.Len())
}
