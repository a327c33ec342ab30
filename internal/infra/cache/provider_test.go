//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"turnera/internal/usecase/queries"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProviderCodeKey(t *testing.T) {
	assert.Equal(t, "provider:code:AB23CD45", providerCodeKey("AB23CD45"))
}

func TestNoopProviderCache(t *testing.T) {
	ctx := context.Background()
	c := NoopProviderCache{}

	c.Set(ctx, "AB23CD45", &queries.ProviderView{ID: uuid.New()})
	view, ok := c.Get(ctx, "AB23CD45")

	assert.False(t, ok)
	assert.Nil(t, view)
	c.Invalidate(ctx, "AB23CD45")
}

// Redis が落ちていてもキャッシュはミス扱いになり、呼び出し側はDBへフォールバックする
func TestRedisProviderCache_UnreachableIsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisProviderCache(client, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "AB23CD45", &queries.ProviderView{ID: uuid.New(), Code: "AB23CD45"})
	view, ok := c.Get(ctx, "AB23CD45")

	assert.False(t, ok)
	assert.Nil(t, view)
	c.Invalidate(ctx, "AB23CD45")
	c.Invalidate(ctx)
}
