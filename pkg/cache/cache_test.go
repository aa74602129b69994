package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoCache(t *testing.T) {
	c := NewGoCache(LocalConfig{})
	defer c.Close()

	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
		got, ok := c.Get(ctx, "k")
		require.True(t, ok)
		assert.Equal(t, "v", got)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "gone", 1, time.Minute))
		require.NoError(t, c.Delete(ctx, "gone"))
		assert.False(t, c.Exists(ctx, "gone"))
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "a", 1, time.Minute))
		require.NoError(t, c.Set(ctx, "b", 2, time.Minute))
		require.NoError(t, c.Clear(ctx))
		assert.False(t, c.Exists(ctx, "a"))
		assert.False(t, c.Exists(ctx, "b"))
	})
}

func TestFactoryRejectsUnknownType(t *testing.T) {
	_, err := NewCache(Config{Type: "memcached"})
	assert.Error(t, err)
}
