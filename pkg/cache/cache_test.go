package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, prefix string) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisCache(rdb, prefix), mr
}

func TestRedisCache_SetGet(t *testing.T) {
	c, mr := newTestCache(t, "award")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	assert.True(t, mr.Exists("award:k"))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	ok, err := c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, c.Delete(ctx, "k"))
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_Expiry(t *testing.T) {
	c, mr := newTestCache(t, "award")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_ClearOnlyPrefix(t *testing.T) {
	c, mr := newTestCache(t, "award")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), 0))
	require.NoError(t, mr.Set("other:c", "3"))

	require.NoError(t, c.Clear(ctx))

	assert.False(t, mr.Exists("award:a"))
	assert.False(t, mr.Exists("award:b"))
	assert.True(t, mr.Exists("other:c"))
}

func TestRedisCache_ClearWithoutPrefix(t *testing.T) {
	c, mr := newTestCache(t, "")
	require.NoError(t, c.Set(context.Background(), "a", []byte("1"), 0))
	require.NoError(t, c.Clear(context.Background()))
	assert.True(t, mr.Exists("a"))
}

func TestRedisCache_ServerDown(t *testing.T) {
	c, mr := newTestCache(t, "award")
	mr.Close()

	_, err := c.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestCacheManager_JSON(t *testing.T) {
	c, _ := newTestCache(t, "award")
	cm := NewCacheManager(c)
	ctx := context.Background()

	type plan struct {
		Route []string `json:"route"`
		Miles float64  `json:"miles"`
	}
	in := plan{Route: []string{"YYZ", "LAX"}, Miles: 2171.1}
	require.NoError(t, cm.SetJSON(ctx, "plan", in, ShortTTL))

	var out plan
	require.NoError(t, cm.GetJSON(ctx, "plan", &out))
	assert.Equal(t, in, out)

	var missing plan
	assert.ErrorIs(t, cm.GetJSON(ctx, "nope", &missing), ErrCacheMiss)

	ok, err := cm.Exists(ctx, "plan")
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, cm.Delete(ctx, "plan"))
	require.NoError(t, cm.Clear(ctx))
}

func TestCacheManager_CorruptEntry(t *testing.T) {
	c, _ := newTestCache(t, "award")
	cm := NewCacheManager(c)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "bad", []byte("{not json"), 0))
	var v map[string]interface{}
	err := cm.GetJSON(ctx, "bad", &v)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestResponseKey(t *testing.T) {
	a := ResponseKey("GET", "/api/v1/quote", "route=YYZ-LAX")
	b := ResponseKey("GET", "/api/v1/quote", "route=YYZ-LHR")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, ResponseKey("GET", "/api/v1/quote", "route=YYZ-LAX"))
	assert.Len(t, a, len("response:")+32)

	// part boundaries are significant
	assert.NotEqual(t, ResponseKey("ab", "c"), ResponseKey("a", "bc"))
}
