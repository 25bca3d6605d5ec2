package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: mustPort(t, mr)})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	var port int
	_, err := fmt.Sscan(mr.Port(), &port)
	require.NoError(t, err)
	return port
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	_, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: 1})
	assert.Error(t, err)
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	_, client := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "rates:current:USDT/NGN", `{"buy_rate":"1550"}`, time.Minute))

	val, err := client.Get(ctx, "rates:current:USDT/NGN")
	require.NoError(t, err)
	assert.Equal(t, `{"buy_rate":"1550"}`, val)

	require.NoError(t, client.Delete(ctx, "rates:current:USDT/NGN"))
	_, err = client.Get(ctx, "rates:current:USDT/NGN")
	assert.ErrorIs(t, err, redis.Nil)

	assert.NoError(t, client.Ping(ctx))
	assert.NotNil(t, client.GetClient())
}

func TestRedisClient_IncrWindow(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()
	key := "rate:limit:login:10.0.0.1"

	count, ttl, err := client.IncrWindow(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(20 * time.Second)
	count, ttl, err = client.IncrWindow(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, 40*time.Second, ttl)

	mr.FastForward(time.Minute)
	count, _, err = client.IncrWindow(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisClient_Advance(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	ok, err := client.Advance(ctx, "counter", 10, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Minute, mr.TTL("counter"))

	for _, v := range []int64{10, 9} {
		ok, err = client.Advance(ctx, "counter", v, time.Minute)
		require.NoError(t, err)
		assert.False(t, ok, "value %d", v)
	}
	got, err := client.Get(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, "10", got)

	ok, err = client.Advance(ctx, "counter", 11, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
