package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type params struct {
	Field int `json:"field"`
}

func TestKeyIsDeterministic(t *testing.T) {
	a, err := Key("chessboard", params{Field: 12})
	require.NoError(t, err)
	b, err := Key("chessboard", params{Field: 12})
	require.NoError(t, err)
	c, err := Key("chessboard", params{Field: 13})
	require.NoError(t, err)
	d, err := Key("viral", params{Field: 12})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
	assert.Contains(t, a, "expgrowth:chessboard:")
}

func TestKeyRejectsUnmarshalableParams(t *testing.T) {
	_, err := Key("x", make(chan int))
	assert.Error(t, err)
}

func TestMemoryGetSetAndExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Minute)
	defer m.Close()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	_, ok := m.Get(ctx, "k")
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "k", []byte("v")))
	v, ok := m.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v", string(v))

	now = now.Add(2 * time.Minute)
	_, ok = m.Get(ctx, "k")
	assert.False(t, ok, "expired entries are not served")

	m.evictExpired()
	assert.Equal(t, 0, m.Len())
}

func TestMemoryCloseIsIdempotent(t *testing.T) {
	m := NewMemory(0)
	assert.NoError(t, m.Close())
	assert.NoError(t, m.Close())
}

func TestNewSelectsBackend(t *testing.T) {
	ctx := context.Background()

	c, err := New(ctx, Options{Backend: "none"})
	require.NoError(t, err)
	assert.IsType(t, Nop{}, c)

	c, err = New(ctx, Options{Backend: "memory", TTL: time.Second})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, c)
	require.NoError(t, c.Close())

	_, err = New(ctx, Options{Backend: "memcached"})
	assert.Error(t, err)
}

func TestNewRedisFailsWhenUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewRedis(ctx, "127.0.0.1:1", 0, time.Minute)
	assert.Error(t, err)
}

func TestNopNeverStores(t *testing.T) {
	ctx := context.Background()
	var c Cache = Nop{}
	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}
