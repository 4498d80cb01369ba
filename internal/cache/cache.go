// Package cache stores rendered scenario responses. Evaluations are pure, so a hit
// always equals a recomputation; the cache only saves work for repeated requests.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is a byte cache keyed by Key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Key creates a deterministic cache key from a scenario name and its parameters.
// Parameters must already be clamped so equivalent requests share a key.
func Key(scenario string, params any) (string, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("cache key for %s: %w", scenario, err)
	}
	// Hash the key to keep it reasonably sized
	hash := sha256.Sum256(append([]byte(scenario+":"), raw...))
	return "expgrowth:" + scenario + ":" + hex.EncodeToString(hash[:]), nil
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (Nop) Set(context.Context, string, []byte) error  { return nil }
func (Nop) Close() error                               { return nil }

// Options selects and configures a backend.
type Options struct {
	Backend   string // "none", "memory" or "redis"
	TTL       time.Duration
	RedisAddr string
	RedisDB   int
}

// New builds the configured backend. Unknown backends are an error.
func New(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case "", "none":
		return Nop{}, nil
	case "memory":
		return NewMemory(opts.TTL), nil
	case "redis":
		return NewRedis(ctx, opts.RedisAddr, opts.RedisDB, opts.TTL)
	default:
		return nil, fmt.Errorf("unsupported cache backend: %q", opts.Backend)
	}
}
