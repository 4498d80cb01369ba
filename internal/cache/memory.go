package cache

import (
	"context"
	"sync"
	"time"
)

const cleanupInterval = 5 * time.Minute

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is an in-process TTL cache with periodic eviction of expired entries.
type Memory struct {
	mu    sync.RWMutex
	store map[string]entry
	ttl   time.Duration
	now   func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = time.Hour
	}
	m := &Memory{
		store: make(map[string]entry),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	go m.cleanupLoop()
	return m
}

// Get retrieves a value if present and not expired.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.store[key]
	if !ok || m.now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.store[key] = entry{value: value, expiresAt: m.now().Add(m.ttl)}
	return nil
}

// Len reports the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (m *Memory) Close() error {
	m.stopOnce.Do(func() { close(m.stop) })
	return nil
}

func (m *Memory) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictExpired()
		case <-m.stop:
			return
		}
	}
}

func (m *Memory) evictExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, e := range m.store {
		if now.After(e.expiresAt) {
			delete(m.store, key)
		}
	}
}
