package cache

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	value    []byte
	expireAt time.Time
}

func (m *memoryItem) expired() bool {
	return time.Now().After(m.expireAt)
}

// MemoryCache implements Service using in-memory storage with periodic
// cleanup of expired entries.
type MemoryCache struct {
	data          map[string]*memoryItem
	mutex         sync.RWMutex
	defaultTTL    time.Duration
	cleanupTicker *time.Ticker
	done          chan struct{}
}

// NewMemoryCache creates an in-memory cache.
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	if defaultTTL <= 0 {
		defaultTTL = 10 * time.Minute
	}
	mc := &MemoryCache{
		data:          make(map[string]*memoryItem),
		defaultTTL:    defaultTTL,
		cleanupTicker: time.NewTicker(5 * time.Minute),
		done:          make(chan struct{}),
	}
	go mc.cleanupExpired()
	return mc
}

func (mc *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = mc.defaultTTL
	}

	cp := make([]byte, len(value))
	copy(cp, value)

	mc.mutex.Lock()
	mc.data[key] = &memoryItem{value: cp, expireAt: time.Now().Add(ttl)}
	mc.mutex.Unlock()
	return nil
}

func (mc *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	mc.mutex.RLock()
	item, exists := mc.data[key]
	mc.mutex.RUnlock()

	if !exists {
		return nil, false, nil
	}
	if item.expired() {
		mc.mutex.Lock()
		delete(mc.data, key)
		mc.mutex.Unlock()
		return nil, false, nil
	}
	return item.value, true, nil
}

func (mc *MemoryCache) Delete(_ context.Context, keys ...string) error {
	mc.mutex.Lock()
	for _, k := range keys {
		delete(mc.data, k)
	}
	mc.mutex.Unlock()
	return nil
}

func (mc *MemoryCache) Close() error {
	mc.cleanupTicker.Stop()
	close(mc.done)
	return nil
}

func (mc *MemoryCache) cleanupExpired() {
	for {
		select {
		case <-mc.done:
			return
		case <-mc.cleanupTicker.C:
			mc.mutex.Lock()
			for k, item := range mc.data {
				if item.expired() {
					delete(mc.data, k)
				}
			}
			mc.mutex.Unlock()
		}
	}
}
