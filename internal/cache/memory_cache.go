package cache

import (
	"context"
	"hash/fnv"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time // zero = never
}

func (e entry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

type shard[V any] struct {
	sync.RWMutex
	items map[string]entry[V]
}

// MemoryCache keeps entries in a fixed number of lock-striped shards. A
// janitor goroutine drops expired entries until Stop is called.
type MemoryCache[V any] struct {
	shards   []*shard[V]
	quit     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

// NewMemoryCache creates a 64-shard cache swept every 30s.
func NewMemoryCache[V any]() *MemoryCache[V] {
	return NewMemoryCacheWithOptions[V](64, 30*time.Second)
}

// NewMemoryCacheWithOptions allows customizing shard count & janitor interval.
func NewMemoryCacheWithOptions[V any](shardCount int, janitorInterval time.Duration) *MemoryCache[V] {
	if shardCount < 1 {
		shardCount = 1
	}
	mc := &MemoryCache[V]{
		shards: make([]*shard[V], shardCount),
		quit:   make(chan struct{}),
		now:    time.Now,
	}
	for i := range mc.shards {
		mc.shards[i] = &shard[V]{items: make(map[string]entry[V])}
	}
	go mc.janitor(janitorInterval)
	return mc
}

// Stop terminates the janitor goroutine. Safe to call more than once.
func (mc *MemoryCache[V]) Stop() {
	mc.stopOnce.Do(func() { close(mc.quit) })
}

// Len returns the number of stored entries, expired ones included.
func (mc *MemoryCache[V]) Len() int {
	n := 0
	for _, s := range mc.shards {
		s.RLock()
		n += len(s.items)
		s.RUnlock()
	}
	return n
}

func (mc *MemoryCache[V]) shardFor(key string) *shard[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return mc.shards[h.Sum32()%uint32(len(mc.shards))]
}

func (mc *MemoryCache[V]) Get(_ context.Context, key string) (V, error) {
	var zero V
	s := mc.shardFor(key)

	s.RLock()
	e, ok := s.items[key]
	s.RUnlock()

	if !ok {
		return zero, ErrCacheMiss
	}
	if e.expired(mc.now()) {
		s.Lock()
		if cur, still := s.items[key]; still && cur.expired(mc.now()) {
			delete(s.items, key)
		}
		s.Unlock()
		return zero, ErrCacheMiss
	}
	return e.value, nil
}

func (mc *MemoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	e := entry[V]{value: value}
	if ttl > 0 {
		e.expiresAt = mc.now().Add(ttl)
	}
	s := mc.shardFor(key)
	s.Lock()
	s.items[key] = e
	s.Unlock()
	return nil
}

func (mc *MemoryCache[V]) Delete(_ context.Context, key string) error {
	s := mc.shardFor(key)
	s.Lock()
	delete(s.items, key)
	s.Unlock()
	return nil
}

func (mc *MemoryCache[V]) sweep() {
	now := mc.now()
	for _, s := range mc.shards {
		s.Lock()
		for k, e := range s.items {
			if e.expired(now) {
				delete(s.items, k)
			}
		}
		s.Unlock()
	}
}

func (mc *MemoryCache[V]) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			mc.sweep()
		case <-mc.quit:
			return
		}
	}
}
