package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/domain/shipping"
)

type zoneEntry struct {
	zones     []shipping.ShippingZone
	expiresAt time.Time
}

// InMemoryZoneCache implements shipping.ZoneCache with a process-local map.
// A janitor goroutine evicts expired entries until Close is called.
type InMemoryZoneCache struct {
	mu        sync.RWMutex
	entries   map[uuid.UUID]zoneEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryZoneCache creates the cache and starts its janitor
func NewInMemoryZoneCache(cleanupInterval time.Duration) *InMemoryZoneCache {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	c := &InMemoryZoneCache{
		entries:  make(map[uuid.UUID]zoneEntry),
		stopChan: make(chan struct{}),
	}

	c.wg.Add(1)
	go c.cleanupLoop(cleanupInterval)

	return c
}

// Get returns a copy of the cached zones
func (c *InMemoryZoneCache) Get(_ context.Context, warehouseID uuid.UUID) ([]shipping.ShippingZone, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[warehouseID]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false, nil
	}
	return cloneZones(e.zones), true, nil
}

// Set stores a copy of zones for ttl
func (c *InMemoryZoneCache) Set(_ context.Context, warehouseID uuid.UUID, zones []shipping.ShippingZone, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[warehouseID] = zoneEntry{
		zones:     cloneZones(zones),
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Invalidate drops the entry of a warehouse
func (c *InMemoryZoneCache) Invalidate(_ context.Context, warehouseID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, warehouseID)
	return nil
}

// Close stops the janitor. Safe to call multiple times.
func (c *InMemoryZoneCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
		c.wg.Wait()
	})
	return nil
}

// Size returns the number of entries, expired ones included
func (c *InMemoryZoneCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *InMemoryZoneCache) cleanupLoop(interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *InMemoryZoneCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for id, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, id)
		}
	}
}

func cloneZones(zones []shipping.ShippingZone) []shipping.ShippingZone {
	if zones == nil {
		return []shipping.ShippingZone{}
	}
	out := make([]shipping.ShippingZone, len(zones))
	copy(out, zones)
	return out
}

// Ensure InMemoryZoneCache implements shipping.ZoneCache
var _ shipping.ZoneCache = (*InMemoryZoneCache)(nil)
