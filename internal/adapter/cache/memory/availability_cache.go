package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/srgjo27/hotel_reservation/internal/core/ports"
)

type roomTypeKey struct {
	hotelID    uuid.UUID
	roomTypeID uuid.UUID
}

type cachedCount struct {
	free      int
	expiresAt time.Time
}

type generationEntries struct {
	generation int64
	entries    map[string]cachedCount
}

// AvailabilityCache is the in-process counterpart of the redis cache, for single
// process deployments. Only entries of a room type's current generation are kept.
type AvailabilityCache struct {
	mu    sync.Mutex
	rooms map[roomTypeKey]*generationEntries
	ttl   time.Duration
	now   func() time.Time
}

func NewAvailabilityCache(ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		rooms: make(map[roomTypeKey]*generationEntries),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (c *AvailabilityCache) room(key roomTypeKey) *generationEntries {
	g, ok := c.rooms[key]
	if !ok {
		g = &generationEntries{entries: make(map[string]cachedCount)}
		c.rooms[key] = g
	}
	return g
}

func (c *AvailabilityCache) Get(_ context.Context, hotelID, roomTypeID uuid.UUID, r domain.DateRange) (ports.CachedAvailability, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.room(roomTypeKey{hotelID, roomTypeID})
	result := ports.CachedAvailability{Generation: g.generation}

	entry, ok := g.entries[r.String()]
	if !ok {
		return result, nil
	}

	if !c.now().Before(entry.expiresAt) {
		delete(g.entries, r.String())
		return result, nil
	}

	result.Free = entry.free
	result.Hit = true
	return result, nil
}

func (c *AvailabilityCache) Set(_ context.Context, hotelID, roomTypeID uuid.UUID, r domain.DateRange, generation int64, free int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.room(roomTypeKey{hotelID, roomTypeID})
	if g.generation != generation {
		return nil
	}

	if _, exists := g.entries[r.String()]; !exists {
		g.entries[r.String()] = cachedCount{free: free, expiresAt: c.now().Add(c.ttl)}
	}

	return nil
}

func (c *AvailabilityCache) Invalidate(_ context.Context, hotelID, roomTypeID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.room(roomTypeKey{hotelID, roomTypeID})
	g.generation++
	g.entries = make(map[string]cachedCount)

	return nil
}
