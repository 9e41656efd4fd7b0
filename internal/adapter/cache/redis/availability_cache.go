package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/srgjo27/hotel_reservation/internal/core/ports"
)

// AvailabilityCache keeps a generation counter per room type and one hash per
// generation with a field per date range. Invalidate bumps the counter, so hashes of
// older generations are never read again and simply expire.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func generationKey(hotelID, roomTypeID uuid.UUID) string {
	return fmt.Sprintf("availability:gen:%s:%s", hotelID, roomTypeID)
}

func availabilityKey(hotelID, roomTypeID uuid.UUID, generation int64) string {
	return fmt.Sprintf("availability:%s:%s:%d", hotelID, roomTypeID, generation)
}

func rangeField(r domain.DateRange) string {
	return r.String()
}

func (c *AvailabilityCache) generation(ctx context.Context, hotelID, roomTypeID uuid.UUID) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(hotelID, roomTypeID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return gen, err
}

func (c *AvailabilityCache) Get(ctx context.Context, hotelID, roomTypeID uuid.UUID, r domain.DateRange) (ports.CachedAvailability, error) {
	gen, err := c.generation(ctx, hotelID, roomTypeID)
	if err != nil {
		return ports.CachedAvailability{}, err
	}

	val, err := c.client.HGet(ctx, availabilityKey(hotelID, roomTypeID, gen), rangeField(r)).Result()
	if errors.Is(err, redis.Nil) {
		return ports.CachedAvailability{Generation: gen}, nil
	}

	if err != nil {
		return ports.CachedAvailability{}, err
	}

	free, err := strconv.Atoi(val)
	if err != nil {
		return ports.CachedAvailability{}, fmt.Errorf("corrupt cached availability %q: %w", val, err)
	}

	return ports.CachedAvailability{Free: free, Hit: true, Generation: gen}, nil
}

// Set writes into the hash of the given generation. The TTL is only applied when the
// hash is created, so later writes never extend the life of earlier fields.
func (c *AvailabilityCache) Set(ctx context.Context, hotelID, roomTypeID uuid.UUID, r domain.DateRange, generation int64, free int) error {
	key := availabilityKey(hotelID, roomTypeID, generation)

	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, rangeField(r), free)
		pipe.ExpireNX(ctx, key, c.ttl)
		return nil
	})

	return err
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, hotelID, roomTypeID uuid.UUID) error {
	return c.client.Incr(ctx, generationKey(hotelID, roomTypeID)).Err()
}
