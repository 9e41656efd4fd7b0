package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/srgjo27/hotel_reservation/internal/core/ports"
)

type noopCache struct{}

func (noopCache) Get(context.Context, uuid.UUID, uuid.UUID, domain.DateRange) (ports.CachedAvailability, error) {
	return ports.CachedAvailability{}, nil
}

func (noopCache) Set(context.Context, uuid.UUID, uuid.UUID, domain.DateRange, int64, int) error {
	return nil
}

func (noopCache) Invalidate(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, domain.ReservationEvent) error {
	return nil
}
