package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_reservation/internal/core/domain"
)

type InventoryStore interface {
	GetRoomType(ctx context.Context, hotelID, roomTypeID uuid.UUID) (*domain.RoomType, error)
	FindRoomType(ctx context.Context, roomTypeID uuid.UUID) (*domain.RoomType, error)
	ListRoomTypes(ctx context.Context, hotelID uuid.UUID) ([]domain.RoomType, error)
}

type InventoryProvisioner interface {
	SaveHotel(ctx context.Context, hotel domain.Hotel) error
}

// LedgerQuery selects reservations overlapping Range. A uuid.Nil RoomTypeID selects every room type of the hotel.
type LedgerQuery struct {
	HotelID    uuid.UUID
	RoomTypeID uuid.UUID
	Range      domain.DateRange
}

func (q LedgerQuery) AllRoomTypes() bool {
	return q.RoomTypeID == uuid.Nil
}

// AdmissionCheck runs while the ledger holds exclusive admission rights for the
// reservation's room type. It receives every confirmed reservation of that room
// type overlapping the new one; a non-nil error aborts the append.
type AdmissionCheck func(overlapping []domain.Reservation) error

// ReservationLedger reads only ever return confirmed reservations from ListOverlapping.
type ReservationLedger interface {
	ListOverlapping(ctx context.Context, q LedgerQuery) ([]domain.Reservation, error)
	Append(ctx context.Context, reservation *domain.Reservation, check AdmissionCheck) error
	GetByID(ctx context.Context, reservationID uuid.UUID) (*domain.Reservation, error)
	// Cancel flips a confirmed reservation to cancelled. changed is false when it was not confirmed.
	Cancel(ctx context.Context, reservationID uuid.UUID, at time.Time) (reservation *domain.Reservation, changed bool, err error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Reservation, error)
}

// CachedAvailability is the result of a cache lookup. Generation identifies the room
// type's cache epoch at lookup time and must be passed back to Set.
type CachedAvailability struct {
	Free       int
	Hit        bool
	Generation int64
}

// AvailabilityCache entries are scoped to a per-room-type generation. Invalidate advances
// the generation, so a Set computed from a snapshot taken before an invalidation is never
// served afterwards.
type AvailabilityCache interface {
	Get(ctx context.Context, hotelID, roomTypeID uuid.UUID, r domain.DateRange) (CachedAvailability, error)
	Set(ctx context.Context, hotelID, roomTypeID uuid.UUID, r domain.DateRange, generation int64, free int) error
	Invalidate(ctx context.Context, hotelID, roomTypeID uuid.UUID) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.ReservationEvent) error
}
