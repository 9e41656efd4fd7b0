package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID          uuid.UUID
	HotelID     uuid.UUID
	RoomTypeID  uuid.UUID
	UserID      uuid.UUID
	CheckIn     time.Time
	CheckOut    time.Time
	RoomCount   int
	GuestCount  int
	UnitPrice   int64
	TotalPrice  int64
	Status      ReservationStatus
	CreatedAt   time.Time
	ConfirmedAt *time.Time
	CancelledAt *time.Time
}

func (r *Reservation) Range() DateRange {
	return DateRange{CheckIn: r.CheckIn, CheckOut: r.CheckOut}
}

// ConsumesInventory reports whether the reservation holds room-nights.
// Pending reservations are never persisted and cancelled ones release their rooms.
func (r *Reservation) ConsumesInventory() bool {
	return r.Status == ReservationConfirmed
}

func (r *Reservation) OwnedBy(userID uuid.UUID) bool {
	return r.UserID == userID
}

// Actor is the caller identity resolved by the authentication layer.
type Actor struct {
	ID    uuid.UUID
	Admin bool
}

func (a Actor) CanManage(r *Reservation) bool {
	return a.Admin || r.OwnedBy(a.ID)
}
