package domain

import "time"

type EventType string

const (
	EventReservationConfirmed EventType = "reservation.confirmed"
	EventReservationCancelled EventType = "reservation.cancelled"
)

type ReservationEvent struct {
	Type        EventType
	Reservation Reservation
	OccurredAt  time.Time
}
