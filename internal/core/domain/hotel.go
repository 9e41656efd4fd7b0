package domain

import (
	"github.com/google/uuid"
)

type Hotel struct {
	ID        uuid.UUID
	Name      string
	City      string
	Address   string
	RoomTypes []RoomType
}

type RoomType struct {
	ID           uuid.UUID
	HotelID      uuid.UUID
	Name         string
	NightlyRate  int64
	MaxOccupancy int
	TotalRooms   int
}

// Capacity is the number of guests roomCount rooms of this type can hold.
func (rt *RoomType) Capacity(roomCount int) int {
	return rt.MaxOccupancy * roomCount
}
