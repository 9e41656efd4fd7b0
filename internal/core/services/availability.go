package services

import (
	"sort"
	"time"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
)

type RoomAvailability struct {
	RoomTypeID   string `json:"room_type_id"`
	RoomTypeName string `json:"room_type_name"`
	TotalRooms   int    `json:"total_rooms"`
	Available    int    `json:"available"`
	NightlyRate  int64  `json:"nightly_rate"`
}

// AvailableRooms returns how many rooms of rt are free on every night of r.
// Only confirmed reservations of rt are counted; anything else in reservations is ignored.
func AvailableRooms(rt domain.RoomType, reservations []domain.Reservation, r domain.DateRange) int {
	free := rt.TotalRooms - peakOccupancy(rt, reservations, r)
	if free < 0 {
		return 0
	}

	return free
}

type occupancyDelta struct {
	day   time.Time
	rooms int
}

// peakOccupancy is the highest number of rooms held on any single night of r.
func peakOccupancy(rt domain.RoomType, reservations []domain.Reservation, r domain.DateRange) int {
	deltas := make([]occupancyDelta, 0, 2*len(reservations))

	for i := range reservations {
		res := &reservations[i]
		if res.RoomTypeID != rt.ID || !res.ConsumesInventory() || !res.Range().Overlaps(r) {
			continue
		}

		start, end := res.CheckIn, res.CheckOut
		if start.Before(r.CheckIn) {
			start = r.CheckIn
		}
		if end.After(r.CheckOut) {
			end = r.CheckOut
		}

		deltas = append(deltas,
			occupancyDelta{day: start, rooms: res.RoomCount},
			occupancyDelta{day: end, rooms: -res.RoomCount},
		)
	}

	// departures sort ahead of arrivals on the same day: a checkout frees the room for that night
	sort.Slice(deltas, func(i, j int) bool {
		if !deltas[i].day.Equal(deltas[j].day) {
			return deltas[i].day.Before(deltas[j].day)
		}
		return deltas[i].rooms < deltas[j].rooms
	})

	var peak, held int
	for _, d := range deltas {
		held += d.rooms
		if held > peak {
			peak = held
		}
	}

	return peak
}
