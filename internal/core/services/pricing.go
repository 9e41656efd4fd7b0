package services

import (
	"math"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
)

type Quote struct {
	RoomTypeID string `json:"room_type_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Nights     int    `json:"nights"`
	RoomCount  int    `json:"room_count"`
	UnitPrice  int64  `json:"unit_price"`
	TotalPrice int64  `json:"total_price"`
}

// Price is nightly rate x nights x rooms, in the rate's minor units.
func Price(rt domain.RoomType, r domain.DateRange, roomCount int) (int64, error) {
	nights := r.Nights()
	if nights < 1 {
		return 0, domain.NewError(domain.KindInvalidDateRange, "stay must be at least one night")
	}

	if roomCount < 1 {
		return 0, domain.NewError(domain.KindInvalidPartySize, "at least one room is required")
	}

	perRoom, ok := mulNonNegative(rt.NightlyRate, int64(nights))
	if !ok {
		return 0, domain.NewError(domain.KindInvalidDateRange, "stay is too long to price")
	}

	total, ok := mulNonNegative(perRoom, int64(roomCount))
	if !ok {
		return 0, domain.NewError(domain.KindInvalidPartySize, "room count is too large to price")
	}

	return total, nil
}

// mulNonNegative multiplies a >= 0 by b > 0, reporting false on int64 overflow.
func mulNonNegative(a, b int64) (int64, bool) {
	if a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}
