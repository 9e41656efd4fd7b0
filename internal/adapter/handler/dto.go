package handler

import (
	"time"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/srgjo27/hotel_reservation/internal/core/services"
)

type createReservationRequest struct {
	HotelID    string `json:"hotel_id" binding:"required"`
	RoomTypeID string `json:"room_type_id" binding:"required"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	RoomCount  int    `json:"room_count"`
	GuestCount int    `json:"guest_count"`
}

type reservationResponse struct {
	ID          string     `json:"id"`
	HotelID     string     `json:"hotel_id"`
	RoomTypeID  string     `json:"room_type_id"`
	UserID      string     `json:"user_id"`
	CheckIn     string     `json:"check_in"`
	CheckOut    string     `json:"check_out"`
	Nights      int        `json:"nights"`
	RoomCount   int        `json:"room_count"`
	GuestCount  int        `json:"guest_count"`
	UnitPrice   int64      `json:"unit_price"`
	TotalPrice  int64      `json:"total_price"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

func toReservationResponse(r *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:          r.ID.String(),
		HotelID:     r.HotelID.String(),
		RoomTypeID:  r.RoomTypeID.String(),
		UserID:      r.UserID.String(),
		CheckIn:     r.CheckIn.Format(domain.DateLayout),
		CheckOut:    r.CheckOut.Format(domain.DateLayout),
		Nights:      r.Range().Nights(),
		RoomCount:   r.RoomCount,
		GuestCount:  r.GuestCount,
		UnitPrice:   r.UnitPrice,
		TotalPrice:  r.TotalPrice,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		ConfirmedAt: r.ConfirmedAt,
		CancelledAt: r.CancelledAt,
	}
}

type availabilityResponse struct {
	HotelID   string                      `json:"hotel_id"`
	CheckIn   string                      `json:"check_in"`
	CheckOut  string                      `json:"check_out"`
	RoomTypes []services.RoomAvailability `json:"room_types"`
}
