package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/srgjo27/hotel_reservation/internal/core/services"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
	roleAdmin      = "admin"
)

type ReservationHandler struct {
	svc *services.ReservationService
}

func NewReservationHandler(svc *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

// actor reads the identity forwarded by the auth gateway. It writes a 401 and
// returns false when the identity is missing.
func actor(c *gin.Context) (domain.Actor, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.GetHeader(headerUserID)))
	if err != nil {
		c.JSON(http.StatusUnauthorized, errorResponse{
			Error: "missing or malformed " + headerUserID + " header",
			Code:  codeUnauthenticated,
		})
		return domain.Actor{}, false
	}

	return domain.Actor{
		ID:    id,
		Admin: strings.EqualFold(strings.TrimSpace(c.GetHeader(headerUserRole)), roleAdmin),
	}, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func (h *ReservationHandler) GetAvailability(c *gin.Context) {
	hotelID, ok := pathUUID(c, "hotelId")
	if !ok {
		return
	}

	var roomTypeID uuid.UUID
	if raw := c.Query("room_type_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, "invalid room_type_id")
			return
		}
		roomTypeID = id
	}

	rng, err := domain.ParseDateRange(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		respondError(c, err)
		return
	}

	rooms, err := h.svc.GetAvailability(c.Request.Context(), services.AvailabilityRequest{
		HotelID:    hotelID,
		RoomTypeID: roomTypeID,
		CheckIn:    rng.CheckIn,
		CheckOut:   rng.CheckOut,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, availabilityResponse{
		HotelID:   hotelID.String(),
		CheckIn:   rng.CheckIn.Format(domain.DateLayout),
		CheckOut:  rng.CheckOut.Format(domain.DateLayout),
		RoomTypes: rooms,
	})
}

func (h *ReservationHandler) Quote(c *gin.Context) {
	roomTypeID, err := uuid.Parse(c.Query("room_type_id"))
	if err != nil {
		badRequest(c, "invalid room_type_id")
		return
	}

	rng, err := domain.ParseDateRange(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		respondError(c, err)
		return
	}

	roomCount := 1
	if raw := c.Query("room_count"); raw != "" {
		if roomCount, err = strconv.Atoi(raw); err != nil {
			respondError(c, domain.NewError(domain.KindInvalidPartySize, "room_count must be a number"))
			return
		}
	}

	quote, err := h.svc.Quote(c.Request.Context(), services.QuoteRequest{
		RoomTypeID: roomTypeID,
		CheckIn:    rng.CheckIn,
		CheckOut:   rng.CheckOut,
		RoomCount:  roomCount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}

	hotelID, err := uuid.Parse(req.HotelID)
	if err != nil {
		badRequest(c, "invalid hotel_id")
		return
	}

	roomTypeID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		badRequest(c, "invalid room_type_id")
		return
	}

	rng, err := domain.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		respondError(c, err)
		return
	}

	reservation, err := h.svc.CreateReservation(c.Request.Context(), services.CreateReservationRequest{
		HotelID:    hotelID,
		RoomTypeID: roomTypeID,
		UserID:     who.ID,
		CheckIn:    rng.CheckIn,
		CheckOut:   rng.CheckOut,
		RoomCount:  req.RoomCount,
		GuestCount: req.GuestCount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toReservationResponse(reservation))
}

func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	reservation, err := h.svc.CancelReservation(c.Request.Context(), id, who)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponse(reservation))
}

func (h *ReservationHandler) ListUserReservations(c *gin.Context) {
	who, ok := actor(c)
	if !ok {
		return
	}

	userID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if !who.Admin && who.ID != userID {
		respondError(c, domain.NewError(domain.KindUnauthorized, "reservations of other users are not visible"))
		return
	}

	reservations, err := h.svc.ListUserReservations(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]reservationResponse, 0, len(reservations))
	for i := range reservations {
		resp = append(resp, toReservationResponse(&reservations[i]))
	}

	c.JSON(http.StatusOK, gin.H{"reservations": resp})
}
