package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/srgjo27/hotel_reservation/internal/core/ports"
)

type AvailabilityRequest struct {
	HotelID    uuid.UUID
	RoomTypeID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
}

type QuoteRequest struct {
	RoomTypeID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	RoomCount  int
}

type CreateReservationRequest struct {
	HotelID    uuid.UUID
	RoomTypeID uuid.UUID
	UserID     uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	RoomCount  int
	GuestCount int
}

type Config struct {
	// FreeCancellationWindow is added to the check-in date to get the cancellation deadline.
	// Negative values require cancelling before arrival.
	FreeCancellationWindow time.Duration
	Now                    func() time.Time
}

type ReservationService struct {
	inventory ports.InventoryStore
	ledger    ports.ReservationLedger
	cache     ports.AvailabilityCache
	publisher ports.EventPublisher
	logger    *zap.Logger
	cfg       Config
}

func NewReservationService(
	inventory ports.InventoryStore,
	ledger ports.ReservationLedger,
	cache ports.AvailabilityCache,
	publisher ports.EventPublisher,
	logger *zap.Logger,
	cfg Config,
) *ReservationService {
	if cache == nil {
		cache = noopCache{}
	}

	if publisher == nil {
		publisher = noopPublisher{}
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &ReservationService{
		inventory: inventory,
		ledger:    ledger,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

func (s *ReservationService) now() time.Time {
	return s.cfg.Now().UTC()
}

// GetAvailability annotates the requested room types with their free room count.
// Past ranges are allowed. A uuid.Nil RoomTypeID covers every room type of the hotel,
// computed from one ledger snapshot.
func (s *ReservationService) GetAvailability(ctx context.Context, req AvailabilityRequest) ([]RoomAvailability, error) {
	rng, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	if req.RoomTypeID != uuid.Nil {
		rt, err := s.inventory.GetRoomType(ctx, req.HotelID, req.RoomTypeID)
		if err != nil {
			return nil, domain.StorageUnavailable(err)
		}

		free, err := s.availableRooms(ctx, *rt, rng)
		if err != nil {
			return nil, err
		}

		return []RoomAvailability{toRoomAvailability(*rt, free)}, nil
	}

	roomTypes, err := s.inventory.ListRoomTypes(ctx, req.HotelID)
	if err != nil {
		return nil, domain.StorageUnavailable(err)
	}

	snapshot, err := s.ledger.ListOverlapping(ctx, ports.LedgerQuery{HotelID: req.HotelID, Range: rng})
	if err != nil {
		return nil, domain.StorageUnavailable(err)
	}

	result := make([]RoomAvailability, 0, len(roomTypes))
	for _, rt := range roomTypes {
		result = append(result, toRoomAvailability(rt, AvailableRooms(rt, snapshot, rng)))
	}

	return result, nil
}

// availableRooms is the advisory read path: cache first, then a single ledger snapshot.
// The cache generation is read before the snapshot, so a write-back computed from a
// snapshot that predates a commit lands in a generation no later read consults.
func (s *ReservationService) availableRooms(ctx context.Context, rt domain.RoomType, rng domain.DateRange) (int, error) {
	cached, cacheErr := s.cache.Get(ctx, rt.HotelID, rt.ID, rng)
	if cacheErr != nil {
		s.logger.Warn("availability cache read failed",
			zap.String("room_type_id", rt.ID.String()),
			zap.Error(cacheErr))
	} else if cached.Hit {
		return cached.Free, nil
	}

	snapshot, err := s.ledger.ListOverlapping(ctx, ports.LedgerQuery{HotelID: rt.HotelID, RoomTypeID: rt.ID, Range: rng})
	if err != nil {
		return 0, domain.StorageUnavailable(err)
	}

	free := AvailableRooms(rt, snapshot, rng)

	// without a generation the write-back could outlive a concurrent invalidation
	if cacheErr != nil {
		return free, nil
	}

	if err := s.cache.Set(ctx, rt.HotelID, rt.ID, rng, cached.Generation, free); err != nil {
		s.logger.Warn("availability cache write failed",
			zap.String("room_type_id", rt.ID.String()),
			zap.Error(err))
	}

	return free, nil
}

func (s *ReservationService) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	rng, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	rt, err := s.inventory.FindRoomType(ctx, req.RoomTypeID)
	if err != nil {
		return nil, domain.StorageUnavailable(err)
	}

	if req.RoomCount > rt.TotalRooms {
		return nil, domain.NewError(domain.KindInvalidPartySize,
			fmt.Sprintf("%s has only %d room(s), requested %d", rt.Name, rt.TotalRooms, req.RoomCount))
	}

	total, err := Price(*rt, rng, req.RoomCount)
	if err != nil {
		return nil, err
	}

	return &Quote{
		RoomTypeID: rt.ID.String(),
		CheckIn:    rng.CheckIn.Format(domain.DateLayout),
		CheckOut:   rng.CheckOut.Format(domain.DateLayout),
		Nights:     rng.Nights(),
		RoomCount:  req.RoomCount,
		UnitPrice:  rt.NightlyRate,
		TotalPrice: total,
	}, nil
}

// CreateReservation admits or rejects a booking. The availability re-check and the
// ledger append happen as one unit per room type; nothing is written on rejection.
func (s *ReservationService) CreateReservation(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	a := newAdmission(s.logger, req)
	a.to(stateValidating)

	rng, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, a.reject(err)
	}

	now := s.now()
	if rng.CheckIn.Before(domain.Date(now)) {
		return nil, a.reject(domain.NewError(domain.KindInvalidDateRange, "check-in must not be in the past"))
	}

	if req.RoomCount < 1 {
		return nil, a.reject(domain.NewError(domain.KindInvalidPartySize, "at least one room is required"))
	}

	if req.GuestCount < 1 {
		return nil, a.reject(domain.NewError(domain.KindInvalidPartySize, "at least one guest is required"))
	}

	rt, err := s.inventory.GetRoomType(ctx, req.HotelID, req.RoomTypeID)
	if err != nil {
		return nil, a.reject(domain.StorageUnavailable(err))
	}

	if req.GuestCount > rt.Capacity(req.RoomCount) {
		return nil, a.reject(domain.NewError(domain.KindInvalidPartySize,
			fmt.Sprintf("%d guest(s) exceed the capacity of %d %s room(s)", req.GuestCount, req.RoomCount, rt.Name)))
	}

	total, err := Price(*rt, rng, req.RoomCount)
	if err != nil {
		return nil, a.reject(err)
	}

	reservation := &domain.Reservation{
		ID:         uuid.New(),
		HotelID:    rt.HotelID,
		RoomTypeID: rt.ID,
		UserID:     req.UserID,
		CheckIn:    rng.CheckIn,
		CheckOut:   rng.CheckOut,
		RoomCount:  req.RoomCount,
		GuestCount: req.GuestCount,
		UnitPrice:  rt.NightlyRate,
		TotalPrice: total,
		Status:     domain.ReservationPending,
		CreatedAt:  now,
	}

	err = s.ledger.Append(ctx, reservation, func(overlapping []domain.Reservation) error {
		free := AvailableRooms(*rt, overlapping, rng)
		if free < req.RoomCount {
			return domain.NewError(domain.KindInsufficientAvailability,
				fmt.Sprintf("only %d %s room(s) left for %s, requested %d", free, rt.Name, rng, req.RoomCount))
		}
		return nil
	})
	if err != nil {
		return nil, a.reject(domain.StorageUnavailable(err))
	}

	a.admit(reservation)

	s.afterCommit(ctx, reservation, domain.EventReservationConfirmed)

	return reservation, nil
}

func (s *ReservationService) CancelReservation(ctx context.Context, reservationID uuid.UUID, actor domain.Actor) (*domain.Reservation, error) {
	reservation, err := s.ledger.GetByID(ctx, reservationID)
	if err != nil {
		return nil, domain.StorageUnavailable(err)
	}

	if !actor.CanManage(reservation) {
		return nil, domain.NewError(domain.KindUnauthorized, "only the reservation owner or an administrator may cancel it")
	}

	if reservation.Status == domain.ReservationCancelled {
		return reservation, nil
	}

	now := s.now()
	deadline := reservation.CheckIn.Add(s.cfg.FreeCancellationWindow)
	if !now.Before(deadline) {
		return nil, domain.NewError(domain.KindCancellationWindowClosed,
			fmt.Sprintf("free cancellation ended at %s", deadline.Format(time.RFC3339)))
	}

	updated, changed, err := s.ledger.Cancel(ctx, reservationID, now)
	if err != nil {
		return nil, domain.StorageUnavailable(err)
	}

	if changed {
		s.logger.Info("reservation cancelled",
			zap.String("reservation_id", updated.ID.String()),
			zap.String("actor_id", actor.ID.String()),
			zap.Bool("admin", actor.Admin))

		s.afterCommit(ctx, updated, domain.EventReservationCancelled)
	}

	return updated, nil
}

// ListUserReservations returns the user's reservations in creation order.
func (s *ReservationService) ListUserReservations(ctx context.Context, userID uuid.UUID) ([]domain.Reservation, error) {
	reservations, err := s.ledger.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.StorageUnavailable(err)
	}

	return reservations, nil
}

// afterCommit drops stale cached availability and announces the change. Neither step
// can undo the committed ledger write, so failures are only logged.
func (s *ReservationService) afterCommit(ctx context.Context, r *domain.Reservation, event domain.EventType) {
	if err := s.cache.Invalidate(ctx, r.HotelID, r.RoomTypeID); err != nil {
		s.logger.Warn("availability cache invalidation failed",
			zap.String("room_type_id", r.RoomTypeID.String()),
			zap.Error(err))
	}

	err := s.publisher.Publish(ctx, domain.ReservationEvent{
		Type:        event,
		Reservation: *r,
		OccurredAt:  s.now(),
	})
	if err != nil {
		s.logger.Error("failed to publish reservation event",
			zap.String("event", string(event)),
			zap.String("reservation_id", r.ID.String()),
			zap.Error(err))
	}
}

func toRoomAvailability(rt domain.RoomType, free int) RoomAvailability {
	return RoomAvailability{
		RoomTypeID:   rt.ID.String(),
		RoomTypeName: rt.Name,
		TotalRooms:   rt.TotalRooms,
		Available:    free,
		NightlyRate:  rt.NightlyRate,
	}
}
