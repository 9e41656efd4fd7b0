package services_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memorycache "github.com/srgjo27/hotel_reservation/internal/adapter/cache/memory"
	"github.com/srgjo27/hotel_reservation/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/srgjo27/hotel_reservation/internal/core/ports"
	"github.com/srgjo27/hotel_reservation/internal/core/services"
)

// pausingLedger holds the next ListOverlapping caller after it has taken its snapshot
// until release is closed.
type pausingLedger struct {
	*memory.ReservationLedger
	armed   atomic.Bool
	paused  chan struct{}
	release chan struct{}
}

func (l *pausingLedger) ListOverlapping(ctx context.Context, q ports.LedgerQuery) ([]domain.Reservation, error) {
	snapshot, err := l.ReservationLedger.ListOverlapping(ctx, q)
	if l.armed.CompareAndSwap(true, false) {
		close(l.paused)
		<-l.release
	}
	return snapshot, err
}

func newCachedService(t *testing.T) (*services.ReservationService, *pausingLedger, domain.RoomType) {
	t.Helper()

	hotelID := uuid.New()
	rt := domain.RoomType{ID: uuid.New(), HotelID: hotelID, Name: "Standard", NightlyRate: 10000, MaxOccupancy: 2, TotalRooms: 1}

	inventory := memory.NewInventoryStore()
	require.NoError(t, inventory.SaveHotel(context.Background(), domain.Hotel{ID: hotelID, Name: "Harbour View", RoomTypes: []domain.RoomType{rt}}))

	ledger := &pausingLedger{
		ReservationLedger: memory.NewReservationLedger(),
		paused:            make(chan struct{}),
		release:           make(chan struct{}),
	}

	svc := services.NewReservationService(inventory, ledger, memorycache.NewAvailabilityCache(time.Hour), nil, nil, services.Config{
		Now: func() time.Time { return testNow },
	})

	return svc, ledger, rt
}

func availabilityOf(t *testing.T, svc *services.ReservationService, rt domain.RoomType, in, out string) int {
	t.Helper()

	result, err := svc.GetAvailability(context.Background(), services.AvailabilityRequest{
		HotelID: rt.HotelID, RoomTypeID: rt.ID, CheckIn: day(in), CheckOut: day(out),
	})
	require.NoError(t, err)
	return result[0].Available
}

func TestGetAvailability_CancelDuringReadIsVisibleToNextRead(t *testing.T) {
	svc, ledger, rt := newCachedService(t)
	ctx := context.Background()
	owner := uuid.New()

	res, err := svc.CreateReservation(ctx, services.CreateReservationRequest{
		HotelID: rt.HotelID, RoomTypeID: rt.ID, UserID: owner,
		CheckIn: day("2025-03-10"), CheckOut: day("2025-03-12"), RoomCount: 1, GuestCount: 1,
	})
	require.NoError(t, err)

	ledger.armed.Store(true)
	staleRead := make(chan int, 1)
	go func() {
		result, err := svc.GetAvailability(ctx, services.AvailabilityRequest{
			HotelID: rt.HotelID, RoomTypeID: rt.ID, CheckIn: day("2025-03-10"), CheckOut: day("2025-03-12"),
		})
		if err != nil {
			staleRead <- -1
			return
		}
		staleRead <- result[0].Available
	}()

	<-ledger.paused
	_, err = svc.CancelReservation(ctx, res.ID, domain.Actor{ID: owner})
	require.NoError(t, err)
	close(ledger.release)

	assert.Equal(t, 0, <-staleRead, "the in-flight read saw the pre-cancel snapshot")
	assert.Equal(t, 1, availabilityOf(t, svc, rt, "2025-03-10", "2025-03-12"))
}

func TestGetAvailability_AdmissionDuringReadIsVisibleToNextRead(t *testing.T) {
	svc, ledger, rt := newCachedService(t)
	ctx := context.Background()

	ledger.armed.Store(true)
	staleRead := make(chan int, 1)
	go func() {
		result, err := svc.GetAvailability(ctx, services.AvailabilityRequest{
			HotelID: rt.HotelID, RoomTypeID: rt.ID, CheckIn: day("2025-03-10"), CheckOut: day("2025-03-12"),
		})
		if err != nil {
			staleRead <- -1
			return
		}
		staleRead <- result[0].Available
	}()

	<-ledger.paused
	_, err := svc.CreateReservation(ctx, services.CreateReservationRequest{
		HotelID: rt.HotelID, RoomTypeID: rt.ID, UserID: uuid.New(),
		CheckIn: day("2025-03-11"), CheckOut: day("2025-03-12"), RoomCount: 1, GuestCount: 1,
	})
	require.NoError(t, err)
	close(ledger.release)

	assert.Equal(t, 1, <-staleRead)
	assert.Equal(t, 0, availabilityOf(t, svc, rt, "2025-03-10", "2025-03-12"))
}
