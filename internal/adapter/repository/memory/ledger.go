package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/srgjo27/hotel_reservation/internal/core/ports"
)

type roomTypeKey struct {
	hotelID    uuid.UUID
	roomTypeID uuid.UUID
}

// ReservationLedger keeps reservations in append order. Admissions for one room type
// are serialized by that room type's mutex; mu only guards the slice and index and is
// never held while an admission check runs.
type ReservationLedger struct {
	admissions sync.Map // roomTypeKey -> *sync.Mutex

	mu           sync.RWMutex
	reservations []*domain.Reservation
	byID         map[uuid.UUID]*domain.Reservation

	now func() time.Time
}

func NewReservationLedger() *ReservationLedger {
	return &ReservationLedger{
		byID: make(map[uuid.UUID]*domain.Reservation),
		now:  time.Now,
	}
}

func (l *ReservationLedger) admissionLock(key roomTypeKey) *sync.Mutex {
	m, _ := l.admissions.LoadOrStore(key, &sync.Mutex{})
	return m.(*sync.Mutex)
}

func (l *ReservationLedger) ListOverlapping(_ context.Context, q ports.LedgerQuery) ([]domain.Reservation, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.overlapping(q), nil
}

func (l *ReservationLedger) overlapping(q ports.LedgerQuery) []domain.Reservation {
	var result []domain.Reservation

	for _, r := range l.reservations {
		if r.HotelID != q.HotelID || !r.ConsumesInventory() {
			continue
		}

		if !q.AllRoomTypes() && r.RoomTypeID != q.RoomTypeID {
			continue
		}

		if r.Range().Overlaps(q.Range) {
			result = append(result, *r)
		}
	}

	return result
}

func (l *ReservationLedger) Append(ctx context.Context, reservation *domain.Reservation, check ports.AdmissionCheck) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock := l.admissionLock(roomTypeKey{hotelID: reservation.HotelID, roomTypeID: reservation.RoomTypeID})
	lock.Lock()
	defer lock.Unlock()

	l.mu.RLock()
	snapshot := l.overlapping(ports.LedgerQuery{
		HotelID:    reservation.HotelID,
		RoomTypeID: reservation.RoomTypeID,
		Range:      reservation.Range(),
	})
	l.mu.RUnlock()

	if err := check(snapshot); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	confirmedAt := l.now().UTC()
	reservation.Status = domain.ReservationConfirmed
	reservation.ConfirmedAt = &confirmedAt

	stored := *reservation
	l.reservations = append(l.reservations, &stored)
	l.byID[stored.ID] = &stored

	return nil
}

func (l *ReservationLedger) GetByID(_ context.Context, reservationID uuid.UUID) (*domain.Reservation, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	r, ok := l.byID[reservationID]
	if !ok {
		return nil, domain.NotFound("reservation not found")
	}

	found := *r
	return &found, nil
}

func (l *ReservationLedger) Cancel(_ context.Context, reservationID uuid.UUID, at time.Time) (*domain.Reservation, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := l.byID[reservationID]
	if !ok {
		return nil, false, domain.NotFound("reservation not found")
	}

	if r.Status != domain.ReservationConfirmed {
		current := *r
		return &current, false, nil
	}

	cancelledAt := at.UTC()
	r.Status = domain.ReservationCancelled
	r.CancelledAt = &cancelledAt

	updated := *r
	return &updated, true, nil
}

func (l *ReservationLedger) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Reservation, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var result []domain.Reservation
	for _, r := range l.reservations {
		if r.UserID == userID {
			result = append(result, *r)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}
