package postgres_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/hotel_reservation/internal/adapter/repository/postgres"
	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/srgjo27/hotel_reservation/internal/core/ports"
)

var reservationCols = []string{
	"id", "hotel_id", "room_type_id", "user_id", "check_in", "check_out", "room_count", "guest_count",
	"unit_price", "total_price", "status", "created_at", "confirmed_at", "cancelled_at",
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:         uuid.New(),
		HotelID:    uuid.New(),
		RoomTypeID: uuid.New(),
		UserID:     uuid.New(),
		CheckIn:    date(2025, 3, 10),
		CheckOut:   date(2025, 3, 12),
		RoomCount:  1,
		GuestCount: 2,
		UnitPrice:  10000,
		TotalPrice: 20000,
		Status:     domain.ReservationPending,
		CreatedAt:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func reservationRow(r *domain.Reservation, status domain.ReservationStatus, cancelledAt any) []driver.Value {
	return []driver.Value{
		r.ID.String(), r.HotelID.String(), r.RoomTypeID.String(), r.UserID.String(),
		r.CheckIn, r.CheckOut, r.RoomCount, r.GuestCount, r.UnitPrice, r.TotalPrice,
		string(status), r.CreatedAt, r.CreatedAt, cancelledAt,
	}
}

func TestAppend_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ledger := postgres.NewReservationLedger(db)
	r := newReservation()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
		WithArgs(r.HotelID.String() + ":" + r.RoomTypeID.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE hotel_id = \\$1 AND status = 'confirmed' (.+) AND room_type_id = \\$4").
		WithArgs(r.HotelID, r.CheckIn, r.CheckOut, r.RoomTypeID).
		WillReturnRows(sqlmock.NewRows(reservationCols))
	mock.ExpectExec("INSERT INTO reservations").
		WithArgs(r.ID, r.HotelID, r.RoomTypeID, r.UserID, r.CheckIn, r.CheckOut, 1, 2, int64(10000), int64(20000),
			"confirmed", r.CreatedAt, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var seen []domain.Reservation
	err = ledger.Append(context.Background(), r, func(overlapping []domain.Reservation) error {
		seen = overlapping
		return nil
	})

	require.NoError(t, err)
	assert.Empty(t, seen)
	assert.Equal(t, domain.ReservationConfirmed, r.Status)
	assert.NotNil(t, r.ConfirmedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_CheckRejectsAndRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ledger := postgres.NewReservationLedger(db)
	r := newReservation()
	existing := newReservation()
	existing.HotelID, existing.RoomTypeID = r.HotelID, r.RoomTypeID

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE hotel_id").
		WillReturnRows(sqlmock.NewRows(reservationCols).AddRow(reservationRow(existing, domain.ReservationConfirmed, nil)...))
	mock.ExpectRollback()

	rejection := domain.NewError(domain.KindInsufficientAvailability, "sold out")

	err = ledger.Append(context.Background(), r, func(overlapping []domain.Reservation) error {
		require.Len(t, overlapping, 1)
		assert.Equal(t, existing.ID, overlapping[0].ID)
		assert.Equal(t, date(2025, 3, 10), overlapping[0].CheckIn)
		return rejection
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientAvailability)
	assert.Equal(t, domain.ReservationPending, r.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_LockFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ledger := postgres.NewReservationLedger(db)

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").WillReturnError(errors.New("canceling statement due to lock timeout"))
	mock.ExpectRollback()

	err = ledger.Append(context.Background(), newReservation(), func([]domain.Reservation) error {
		t.Fatal("check must not run without the lock")
		return nil
	})

	assert.ErrorContains(t, err, "lock timeout")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOverlapping_WholeHotel(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ledger := postgres.NewReservationLedger(db)
	r := newReservation()
	rng := domain.DateRange{CheckIn: date(2025, 3, 11), CheckOut: date(2025, 3, 15)}

	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE hotel_id = \\$1 AND status = 'confirmed' AND check_in < \\$3 AND \\$2 < check_out ORDER BY created_at, seq").
		WithArgs(r.HotelID, rng.CheckIn, rng.CheckOut).
		WillReturnRows(sqlmock.NewRows(reservationCols).AddRow(reservationRow(r, domain.ReservationConfirmed, nil)...))

	result, err := ledger.ListOverlapping(context.Background(), ports.LedgerQuery{HotelID: r.HotelID, Range: rng})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, r.RoomTypeID, result[0].RoomTypeID)
	assert.Nil(t, result[0].CancelledAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ledger := postgres.NewReservationLedger(db)
	r := newReservation()
	at := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery("UPDATE reservations SET status = 'cancelled', cancelled_at = \\$2 WHERE id = \\$1 AND status = 'confirmed' RETURNING").
		WithArgs(r.ID, at).
		WillReturnRows(sqlmock.NewRows(reservationCols).AddRow(reservationRow(r, domain.ReservationCancelled, at)...))

	updated, changed, err := ledger.Cancel(context.Background(), r.ID, at)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, domain.ReservationCancelled, updated.Status)
	require.NotNil(t, updated.CancelledAt)
	assert.Equal(t, at, *updated.CancelledAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ledger := postgres.NewReservationLedger(db)
	r := newReservation()
	at := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery("UPDATE reservations").WithArgs(r.ID, at).WillReturnRows(sqlmock.NewRows(reservationCols))
	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id = \\$1").
		WithArgs(r.ID).
		WillReturnRows(sqlmock.NewRows(reservationCols).AddRow(reservationRow(r, domain.ReservationCancelled, at)...))

	current, changed, err := ledger.Cancel(context.Background(), r.ID, at)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, domain.ReservationCancelled, current.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ledger := postgres.NewReservationLedger(db)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id = \\$1").WithArgs(id).WillReturnRows(sqlmock.NewRows(reservationCols))

	_, err = ledger.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ledger := postgres.NewReservationLedger(db)
	first, second := newReservation(), newReservation()
	second.UserID = first.UserID

	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE user_id = \\$1 ORDER BY created_at, seq").
		WithArgs(first.UserID).
		WillReturnRows(sqlmock.NewRows(reservationCols).
			AddRow(reservationRow(first, domain.ReservationConfirmed, nil)...).
			AddRow(reservationRow(second, domain.ReservationConfirmed, nil)...))

	result, err := ledger.ListByUser(context.Background(), first.UserID)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, first.ID, result[0].ID)
	assert.Equal(t, second.ID, result[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
