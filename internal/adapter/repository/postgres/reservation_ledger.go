package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/srgjo27/hotel_reservation/internal/core/ports"
)

const reservationColumns = `id, hotel_id, room_type_id, user_id, check_in, check_out, room_count, guest_count,
	unit_price, total_price, status, created_at, confirmed_at, cancelled_at`

type ReservationLedger struct {
	db  *sql.DB
	now func() time.Time
}

func NewReservationLedger(db *sql.DB) *ReservationLedger {
	return &ReservationLedger{db: db, now: time.Now}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (domain.Reservation, error) {
	var r domain.Reservation
	var status string
	var confirmedAt, cancelledAt sql.NullTime

	err := row.Scan(
		&r.ID,
		&r.HotelID,
		&r.RoomTypeID,
		&r.UserID,
		&r.CheckIn,
		&r.CheckOut,
		&r.RoomCount,
		&r.GuestCount,
		&r.UnitPrice,
		&r.TotalPrice,
		&status,
		&r.CreatedAt,
		&confirmedAt,
		&cancelledAt,
	)
	if err != nil {
		return domain.Reservation{}, err
	}

	r.Status = domain.ReservationStatus(status)
	r.CheckIn = domain.Date(r.CheckIn)
	r.CheckOut = domain.Date(r.CheckOut)

	if confirmedAt.Valid {
		r.ConfirmedAt = &confirmedAt.Time
	}

	if cancelledAt.Valid {
		r.CancelledAt = &cancelledAt.Time
	}

	return r, nil
}

func scanReservations(rows *sql.Rows) ([]domain.Reservation, error) {
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}

		reservations = append(reservations, r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func listOverlapping(ctx context.Context, q queryer, lq ports.LedgerQuery) ([]domain.Reservation, error) {
	query := `
	SELECT ` + reservationColumns + `
	FROM reservations
	WHERE hotel_id = $1 AND status = 'confirmed' AND check_in < $3 AND $2 < check_out
	`
	args := []any{lq.HotelID, lq.Range.CheckIn, lq.Range.CheckOut}

	if !lq.AllRoomTypes() {
		query += ` AND room_type_id = $4`
		args = append(args, lq.RoomTypeID)
	}

	query += ` ORDER BY created_at, seq`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping reservations: %w", err)
	}

	return scanReservations(rows)
}

// ListOverlapping runs as one statement, so every row comes from the same snapshot.
func (l *ReservationLedger) ListOverlapping(ctx context.Context, q ports.LedgerQuery) ([]domain.Reservation, error) {
	return listOverlapping(ctx, l.db, q)
}

func admissionLockKey(hotelID, roomTypeID uuid.UUID) string {
	return hotelID.String() + ":" + roomTypeID.String()
}

// Append holds a transaction-scoped advisory lock on the reservation's room type while it
// re-reads the overlapping reservations, runs check and inserts the row. Admissions for other
// room types take different locks and never wait on this one.
func (l *ReservationLedger) Append(ctx context.Context, reservation *domain.Reservation, check ports.AdmissionCheck) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	lockKey := admissionLockKey(reservation.HotelID, reservation.RoomTypeID)
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
		return fmt.Errorf("failed to lock room type %s: %w", lockKey, err)
	}

	overlapping, err := listOverlapping(ctx, tx, ports.LedgerQuery{
		HotelID:    reservation.HotelID,
		RoomTypeID: reservation.RoomTypeID,
		Range:      reservation.Range(),
	})
	if err != nil {
		return err
	}

	if err := check(overlapping); err != nil {
		return err
	}

	confirmedAt := l.now().UTC()

	query := `
	INSERT INTO reservations (` + reservationColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NULL)
	`

	_, err = tx.ExecContext(ctx, query,
		reservation.ID,
		reservation.HotelID,
		reservation.RoomTypeID,
		reservation.UserID,
		reservation.CheckIn,
		reservation.CheckOut,
		reservation.RoomCount,
		reservation.GuestCount,
		reservation.UnitPrice,
		reservation.TotalPrice,
		domain.ReservationConfirmed,
		reservation.CreatedAt,
		confirmedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	reservation.Status = domain.ReservationConfirmed
	reservation.ConfirmedAt = &confirmedAt

	return nil
}

func (l *ReservationLedger) GetByID(ctx context.Context, reservationID uuid.UUID) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	r, err := scanReservation(l.db.QueryRowContext(ctx, query, reservationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("reservation not found")
		}

		return nil, fmt.Errorf("failed to get reservation %s: %w", reservationID, err)
	}

	return &r, nil
}

func (l *ReservationLedger) Cancel(ctx context.Context, reservationID uuid.UUID, at time.Time) (*domain.Reservation, bool, error) {
	query := `
	UPDATE reservations
	SET status = 'cancelled', cancelled_at = $2
	WHERE id = $1 AND status = 'confirmed'
	RETURNING ` + reservationColumns

	r, err := scanReservation(l.db.QueryRowContext(ctx, query, reservationID, at.UTC()))
	if err == nil {
		return &r, true, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to cancel reservation %s: %w", reservationID, err)
	}

	current, err := l.GetByID(ctx, reservationID)
	if err != nil {
		return nil, false, err
	}

	return current, false, nil
}

func (l *ReservationLedger) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE user_id = $1 ORDER BY created_at, seq`

	rows, err := l.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations of user %s: %w", userID, err)
	}

	return scanReservations(rows)
}
