package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
)

const roomTypeColumns = `id, hotel_id, name, nightly_rate, max_occupancy, total_rooms`

type InventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func scanRoomType(row rowScanner) (domain.RoomType, error) {
	var rt domain.RoomType

	err := row.Scan(
		&rt.ID,
		&rt.HotelID,
		&rt.Name,
		&rt.NightlyRate,
		&rt.MaxOccupancy,
		&rt.TotalRooms,
	)

	return rt, err
}

func (r *InventoryRepository) getRoomType(ctx context.Context, query string, args ...any) (*domain.RoomType, error) {
	rt, err := scanRoomType(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("room type not found")
		}

		return nil, fmt.Errorf("failed to get room type: %w", err)
	}

	return &rt, nil
}

func (r *InventoryRepository) GetRoomType(ctx context.Context, hotelID, roomTypeID uuid.UUID) (*domain.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE id = $1 AND hotel_id = $2`

	return r.getRoomType(ctx, query, roomTypeID, hotelID)
}

func (r *InventoryRepository) FindRoomType(ctx context.Context, roomTypeID uuid.UUID) (*domain.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE id = $1`

	return r.getRoomType(ctx, query, roomTypeID)
}

func (r *InventoryRepository) ListRoomTypes(ctx context.Context, hotelID uuid.UUID) ([]domain.RoomType, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM hotels WHERE id = $1)`, hotelID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to look up hotel %s: %w", hotelID, err)
	}

	if !exists {
		return nil, domain.NotFound("hotel not found")
	}

	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE hotel_id = $1 ORDER BY name, id`

	rows, err := r.db.QueryContext(ctx, query, hotelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list room types of hotel %s: %w", hotelID, err)
	}

	defer rows.Close()

	var roomTypes []domain.RoomType
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room type: %w", err)
		}

		roomTypes = append(roomTypes, rt)
	}

	return roomTypes, rows.Err()
}

// SaveHotel upserts a hotel and its room types. Used by provisioning and demo seeding.
func (r *InventoryRepository) SaveHotel(ctx context.Context, hotel domain.Hotel) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
	INSERT INTO hotels (id, name, city, address)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, city = EXCLUDED.city, address = EXCLUDED.address
	`, hotel.ID, hotel.Name, hotel.City, hotel.Address)
	if err != nil {
		return fmt.Errorf("failed to upsert hotel %s: %w", hotel.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO room_types (`+roomTypeColumns+`)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, nightly_rate = EXCLUDED.nightly_rate,
		max_occupancy = EXCLUDED.max_occupancy, total_rooms = EXCLUDED.total_rooms
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare room type statement: %w", err)
	}

	defer stmt.Close()

	for _, rt := range hotel.RoomTypes {
		_, err := stmt.ExecContext(ctx, rt.ID, hotel.ID, rt.Name, rt.NightlyRate, rt.MaxOccupancy, rt.TotalRooms)
		if err != nil {
			return fmt.Errorf("failed to upsert room type %s: %w", rt.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
