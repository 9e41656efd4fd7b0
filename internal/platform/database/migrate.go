package database

import (
	"context"
	"database/sql"
	"fmt"
)

// reservations carries no foreign keys into the inventory tables: inventory may be
// served from MongoDB while the ledger lives here. seq orders rows created in the
// same instant.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS hotels (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		city TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS room_types (
		id UUID PRIMARY KEY,
		hotel_id UUID NOT NULL REFERENCES hotels (id),
		name TEXT NOT NULL,
		nightly_rate BIGINT NOT NULL CHECK (nightly_rate >= 0),
		max_occupancy INT NOT NULL CHECK (max_occupancy >= 1),
		total_rooms INT NOT NULL CHECK (total_rooms >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id UUID PRIMARY KEY,
		seq BIGSERIAL NOT NULL,
		hotel_id UUID NOT NULL,
		room_type_id UUID NOT NULL,
		user_id UUID NOT NULL,
		check_in DATE NOT NULL,
		check_out DATE NOT NULL,
		room_count INT NOT NULL CHECK (room_count >= 1),
		guest_count INT NOT NULL CHECK (guest_count >= 1),
		unit_price BIGINT NOT NULL,
		total_price BIGINT NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('pending', 'confirmed', 'cancelled')),
		created_at TIMESTAMPTZ NOT NULL,
		confirmed_at TIMESTAMPTZ,
		cancelled_at TIMESTAMPTZ,
		CHECK (check_out > check_in)
	)`,
	`ALTER TABLE reservations ADD COLUMN IF NOT EXISTS seq BIGSERIAL NOT NULL`,
	`ALTER TABLE reservations
		DROP CONSTRAINT IF EXISTS reservations_hotel_id_fkey,
		DROP CONSTRAINT IF EXISTS reservations_room_type_id_fkey`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_confirmed_stay
		ON reservations (hotel_id, room_type_id, check_in, check_out)
		WHERE status = 'confirmed'`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_user ON reservations (user_id, created_at)`,
}

// Migrate creates the inventory and ledger tables when they are missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	return nil
}
