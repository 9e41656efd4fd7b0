package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/srgjo27/hotel_reservation/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/srgjo27/hotel_reservation/internal/platform/seed"
)

func TestRun_SeedsInventory(t *testing.T) {
	store := memory.NewInventoryStore()
	ctx := context.Background()

	require.NoError(t, seed.Run(ctx, store, zap.NewNop()))
	// idempotent
	require.NoError(t, seed.Run(ctx, store, zap.NewNop()))

	for _, hotel := range seed.DemoHotels() {
		roomTypes, err := store.ListRoomTypes(ctx, hotel.ID)
		require.NoError(t, err)
		assert.Len(t, roomTypes, len(hotel.RoomTypes))

		for _, rt := range roomTypes {
			assert.Equal(t, hotel.ID, rt.HotelID)
			assert.Positive(t, rt.MaxOccupancy)
		}
	}
}

func TestDemoHotels_StableIDs(t *testing.T) {
	assert.Equal(t, seed.DemoHotels()[0].ID, seed.DemoHotels()[0].ID)
	assert.NotEqual(t, seed.DemoHotels()[0].ID, seed.DemoHotels()[1].ID)
}

type failingProvisioner struct{}

func (failingProvisioner) SaveHotel(context.Context, domain.Hotel) error {
	return errors.New("connection refused")
}

func TestRun_PropagatesErrors(t *testing.T) {
	err := seed.Run(context.Background(), failingProvisioner{}, zap.NewNop())
	assert.ErrorContains(t, err, "connection refused")
}
