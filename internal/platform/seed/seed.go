package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/srgjo27/hotel_reservation/internal/core/ports"
)

// namespace derives stable ids so reseeding upserts the same rows.
var namespace = uuid.MustParse("6f1c3b52-4c1e-4f7a-9d36-1f0c2b9a7e41")

func id(name string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(name))
}

func DemoHotels() []domain.Hotel {
	harbour := id("hotel:harbour-view")
	alpine := id("hotel:alpine-lodge")

	return []domain.Hotel{
		{
			ID:      harbour,
			Name:    "Harbour View",
			City:    "Lisbon",
			Address: "Rua do Cais 12",
			RoomTypes: []domain.RoomType{
				{ID: id("harbour-view:standard"), HotelID: harbour, Name: "Standard", NightlyRate: 12000, MaxOccupancy: 2, TotalRooms: 20},
				{ID: id("harbour-view:deluxe"), HotelID: harbour, Name: "Deluxe", NightlyRate: 21000, MaxOccupancy: 3, TotalRooms: 8},
				{ID: id("harbour-view:suite"), HotelID: harbour, Name: "Suite", NightlyRate: 45000, MaxOccupancy: 4, TotalRooms: 2},
			},
		},
		{
			ID:      alpine,
			Name:    "Alpine Lodge",
			City:    "Innsbruck",
			Address: "Bergstrasse 4",
			RoomTypes: []domain.RoomType{
				{ID: id("alpine-lodge:single"), HotelID: alpine, Name: "Single", NightlyRate: 9000, MaxOccupancy: 1, TotalRooms: 6},
				{ID: id("alpine-lodge:family"), HotelID: alpine, Name: "Family", NightlyRate: 26000, MaxOccupancy: 5, TotalRooms: 4},
			},
		},
	}
}

// Run upserts the demo inventory.
func Run(ctx context.Context, p ports.InventoryProvisioner, logger *zap.Logger) error {
	for _, hotel := range DemoHotels() {
		if err := p.SaveHotel(ctx, hotel); err != nil {
			return fmt.Errorf("failed to seed hotel %s: %w", hotel.Name, err)
		}

		logger.Info("hotel seeded",
			zap.String("hotel_id", hotel.ID.String()),
			zap.String("name", hotel.Name),
			zap.Int("room_types", len(hotel.RoomTypes)))
	}

	return nil
}
