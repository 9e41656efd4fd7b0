package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
)

type InventoryStore struct {
	mu        sync.RWMutex
	hotels    map[uuid.UUID]domain.Hotel
	roomTypes map[uuid.UUID]domain.RoomType
}

func NewInventoryStore() *InventoryStore {
	return &InventoryStore{
		hotels:    make(map[uuid.UUID]domain.Hotel),
		roomTypes: make(map[uuid.UUID]domain.RoomType),
	}
}

func (s *InventoryStore) SaveHotel(_ context.Context, hotel domain.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.hotels[hotel.ID]; ok {
		for _, rt := range old.RoomTypes {
			delete(s.roomTypes, rt.ID)
		}
	}

	roomTypes := make([]domain.RoomType, len(hotel.RoomTypes))
	for i, rt := range hotel.RoomTypes {
		rt.HotelID = hotel.ID
		roomTypes[i] = rt
		s.roomTypes[rt.ID] = rt
	}

	hotel.RoomTypes = roomTypes
	s.hotels[hotel.ID] = hotel

	return nil
}

func (s *InventoryStore) GetRoomType(ctx context.Context, hotelID, roomTypeID uuid.UUID) (*domain.RoomType, error) {
	rt, err := s.FindRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}

	if rt.HotelID != hotelID {
		return nil, domain.NotFound("room type not found in hotel")
	}

	return rt, nil
}

func (s *InventoryStore) FindRoomType(_ context.Context, roomTypeID uuid.UUID) (*domain.RoomType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rt, ok := s.roomTypes[roomTypeID]
	if !ok {
		return nil, domain.NotFound("room type not found")
	}

	return &rt, nil
}

func (s *InventoryStore) ListRoomTypes(_ context.Context, hotelID uuid.UUID) ([]domain.RoomType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hotel, ok := s.hotels[hotelID]
	if !ok {
		return nil, domain.NotFound("hotel not found")
	}

	return append([]domain.RoomType(nil), hotel.RoomTypes...), nil
}
