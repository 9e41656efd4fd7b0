package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
)

const hotelsCollection = "hotels"

type roomTypeDocument struct {
	ID           string `bson:"id"`
	Name         string `bson:"name"`
	NightlyRate  int64  `bson:"nightly_rate"`
	MaxOccupancy int    `bson:"max_occupancy"`
	TotalRooms   int    `bson:"total_rooms"`
}

type hotelDocument struct {
	ID        string             `bson:"_id"`
	Name      string             `bson:"name"`
	City      string             `bson:"city"`
	Address   string             `bson:"address"`
	RoomTypes []roomTypeDocument `bson:"room_types"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// Connect opens a client and verifies it with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, nil
}

// InventoryStore keeps each hotel as one document with its room types embedded.
type InventoryStore struct {
	hotels *mongo.Collection
}

func NewInventoryStore(db *mongo.Database) *InventoryStore {
	return &InventoryStore{hotels: db.Collection(hotelsCollection)}
}

func (s *InventoryStore) findHotel(ctx context.Context, filter bson.D) (*hotelDocument, error) {
	var doc hotelDocument

	err := s.hotels.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to find hotel: %w", err)
	}

	return &doc, nil
}

func (s *InventoryStore) GetRoomType(ctx context.Context, hotelID, roomTypeID uuid.UUID) (*domain.RoomType, error) {
	doc, err := s.findHotel(ctx, bson.D{
		{Key: "_id", Value: hotelID.String()},
		{Key: "room_types.id", Value: roomTypeID.String()},
	})
	if err != nil {
		return nil, err
	}

	return doc.roomType(roomTypeID)
}

func (s *InventoryStore) FindRoomType(ctx context.Context, roomTypeID uuid.UUID) (*domain.RoomType, error) {
	doc, err := s.findHotel(ctx, bson.D{{Key: "room_types.id", Value: roomTypeID.String()}})
	if err != nil {
		return nil, err
	}

	return doc.roomType(roomTypeID)
}

func (s *InventoryStore) ListRoomTypes(ctx context.Context, hotelID uuid.UUID) ([]domain.RoomType, error) {
	doc, err := s.findHotel(ctx, bson.D{{Key: "_id", Value: hotelID.String()}})
	if err != nil {
		return nil, err
	}

	if doc == nil {
		return nil, domain.NotFound("hotel not found")
	}

	hotel, err := doc.toDomain()
	if err != nil {
		return nil, err
	}

	return hotel.RoomTypes, nil
}

func (s *InventoryStore) SaveHotel(ctx context.Context, hotel domain.Hotel) error {
	doc := fromDomain(hotel)
	doc.UpdatedAt = time.Now().UTC()

	_, err := s.hotels.ReplaceOne(ctx, bson.D{{Key: "_id", Value: doc.ID}}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save hotel %s: %w", hotel.ID, err)
	}

	return nil
}

func (d *hotelDocument) roomType(id uuid.UUID) (*domain.RoomType, error) {
	if d == nil {
		return nil, domain.NotFound("room type not found")
	}

	hotel, err := d.toDomain()
	if err != nil {
		return nil, err
	}

	for _, rt := range hotel.RoomTypes {
		if rt.ID == id {
			return &rt, nil
		}
	}

	return nil, domain.NotFound("room type not found")
}

func (d *hotelDocument) toDomain() (domain.Hotel, error) {
	hotelID, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("malformed hotel id %q: %w", d.ID, err)
	}

	hotel := domain.Hotel{
		ID:        hotelID,
		Name:      d.Name,
		City:      d.City,
		Address:   d.Address,
		RoomTypes: make([]domain.RoomType, 0, len(d.RoomTypes)),
	}

	for _, rt := range d.RoomTypes {
		roomTypeID, err := uuid.Parse(rt.ID)
		if err != nil {
			return domain.Hotel{}, fmt.Errorf("malformed room type id %q: %w", rt.ID, err)
		}

		hotel.RoomTypes = append(hotel.RoomTypes, domain.RoomType{
			ID:           roomTypeID,
			HotelID:      hotelID,
			Name:         rt.Name,
			NightlyRate:  rt.NightlyRate,
			MaxOccupancy: rt.MaxOccupancy,
			TotalRooms:   rt.TotalRooms,
		})
	}

	return hotel, nil
}

func fromDomain(h domain.Hotel) hotelDocument {
	doc := hotelDocument{
		ID:        h.ID.String(),
		Name:      h.Name,
		City:      h.City,
		Address:   h.Address,
		RoomTypes: make([]roomTypeDocument, 0, len(h.RoomTypes)),
	}

	for _, rt := range h.RoomTypes {
		doc.RoomTypes = append(doc.RoomTypes, roomTypeDocument{
			ID:           rt.ID.String(),
			Name:         rt.Name,
			NightlyRate:  rt.NightlyRate,
			MaxOccupancy: rt.MaxOccupancy,
			TotalRooms:   rt.TotalRooms,
		})
	}

	return doc
}
