package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
)

const QueueReservationEvents = "reservation_events"

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type reservationMessage struct {
	Event         string    `json:"event"`
	OccurredAt    time.Time `json:"occurred_at"`
	ReservationID string    `json:"reservation_id"`
	HotelID       string    `json:"hotel_id"`
	RoomTypeID    string    `json:"room_type_id"`
	UserID        string    `json:"user_id"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	RoomCount     int       `json:"room_count"`
	GuestCount    int       `json:"guest_count"`
	TotalPrice    int64     `json:"total_price"`
	Status        string    `json:"status"`
}

func toMessage(e domain.ReservationEvent) reservationMessage {
	r := e.Reservation

	return reservationMessage{
		Event:         string(e.Type),
		OccurredAt:    e.OccurredAt.UTC(),
		ReservationID: r.ID.String(),
		HotelID:       r.HotelID.String(),
		RoomTypeID:    r.RoomTypeID.String(),
		UserID:        r.UserID.String(),
		CheckIn:       r.CheckIn.Format(domain.DateLayout),
		CheckOut:      r.CheckOut.Format(domain.DateLayout),
		RoomCount:     r.RoomCount,
		GuestCount:    r.GuestCount,
		TotalPrice:    r.TotalPrice,
		Status:        string(r.Status),
	}
}

type Publisher struct {
	mu      sync.Mutex
	channel Channel
	queue   string
}

// NewPublisher declares the durable event queue on ch.
func NewPublisher(ch Channel) (*Publisher, error) {
	_, err := ch.QueueDeclare(QueueReservationEvents, true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue %s: %w", QueueReservationEvents, err)
	}

	return &Publisher{channel: ch, queue: QueueReservationEvents}, nil
}

func (p *Publisher) Publish(ctx context.Context, event domain.ReservationEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.Type, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.Publish("", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.Reservation.ID.String() + ":" + string(event.Type),
		Timestamp:    event.OccurredAt.UTC(),
		Type:         string(event.Type),
		Body:         body,
	})
}

func (p *Publisher) Close() error {
	return p.channel.Close()
}

// Dial connects to the broker and opens a publisher on a fresh channel.
// The caller closes the returned connection.
func Dial(url string) (*amqp.Connection, *Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to open channel: %w", err)
	}

	publisher, err := NewPublisher(ch)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	return conn, publisher, nil
}
