package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"house-rental-backend/internal/logger"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

//go:generate mockgen -source=publisher.go -destination=../mocks/events_mocks.go -package=mocks

// Routing keys
const (
	KeyRequestCreated         = "request.created"
	KeyPasswordResetRequested = "owner.password_reset_requested"
)

// RequestCreated is published after a tenant submits a request for a house
type RequestCreated struct {
	RequestID     uuid.UUID `json:"requestId"`
	HouseID       uuid.UUID `json:"houseId"`
	OwnerID       uuid.UUID `json:"ownerId"`
	TenantName    string    `json:"tenantName"`
	TenantContact string    `json:"tenantContact"`
	ContactMethod string    `json:"contactMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PasswordResetRequested is published when an owner asks for a reset token
type PasswordResetRequested struct {
	OwnerID   uuid.UUID `json:"ownerId"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Publisher sends domain events. Publishing is fire-and-forget from the caller's view:
// callers log failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, key string, payload interface{}) error
	Close() error
}

// RabbitPublisher publishes JSON events to a durable topic exchange
type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewRabbitPublisher dials url and declares the exchange
func NewRabbitPublisher(url, exchange string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &RabbitPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish marshals payload and sends it with the given routing key
func (p *RabbitPublisher) Publish(ctx context.Context, key string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", key, err)
	}
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now(),
		Body:         body,
	})
}

// Ping reports whether the broker connection is still open
func (p *RabbitPublisher) Ping(ctx context.Context) error {
	if p.conn == nil || p.conn.IsClosed() || p.ch == nil || p.ch.IsClosed() {
		return errors.New("rabbitmq connection closed")
	}
	return nil
}

// Close closes the channel and the connection
func (p *RabbitPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// LogPublisher writes events to the structured log. Used when no broker is configured.
type LogPublisher struct{}

// NewLogPublisher creates a LogPublisher
func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

// Publish logs the event at info level, dropping reset tokens from the entry
func (p *LogPublisher) Publish(ctx context.Context, key string, payload interface{}) error {
	if reset, ok := payload.(PasswordResetRequested); ok {
		reset.Token = "[redacted]"
		payload = reset
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event":   key,
		"payload": payload,
	}).Info("event published")
	return nil
}

// Close is a no-op
func (p *LogPublisher) Close() error {
	return nil
}
