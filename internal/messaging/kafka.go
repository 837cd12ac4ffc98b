package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/vendhub/storefront/internal/config"
	"github.com/vendhub/storefront/pkg/models"
)

// InteractionEvent mirrors an appended product interaction onto the event
// stream for analytics consumers. The relational row remains the source of
// truth; the stream is a copy.
type InteractionEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	UserID      *int64    `json:"user_id,omitempty"`
	ProductID   int64     `json:"product_id"`
	Type        string    `json:"type"`
	SearchQuery *string   `json:"search_query,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type MessageBus struct {
	writer *kafka.Writer
	logger *logrus.Logger
}

func NewMessageBus(cfg *config.Config, logger *logrus.Logger) (*MessageBus, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Brokers...),
		Topic:        cfg.Kafka.Topics.ProductInteractions,
		Balancer:     &kafka.Hash{}, // key by product so a product's events stay ordered
		RequiredAcks: kafka.RequireOne,
		Async:        false,
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    100,
	}

	return &MessageBus{
		writer: writer,
		logger: logger,
	}, nil
}

// PublishInteraction implements services.InteractionPublisher.
func (mb *MessageBus) PublishInteraction(interaction *models.ProductInteraction) error {
	event := InteractionEvent{
		EventID:     uuid.New(),
		UserID:      interaction.UserID,
		ProductID:   interaction.ProductID,
		Type:        interaction.Type,
		SearchQuery: interaction.SearchQuery,
		Timestamp:   interaction.CreatedAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode interaction event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = mb.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(interaction.ProductID, 10)),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to publish interaction event: %w", err)
	}

	mb.logger.WithFields(logrus.Fields{
		"event_id":   event.EventID,
		"product_id": event.ProductID,
		"type":       event.Type,
	}).Debug("Published interaction event")

	return nil
}

func (mb *MessageBus) Close() error {
	if err := mb.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}
	return nil
}
