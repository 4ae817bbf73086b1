package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"classifieds-service/internal/contextkeys"
	"classifieds-service/internal/core/port"
	"classifieds-service/pkg/rabbitmq/rabbitmq_producer"
)

// ModerationEventDTO - сообщение о решении модерации для notify.*
type ModerationEventDTO struct {
	ListingID   uuid.UUID `json:"listing_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	State       string    `json:"state"`
	ModeratorID uuid.UUID `json:"moderator_id"`
	DecidedAt   time.Time `json:"decided_at"`
}

type ModerationReporterAdapter struct {
	producer   *rabbitmq_producer.Publisher
	routingKey string
}

func NewModerationReporterAdapter(producer *rabbitmq_producer.Publisher, routingKey string) (*ModerationReporterAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: routingKey cannot be empty")
	}
	return &ModerationReporterAdapter{
		producer:   producer,
		routingKey: routingKey,
	}, nil
}

func (a *ModerationReporterAdapter) ReportModeration(ctx context.Context, event port.ModerationEvent) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "ModerationReporterAdapter",
		"routing_key": a.routingKey,
		"listing_id":  event.ListingID.String(),
	})

	dto := ModerationEventDTO{
		ListingID:   event.ListingID,
		OwnerID:     event.OwnerID,
		State:       string(event.State),
		ModeratorID: event.ModeratorID,
		DecidedAt:   event.At,
	}

	body, _ := json.Marshal(dto)

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent, // Для сохранения сообщений при перезапуске брокера
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	// Устанавливаем таймаут на операцию публикации, если контекст его не предоставляет
	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := a.producer.Publish(publishCtx, a.routingKey, msg)
	if err != nil {
		adapterLogger.Error("Failed to publish moderation event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish moderation event for listing %s: %w", event.ListingID, err)
	}

	adapterLogger.Info("Successfully published moderation event", nil)
	return nil
}

// Close закрывает канал производителя.
func (a *ModerationReporterAdapter) Close() error {
	return a.producer.Close()
}

// NoopModerationReporter используется, когда брокер выключен конфигурацией:
// модерация не должна зависеть от доступности RabbitMQ.
type NoopModerationReporter struct{}

func (NoopModerationReporter) ReportModeration(ctx context.Context, event port.ModerationEvent) error {
	return nil
}

func (NoopModerationReporter) Close() error {
	return nil
}
