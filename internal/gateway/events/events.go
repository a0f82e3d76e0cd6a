// Package events publishes domain lifecycle events to Kafka so downstream
// consumers (reporting, notifications) can react to changes made through the
// dashboard.
package events

import (
	"context"
	"time"

	"armada/config"
	"armada/infras/kafka"
	"armada/infras/otel"
	"armada/shared/constant"
	"armada/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	BookingCreated = "booking.created"
	BookingUpdated = "booking.updated"
	BookingDeleted = "booking.deleted"
)

type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

func NewBookingEvent(eventType, bookingID, actor string, payload any) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  bookingID,
		Actor:      actor,
		OccurredAt: timezone.Now(),
		Payload:    payload,
	}
}

type Publisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
}

type publisherImpl struct {
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func New(kafkaClient kafka.Client, cfg *config.Config, otl otel.Otel) Publisher {
	return &publisherImpl{
		kafka: kafkaClient,
		cfg:   cfg,
		otel:  otl,
	}
}

func (p *publisherImpl) PublishBookingEvent(ctx context.Context, event BookingEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishBookingEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	topic := p.cfg.Kafka.Topics.BookingEvents

	message := kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}

	if err = p.kafka.SendMessages(ctx, topic, message); err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("failed to publish booking event")

		return err
	}

	return nil
}
