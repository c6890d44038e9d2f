package mq

import (
	"context"
	"encoding/json"
	"time"

	"Storefront/app/api/order/internal/svc"
	orderdal "Storefront/app/dal/order"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

func NewOrderCreatedEvent(o *orderdal.Orders, at time.Time) OrderCreatedEvent {
	products := json.RawMessage(o.Products)
	if !json.Valid(products) {
		products = json.RawMessage("[]")
	}
	return OrderCreatedEvent{
		EventId:         uuid.NewString(),
		OrderId:         o.Id,
		StripeSessionId: o.StripeSessionId,
		Email:           o.Email,
		Products:        products,
		CreatedAt:       at.Unix(),
	}
}

// PublishOrderCreated sends the event keyed by session id. It is a no-op when
// no writer is configured.
func PublishOrderCreated(ctx context.Context, sc *svc.ServiceContext, evt OrderCreatedEvent) error {
	if sc.KafkaWriter == nil {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(evt.StripeSessionId),
		Value: body,
	}
	return sc.KafkaWriter.WriteMessages(ctx, msg)
}
