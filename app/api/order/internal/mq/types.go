package mq

import "encoding/json"

// OrderCreatedEvent is written to KafkaConf.OrderTopic once an order row exists.
type OrderCreatedEvent struct {
	EventId         string          `json:"eventId"`
	OrderId         int64           `json:"orderId"`
	StripeSessionId string          `json:"stripeSessionId"`
	Email           string          `json:"email"`
	Products        json.RawMessage `json:"products"`
	CreatedAt       int64           `json:"createdAt"`
}
