package utils

import (
	"encoding/json"
	"log"
	"time"

	"tokoku/initializers"
	"tokoku/models"

	"github.com/streadway/amqp"
)

const (
	EventOrderSubmitted    = "order.submitted"
	EventOrderPaymentProof = "order.payment_proof"
)

type orderEvent struct {
	Event   string    `json:"event"`
	OrderID string    `json:"order_id"`
	UserID  string    `json:"user_id"`
	Status  string    `json:"status"`
	At      time.Time `json:"at"`
}

// PublishOrderEvent emits an order lifecycle event on the orders exchange.
// No-op when RabbitMQ is not connected.
func PublishOrderEvent(event string, order *models.Order) {
	if initializers.RabbitChannel == nil {
		return
	}

	body, err := json.Marshal(orderEvent{
		Event:   event,
		OrderID: order.ID.String(),
		UserID:  order.UserID.String(),
		Status:  string(order.Status),
		At:      time.Now().UTC(),
	})
	if err != nil {
		log.Printf("failed to encode %s event for %s: %v", event, order.ID, err)
		return
	}

	err = initializers.RabbitChannel.Publish(initializers.OrdersExchange, event, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		log.Printf("failed to publish %s event for %s: %v", event, order.ID, err)
	}
}
