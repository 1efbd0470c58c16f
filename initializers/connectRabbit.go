package initializers

import (
	"log"

	"github.com/streadway/amqp"
)

const OrdersExchange = "orders"

// RabbitChannel stays nil when AMQP_URL is not configured; publishers
// treat a nil channel as "events disabled".
var RabbitChannel *amqp.Channel

func ConnectRabbit(config *Config) {
	if config.AmqpUri == "" {
		return
	}

	conn, err := amqp.Dial(config.AmqpUri)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ: ", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		log.Fatal("Failed to open a RabbitMQ channel: ", err)
	}

	if err := channel.ExchangeDeclare(OrdersExchange, "topic", true, false, false, false, nil); err != nil {
		log.Fatal("Failed to declare the orders exchange: ", err)
	}

	RabbitChannel = channel
}
