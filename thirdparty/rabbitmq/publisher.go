package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	expirationExchange   = "coupon_expiration_exchange"
	expirationQueue      = "coupon_expiration_queue"
	expirationRoutingKey = "coupon_expiration"

	// the delayed-message exchange rejects delays above 2^32-1 ms
	maxDelayMs = int64(1<<32 - 1)
	// deliver slightly after the expire date so the coupon is strictly past it
	deliveryMargin = time.Second
)

// ExpirationPublisher schedules a delayed expiration check for a coupon.
type ExpirationPublisher interface {
	PublishCouponExpiration(msg CouponExpirationMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	now     func() time.Time
}

type CouponExpirationMessage struct {
	CouponID   string    `json:"coupon_id"`
	ExpireDate time.Time `json:"expire_date"`
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dialTopology(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel, now: time.Now}, nil
}

// dialTopology connects and declares the delayed exchange, queue and binding.
func dialTopology(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	err = channel.ExchangeDeclare(
		expirationExchange,  // name
		"x-delayed-message", // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		amqp091.Table{"x-delayed-type": "direct"}, // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	_, err = channel.QueueDeclare(
		expirationQueue, // name
		true,            // durable
		false,           // auto-delete
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	err = channel.QueueBind(
		expirationQueue,      // queue name
		expirationRoutingKey, // routing key
		expirationExchange,   // exchange
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	return conn, channel, nil
}

func (p *Publisher) PublishCouponExpiration(msg CouponExpirationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		expirationExchange,   // exchange
		expirationRoutingKey, // routing key
		false,                // mandatory
		false,                // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
			Headers: amqp091.Table{
				"x-delay": expirationDelay(msg.ExpireDate, p.now()),
			},
		},
	)
}

// expirationDelay is the x-delay in milliseconds for a coupon expiring at expireDate.
// Coupons further out than the exchange allows are delivered early and left to the sweep.
func expirationDelay(expireDate, now time.Time) int64 {
	delayMs := expireDate.Add(deliveryMargin).Sub(now).Milliseconds()
	if delayMs < 0 {
		return 0
	}
	if delayMs > maxDelayMs {
		return maxDelayMs
	}
	return delayMs
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
