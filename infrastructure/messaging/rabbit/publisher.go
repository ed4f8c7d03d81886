package rabbit

//go:generate mockgen -source=publisher.go -destination=mocks/publisher.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	amqp "github.com/rabbitmq/amqp091-go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrConnectionClosed = errors.New("connection is closed")

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type Publisher struct {
	conn     *amqp.Connection
	exchange string
	mutex    sync.Mutex
}

func NewPublisher(conn *amqp.Connection, exchange string) *Publisher {
	return &Publisher{
		conn:     conn,
		exchange: exchange,
	}
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, payload any) error {
	msg, err := buildPublishing(payload, time.Now())
	if err != nil {
		return err
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		return ErrConnectionClosed
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("error in creating channel %w", err)
	}
	defer ch.Close()

	if err := ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("error in publishing message %w", err)
	}

	return nil
}

func buildPublishing(payload any, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("error in encoding message %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
		Body:         body,
	}, nil
}
