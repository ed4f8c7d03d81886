// Package rabbit publica eventos do back-office no RabbitMQ
package rabbit

import (
	"fmt"

	"github.com/devhub/pinche-admin-api/internal/config"
	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

type Rabbit struct {
	Conn *amqp.Connection
	Cfg  config.RabbitMQ
}

func New(cfg config.RabbitMQ) (*Rabbit, error) {
	conn, err := amqp.Dial(cfg.AMQPURL())
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no rabbitmq: %w", err)
	}
	return &Rabbit{Conn: conn, Cfg: cfg}, nil
}

func (r *Rabbit) Close() {
	if r.Conn != nil {
		_ = r.Conn.Close()
	}
}

// SetupExchange declara o exchange durável onde os eventos são publicados
func (r *Rabbit) SetupExchange() error {
	ch, err := r.Conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	return ch.ExchangeDeclare(r.Cfg.Exchange, exchangeKind, true, false, false, false, nil)
}
