package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"recurrence-ledger/internal/models"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

var ErrTransactionNotMaterialized = errors.New("transaction was not created from a recurrence")

// AMQPPublisher publishes occurrence messages to a durable direct exchange
type AMQPPublisher struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
}

func NewAMQPPublisher(url, exchangeName, queueName string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	publisher := &AMQPPublisher{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := publisher.setup(); err != nil {
		publisher.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return publisher, nil
}

func (p *AMQPPublisher) setup() error {
	if err := p.channel.ExchangeDeclare(p.exchangeName, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := p.channel.QueueDeclare(p.queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	// routing key is the queue name
	if err := p.channel.QueueBind(p.queueName, p.queueName, p.exchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

func (p *AMQPPublisher) PublishOccurrenceMaterialized(ctx context.Context, transaction *models.Transaction) error {
	if !transaction.IsMaterialized() {
		return ErrTransactionNotMaterialized
	}

	msg := NewOccurrenceMaterializedMessage(transaction)
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, p.exchangeName, p.queueName, false, false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.Timestamp,
			MessageId:    transaction.ID.String(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	slog.DebugContext(ctx, "published occurrence materialized message",
		"recurrence_id", msg.RecurrenceID,
		"transaction_id", msg.TransactionID,
		"date", msg.Date)

	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher drops every message; used when no broker is configured
type NoopPublisher struct{}

func (NoopPublisher) PublishOccurrenceMaterialized(ctx context.Context, transaction *models.Transaction) error {
	return nil
}
