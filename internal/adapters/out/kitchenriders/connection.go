package kitchenriders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const maxDialAttempts = 5

// session is one open AMQP connection with the channel publishes go through.
type session interface {
	Publisher
	IsClosed() bool
	Close() error
}

type dialFunc func(url, exchange string) (session, error)

// Connection is a Publisher that re-dials the broker when the connection or its
// channel has been closed since the last publish.
type Connection struct {
	url      string
	exchange string
	dial     dialFunc
	logger   *slog.Logger

	mu      sync.Mutex
	session session
}

// Connect dials the broker, retrying with a growing pause, and declares the
// durable topic exchange delivery requests go to.
func Connect(url, exchange string, logger *slog.Logger) (*Connection, error) {
	c := newConnection(url, exchange, dialAMQP, logger)

	var err error
	for attempt := 1; attempt <= maxDialAttempts; attempt++ {
		if c.session, err = c.dial(url, exchange); err == nil {
			return c, nil
		}
		if attempt < maxDialAttempts {
			wait := time.Duration(attempt) * 2 * time.Second
			c.logger.Warn("rabbitmq connection failed, retrying", "attempt", attempt, "wait", wait, "error", err)
			time.Sleep(wait)
		}
	}
	return nil, fmt.Errorf("connect to rabbitmq after %d attempts: %w", maxDialAttempts, err)
}

func newConnection(url, exchange string, dial dialFunc, logger *slog.Logger) *Connection {
	return &Connection{
		url:      url,
		exchange: exchange,
		dial:     dial,
		logger:   logger.With("component", "rabbitmq"),
	}
}

// PublishWithContext publishes on the current channel, reconnecting first if the
// broker dropped it. A failed reconnect fails this publish only; the next one dials again.
func (c *Connection) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp091.Publishing,
) error {
	s, err := c.current()
	if err != nil {
		return err
	}
	return s.PublishWithContext(ctx, exchange, key, mandatory, immediate, msg)
}

func (c *Connection) current() (session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil && !c.session.IsClosed() {
		return c.session, nil
	}

	c.logger.Warn("rabbitmq connection lost, reconnecting")
	if c.session != nil {
		_ = c.session.Close()
		c.session = nil
	}

	s, err := c.dial(c.url, c.exchange)
	if err != nil {
		return nil, fmt.Errorf("reconnect to rabbitmq: %w", err)
	}

	c.session = s
	c.logger.Info("rabbitmq connection re-established")
	return s, nil
}

func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	return err
}

type amqpSession struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func dialAMQP(url, exchange string) (session, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err = channel.ExchangeDeclare(exchange, amqp091.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &amqpSession{conn: conn, channel: channel}, nil
}

func (s *amqpSession) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp091.Publishing,
) error {
	return s.channel.PublishWithContext(ctx, exchange, key, mandatory, immediate, msg)
}

func (s *amqpSession) IsClosed() bool {
	return s.conn.IsClosed() || s.channel.IsClosed()
}

func (s *amqpSession) Close() error {
	if s.conn.IsClosed() {
		return nil
	}
	if s.channel.IsClosed() {
		return s.conn.Close()
	}
	return errors.Join(s.channel.Close(), s.conn.Close())
}
