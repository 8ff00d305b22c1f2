package rabbitmq

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/logging"

	amqp "github.com/rabbitmq/amqp091-go"
)

const delay = 3 * time.Second // reconnect after delay

// Connection wraps amqp.Connection and redials the broker when the connection
// is lost.
type Connection struct {
	url    string
	log    logging.Logger
	lock   sync.RWMutex
	conn   *amqp.Connection
	closed atomic.Bool
}

func Dial(url string, log logging.Logger) (*Connection, error) {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	connection := &Connection{url: url, log: log, conn: conn}
	go connection.watch(conn)
	return connection, nil
}

func (c *Connection) watch(conn *amqp.Connection) {
	for {
		reason, ok := <-conn.NotifyClose(make(chan *amqp.Error, 1))
		if !ok || c.closed.Load() {
			c.log.Info(context.Background(), "RabbitMQ connection closed.")
			return
		}

		c.log.Warning(context.Background(), "RabbitMQ connection lost.", logging.Entry("reason", reason.Error()))
		for {
			time.Sleep(delay)
			if c.closed.Load() {
				return
			}

			next, err := amqp.Dial(c.url)
			if err == nil {
				c.lock.Lock()
				c.conn = next
				c.lock.Unlock()
				conn = next
				c.log.Info(context.Background(), "RabbitMQ reconnect success.")
				break
			}
			c.log.Error(context.Background(), "RabbitMQ reconnect failed.", logging.Entry("err", err))
		}
	}
}

func (c *Connection) current() *amqp.Connection {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.conn
}

// Channel opens a channel that is recreated whenever the broker closes it.
func (c *Connection) Channel() (*Channel, error) {
	ch, err := c.current().Channel()
	if err != nil {
		return nil, err
	}

	channel := &Channel{ch: ch, conn: c}
	go channel.watch(ch)
	return channel, nil
}

func (c *Connection) Close() error {
	if c.closed.Swap(true) {
		return amqp.ErrClosed
	}
	return c.current().Close()
}

// Channel wraps amqp.Channel.
type Channel struct {
	conn   *Connection
	lock   sync.RWMutex
	ch     *amqp.Channel
	closed atomic.Bool
}

func (ch *Channel) watch(current *amqp.Channel) {
	for {
		reason, ok := <-current.NotifyClose(make(chan *amqp.Error, 1))
		// closed by us
		if !ok || ch.IsClosed() {
			ch.Close()
			return
		}

		ch.conn.log.Warning(context.Background(), "RabbitMQ channel closed.", logging.Entry("reason", reason.Error()))
		for {
			time.Sleep(delay)
			if ch.IsClosed() || ch.conn.closed.Load() {
				return
			}

			next, err := ch.conn.current().Channel()
			if err == nil {
				ch.lock.Lock()
				ch.ch = next
				ch.lock.Unlock()
				current = next
				ch.conn.log.Info(context.Background(), "Channel recreate success.")
				break
			}
			ch.conn.log.Error(context.Background(), "Channel recreate failed.", logging.Entry("err", err))
		}
	}
}

func (ch *Channel) current() *amqp.Channel {
	ch.lock.RLock()
	defer ch.lock.RUnlock()
	return ch.ch
}

// IsClosed reports whether Close has been called.
func (ch *Channel) IsClosed() bool {
	return ch.closed.Load()
}

func (ch *Channel) Close() error {
	if ch.closed.Swap(true) {
		return amqp.ErrClosed
	}
	return ch.current().Close()
}

// DeclareFanoutExchange declares a durable fanout exchange.
func (ch *Channel) DeclareFanoutExchange(name string) error {
	return ch.current().ExchangeDeclare(name, amqp.ExchangeFanout, true, false, false, false, nil)
}

func (ch *Channel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	return ch.current().PublishWithContext(ctx, exchange, key, mandatory, immediate, msg)
}
