package remindernotifier

import (
	"context"
	"encoding/json"
	"time"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/rabbitmq"

	"github.com/rabbitmq/amqp091-go"
)

const ShowReminderMessageType = "show-reminder"

type showReminderMessage struct {
	Event string    `json:"event"`
	At    time.Time `json:"at"`
}

// AMQP publishes the show-reminder signal to a fanout exchange.
type AMQP struct {
	log      logging.Logger
	channel  *rabbitmq.Channel
	exchange string
	now      func() time.Time
}

func NewAMQP(log logging.Logger, channel *rabbitmq.Channel, exchange string, now func() time.Time) *AMQP {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &AMQP{log: log, channel: channel, exchange: exchange, now: now}
}

func (n *AMQP) NotifyShowReminder(ctx context.Context) error {
	msg, err := newShowReminderPublishing(n.now())
	if err != nil {
		return err
	}
	if err := n.channel.PublishWithContext(ctx, n.exchange, "", false, false, msg); err != nil {
		logging.Error(ctx, n.log, err, logging.Entry("exchange", n.exchange))
		return err
	}
	n.log.Debug(ctx, "AMQP message has been published.", logging.Entry("exchange", n.exchange))
	return nil
}

func newShowReminderPublishing(at time.Time) (amqp091.Publishing, error) {
	body, err := json.Marshal(showReminderMessage{Event: ShowReminderMessageType, At: at.UTC()})
	if err != nil {
		return amqp091.Publishing{}, err
	}
	return amqp091.Publishing{
		ContentType: "application/json",
		Type:        ShowReminderMessageType,
		Timestamp:   at.UTC(),
		Body:        body,
	}, nil
}
