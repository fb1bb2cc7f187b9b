package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"resumeapi/internal/logging"
)

type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQP publishes events as JSON to a durable topic exchange, using the event
// type as routing key.
type AMQP struct {
	exchange string
	loc      *time.Location

	mu     sync.Mutex
	conn   *amqp.Connection
	ch     channel
	reopen func() (channel, error)
}

// DialAMQP connects and declares the exchange.
func DialAMQP(url, exchange string, loc *time.Location) (*AMQP, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	open := func() (channel, error) {
		ch, err := conn.Channel()
		if err != nil {
			return nil, err
		}
		if err := ch.ExchangeDeclare(
			exchange, // name
			"topic",  // kind
			true,     // durable
			false,    // auto-deleted
			false,    // internal
			false,    // no-wait
			nil,      // arguments
		); err != nil {
			_ = ch.Close()
			return nil, err
		}
		return ch, nil
	}

	ch, err := open()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	a := newAMQP(ch, exchange, loc)
	a.conn = conn
	a.reopen = open
	return a, nil
}

func newAMQP(ch channel, exchange string, loc *time.Location) *AMQP {
	return &AMQP{exchange: exchange, loc: loc, ch: ch}
}

func (a *AMQP) Publish(_ context.Context, e Event) {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	body, err := json.Marshal(e)
	if err != nil {
		logging.Error(a.loc, "events", "event_publish_failed", err)
		return
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    e.OccurredAt,
		Body:         body,
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	err = a.ch.Publish(a.exchange, e.Type, false, false, msg)
	if errors.Is(err, amqp.ErrClosed) && a.reopen != nil {
		if ch, rerr := a.reopen(); rerr == nil {
			a.ch = ch
			err = a.ch.Publish(a.exchange, e.Type, false, false, msg)
		}
	}
	if err != nil {
		logging.Error(a.loc, "events", "event_publish_failed", fmt.Errorf("%s: %w", e.Type, err))
	}
}

func (a *AMQP) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	err := a.ch.Close()
	if a.conn != nil {
		err = errors.Join(err, a.conn.Close())
	}
	return err
}
