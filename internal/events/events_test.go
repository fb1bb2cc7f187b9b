package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeapi/internal/logging"
)

type fakeChannel struct {
	exchange string
	key      string
	msgs     []amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) Publish(exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchange, f.key = exchange, key
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQP_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := newAMQP(ch, "resume_events", time.UTC)

	p.Publish(context.Background(), Event{Type: LinkViewed, Owner: "owner-1", Data: map[string]any{"path": "ada"}})

	require.Len(t, ch.msgs, 1)
	assert.Equal(t, "resume_events", ch.exchange)
	assert.Equal(t, LinkViewed, ch.key)
	assert.Equal(t, "application/json", ch.msgs[0].ContentType)

	var got Event
	require.NoError(t, json.Unmarshal(ch.msgs[0].Body, &got))
	assert.Equal(t, "owner-1", got.Owner)
	assert.Equal(t, "ada", got.Data["path"])
	assert.False(t, got.OccurredAt.IsZero())

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestAMQP_PublishFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	defer logging.SetOutput(nil)

	p := newAMQP(&fakeChannel{err: errors.New("broker gone")}, "x", time.UTC)
	p.Publish(context.Background(), Event{Type: ATSAnalyzed})

	assert.Contains(t, buf.String(), "event_publish_failed")
	assert.Contains(t, buf.String(), "broker gone")
}

func TestAMQP_ReopensClosedChannel(t *testing.T) {
	fresh := &fakeChannel{}
	p := newAMQP(&fakeChannel{err: amqp.ErrClosed}, "x", time.UTC)
	p.reopen = func() (channel, error) { return fresh, nil }

	p.Publish(context.Background(), Event{Type: LinkCreated})
	assert.Len(t, fresh.msgs, 1)
}

func TestNoop(t *testing.T) {
	var p Publisher = Noop{}
	p.Publish(context.Background(), Event{Type: LinkViewed})
	assert.NoError(t, p.Close())
}
