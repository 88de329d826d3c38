package crisisqueue

import (
	"context"
	"errors"
	"mindfulness-service/internal/app/models"
	"testing"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type publishedMessage struct {
	queue string
	body  []byte
}

// fakeChannel emulates a confirm-mode channel: every publish gets the next
// sequence number and, unless held, an immediate confirm.
type fakeChannel struct {
	seq          uint64
	confirms     chan amqp.Confirmation
	holdConfirms bool
	nackPublish  bool
	publishErr   map[string]error
	published    []publishedMessage
	deliveries   []amqp.Delivery
	acked        []uint64
	requeued     []uint64
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{
		confirms:   make(chan amqp.Confirmation, confirmBuffer),
		publishErr: map[string]error{},
	}
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if err := f.publishErr[key]; err != nil {
		return err
	}
	f.seq++
	f.published = append(f.published, publishedMessage{queue: key, body: msg.Body})
	if !f.holdConfirms {
		f.confirms <- amqp.Confirmation{DeliveryTag: f.seq, Ack: !f.nackPublish}
	}
	return nil
}

func (f *fakeChannel) GetNextPublishSeqNo() uint64 {
	return f.seq + 1
}

func (f *fakeChannel) Get(queue string, autoAck bool) (amqp.Delivery, bool, error) {
	if len(f.deliveries) == 0 {
		return amqp.Delivery{}, false, nil
	}
	delivery := f.deliveries[0]
	f.deliveries = f.deliveries[1:]
	return delivery, true, nil
}

func (f *fakeChannel) Ack(tag uint64, multiple bool) error {
	f.acked = append(f.acked, tag)
	return nil
}

func (f *fakeChannel) Nack(tag uint64, multiple bool, requeue bool) error {
	if requeue {
		f.requeued = append(f.requeued, tag)
	}
	return nil
}

func newTestService() (*Service, *fakeChannel) {
	ch := newFakeChannel()
	return newService(ch, ch.confirms, zap.NewNop(), "crisis_alerts"), ch
}

func alertDelivery(t *testing.T, tag uint64, alert models.CrisisAlert) amqp.Delivery {
	body, err := json.Marshal(alert)
	require.NoError(t, err)
	return amqp.Delivery{DeliveryTag: tag, Body: body}
}

func TestPublishConfirms(t *testing.T) {
	ctx := context.Background()
	alert := &models.CrisisAlert{ID: "alert-1", AssessmentID: "a1", Severity: "severe"}

	t.Run("Acked Publish Succeeds", func(t *testing.T) {
		svc, ch := newTestService()

		require.NoError(t, svc.Enqueue(ctx, alert))

		require.Len(t, ch.published, 1)
		assert.Equal(t, "crisis_alerts", ch.published[0].queue)
		assert.Contains(t, string(ch.published[0].body), `"alert-1"`)
	})

	t.Run("Nacked Publish Fails", func(t *testing.T) {
		svc, ch := newTestService()
		ch.nackPublish = true

		err := svc.Enqueue(ctx, alert)

		assert.ErrorIs(t, err, errPublishNotConfirmed)
	})

	t.Run("Dead Queue Uses Suffix", func(t *testing.T) {
		svc, ch := newTestService()

		require.NoError(t, svc.EnqueueToDeadQueue(ctx, alert))

		assert.Equal(t, "crisis_alerts_dlq", ch.published[0].queue)
	})

	t.Run("Late Confirm Of Abandoned Publish Is Skipped", func(t *testing.T) {
		svc, ch := newTestService()
		ch.holdConfirms = true

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err := svc.Enqueue(cancelled, alert)
		require.ErrorIs(t, err, context.Canceled)

		// The broker rejects the abandoned message after its caller left.
		ch.confirms <- amqp.Confirmation{DeliveryTag: 1, Ack: false}
		ch.holdConfirms = false

		assert.NoError(t, svc.Reenqueue(ctx, alert))
		assert.Empty(t, ch.confirms)
	})

	t.Run("Closed Confirm Channel Fails", func(t *testing.T) {
		svc, ch := newTestService()
		ch.holdConfirms = true
		close(ch.confirms)

		err := svc.Enqueue(ctx, alert)

		assert.ErrorIs(t, err, errConfirmsClosed)
	})
}

func TestFetchN(t *testing.T) {
	ctx := context.Background()

	t.Run("Decodes Up To Max", func(t *testing.T) {
		svc, ch := newTestService()
		ch.deliveries = []amqp.Delivery{
			alertDelivery(t, 1, models.CrisisAlert{ID: "alert-1", FailedCount: 2}),
			alertDelivery(t, 2, models.CrisisAlert{ID: "alert-2"}),
			alertDelivery(t, 3, models.CrisisAlert{ID: "alert-3"}),
		}

		items, err := svc.FetchN(ctx, 2)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, uint64(1), items[0].DeliveryTag)
		assert.Equal(t, 2, items[0].Alert.FailedCount)
		assert.Len(t, ch.deliveries, 1)
		assert.Empty(t, ch.acked)
	})

	t.Run("Undecodable Message Is Dead Lettered Then Acked", func(t *testing.T) {
		svc, ch := newTestService()
		ch.deliveries = []amqp.Delivery{
			{DeliveryTag: 4, Body: []byte("not json")},
			alertDelivery(t, 5, models.CrisisAlert{ID: "alert-5"}),
		}

		items, err := svc.FetchN(ctx, 5)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "alert-5", items[0].Alert.ID)
		require.Len(t, ch.published, 1)
		assert.Equal(t, "crisis_alerts_dlq", ch.published[0].queue)
		assert.Equal(t, []byte("not json"), ch.published[0].body)
		assert.Equal(t, []uint64{4}, ch.acked)
	})

	t.Run("Dead Letter Failure Requeues Instead Of Acking", func(t *testing.T) {
		svc, ch := newTestService()
		ch.publishErr["crisis_alerts_dlq"] = errors.New("channel closed")
		ch.deliveries = []amqp.Delivery{
			{DeliveryTag: 6, Body: []byte("not json")},
			alertDelivery(t, 7, models.CrisisAlert{ID: "alert-7"}),
		}

		items, err := svc.FetchN(ctx, 5)

		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Empty(t, ch.acked)
		assert.Equal(t, []uint64{6}, ch.requeued)
	})

	t.Run("Ack Message", func(t *testing.T) {
		svc, ch := newTestService()

		require.NoError(t, svc.AckMessage(ctx, 42))

		assert.Equal(t, []uint64{42}, ch.acked)
	})
}
