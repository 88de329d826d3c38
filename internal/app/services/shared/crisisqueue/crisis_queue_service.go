package crisisqueue

import (
	"context"
	"errors"
	"fmt"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	deadLetterSuffix = "_dlq"
	confirmBuffer    = 8
)

var (
	errPublishNotConfirmed = errors.New("message not confirmed")
	errConfirmsClosed      = errors.New("confirm channel closed")
)

// channel is the subset of *amqp.Channel the queue needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	GetNextPublishSeqNo() uint64
	Get(queue string, autoAck bool) (amqp.Delivery, bool, error)
	Ack(tag uint64, multiple bool) error
	Nack(tag uint64, multiple bool, requeue bool) error
}

// Service publishes crisis alerts onto a durable queue and pulls them back
// for the notification worker. Alerts that keep failing end up on the
// dead letter queue.
type Service struct {
	ch          channel
	log         *zap.Logger
	queueName   string
	deadLetterQ string
	confirms    <-chan amqp.Confirmation
	mu          sync.Mutex
}

// NewService declares the alert queue and its dead letter queue, sets QoS and
// turns on publisher confirms.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string, prefetch int) (contracts.CrisisAlertQueue, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	deadLetterQueue := queueName + deadLetterSuffix
	for _, name := range []string{queueName, deadLetterQueue} {
		_, err = ch.QueueDeclare(
			name,  // name
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,   // args
		)
		if err != nil {
			return nil, err
		}
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	confirms := ch.NotifyPublish(make(chan amqp.Confirmation, confirmBuffer))
	return newService(ch, confirms, log, queueName), nil
}

func newService(ch channel, confirms <-chan amqp.Confirmation, log *zap.Logger, queueName string) *Service {
	return &Service{
		ch:          ch,
		log:         log,
		queueName:   queueName,
		deadLetterQ: queueName + deadLetterSuffix,
		confirms:    confirms,
	}
}

func (s *Service) Enqueue(ctx context.Context, alert *models.CrisisAlert) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("CrisisQueue.Enqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, alert.AssessmentID),
	)
	return s.publishAlert(ctx, s.queueName, alert)
}

// Reenqueue puts a (possibly modified) alert back at the tail of the queue.
func (s *Service) Reenqueue(ctx context.Context, alert *models.CrisisAlert) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("CrisisQueue.Reenqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("failed_count", alert.FailedCount),
	)
	return s.publishAlert(ctx, s.queueName, alert)
}

func (s *Service) EnqueueToDeadQueue(ctx context.Context, alert *models.CrisisAlert) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("CrisisQueue.EnqueueToDeadQueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("failed_count", alert.FailedCount),
	)
	return s.publishAlert(ctx, s.deadLetterQ, alert)
}

// FetchN pulls up to max deliveries with basic.get and manual ack. Payloads
// that do not decode are moved to the dead letter queue straight away and
// acked only once the broker confirmed the copy.
func (s *Service) FetchN(ctx context.Context, max int) ([]contracts.QueuedCrisisAlert, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("CrisisQueue.FetchN called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if max <= 0 {
		max = 1
	}
	items := make([]contracts.QueuedCrisisAlert, 0, max)

	for i := 0; i < max; i++ {
		delivery, ok, err := s.ch.Get(s.queueName, false)
		if err != nil {
			return nil, exceptions.ErrRabbitMQConsumeMessage(err, s.queueName)
		}
		if !ok {
			break
		}

		var alert models.CrisisAlert
		if err := json.Unmarshal(delivery.Body, &alert); err != nil {
			s.log.Warn("CrisisQueue.FetchN moving undecodable message to dead letter queue",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			if err := s.publish(ctx, s.deadLetterQ, delivery.Body); err != nil {
				s.log.Error("CrisisQueue.FetchN failed to dead letter undecodable message",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
				if err := s.ch.Nack(delivery.DeliveryTag, false, true); err != nil {
					return nil, exceptions.ErrRabbitMQConsumeMessage(err, s.queueName)
				}
				break
			}
			if err := s.ch.Ack(delivery.DeliveryTag, false); err != nil {
				return nil, exceptions.ErrRabbitMQConsumeMessage(err, s.queueName)
			}
			continue
		}
		items = append(items, contracts.QueuedCrisisAlert{DeliveryTag: delivery.DeliveryTag, Alert: alert})
	}

	return items, nil
}

func (s *Service) AckMessage(ctx context.Context, deliveryTag uint64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("CrisisQueue.AckMessage called", zap.String(constvars.LoggingRequestIDKey, requestID))
	if err := s.ch.Ack(deliveryTag, false); err != nil {
		return exceptions.ErrRabbitMQConsumeMessage(err, s.queueName)
	}
	return nil
}

func (s *Service) publishAlert(ctx context.Context, queue string, alert *models.CrisisAlert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publish(ctx, queue, body)
}

// publish sends a persistent message and waits for the broker confirm that
// carries its sequence number. Confirms for earlier publishes whose caller
// gave up are discarded.
func (s *Service) publish(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	seqNo := s.ch.GetNextPublishSeqNo()
	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	for {
		select {
		case confirmed, ok := <-s.confirms:
			if !ok {
				return exceptions.ErrRabbitMQPublishMessage(errConfirmsClosed, queue)
			}
			if confirmed.DeliveryTag < seqNo {
				continue
			}
			if !confirmed.Ack {
				return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("%w: delivery tag %d", errPublishNotConfirmed, confirmed.DeliveryTag), queue)
			}
			return nil
		case <-ctx.Done():
			return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), queue)
		}
	}
}
