package crisis

import (
	"context"
	"fmt"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Worker drains the crisis alert queue on a ticker and emails every alert to
// the counseling office with at-least-once semantics.
type Worker struct {
	log      *zap.Logger
	cfg      *config.InternalConfig
	locker   contracts.LockerService
	queue    contracts.CrisisAlertQueue
	mailer   contracts.MailerService
	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, queue contracts.CrisisAlertQueue, mailer contracts.MailerService) *Worker {
	interval := time.Duration(cfg.Crisis.WorkerIntervalInSeconds) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Worker{
		log:      log,
		cfg:      cfg,
		locker:   lockerSvc,
		queue:    queue,
		mailer:   mailer,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins the ticker loop. The returned function stops it and may be
// called more than once.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	ticker := time.NewTicker(w.interval)

	w.log.Info("Crisis alert worker started", zap.Duration("interval", w.interval))

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case now := <-ticker.C:
				w.runOnce(ctx, now)
			}
		}
	}()

	return func() {
		w.stopOnce.Do(func() { close(w.stop) })
	}
}

func (w *Worker) runOnce(ctx context.Context, now time.Time) {
	w.log.Debug("crisis.worker.runOnce tick", zap.Time("now", now))

	ttl := w.interval - time.Second
	if ttl < time.Second {
		ttl = time.Second
	}
	acquired, lockValue, err := w.locker.TryLock(ctx, constvars.RedisKeyCrisisWorkerLock, ttl)
	if err != nil {
		w.log.Warn("crisis worker lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Debug("crisis worker lock not acquired; another instance is running")
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, constvars.RedisKeyCrisisWorkerLock, lockValue); err != nil {
			w.log.Error("crisis worker unlock failed", zap.Error(err))
		}
	}()

	batchSize := w.cfg.Crisis.WorkerBatchSize
	if batchSize <= 0 {
		batchSize = 1
	}
	items, err := w.queue.FetchN(ctx, batchSize)
	if err != nil {
		w.log.Error("crisis queue FetchN error", zap.Error(err))
		return
	}
	if len(items) > 0 {
		w.log.Info("crisis queue FetchN success", zap.Int("fetched_count", len(items)))
	}

	for _, item := range items {
		w.processItem(ctx, item)
	}
}

func (w *Worker) processItem(ctx context.Context, item contracts.QueuedCrisisAlert) {
	alert := item.Alert

	err := w.mailer.SendEmail(ctx, w.buildEmail(&alert))
	if err == nil {
		if ackErr := w.queue.AckMessage(ctx, item.DeliveryTag); ackErr != nil {
			w.log.Error("ack failed after crisis email was queued",
				zap.String("alert_id", alert.ID),
				zap.Error(ackErr))
			return
		}
		w.log.Info("crisis alert forwarded to mailer",
			zap.String("alert_id", alert.ID),
			zap.String(constvars.LoggingAssessmentIDKey, alert.AssessmentID))
		return
	}

	w.log.Warn("crisis alert email failed",
		zap.String("alert_id", alert.ID),
		zap.Int("failed_count", alert.FailedCount),
		zap.Error(err))

	alert.FailedCount++
	if alert.FailedCount >= w.maxRetry() {
		if err := w.queue.EnqueueToDeadQueue(ctx, &alert); err != nil {
			w.log.Error("enqueue crisis alert to DLQ failed",
				zap.String("alert_id", alert.ID),
				zap.Error(err))
			return
		}
		_ = w.queue.AckMessage(ctx, item.DeliveryTag)
		w.log.Error("moved crisis alert to DLQ",
			zap.String("alert_id", alert.ID),
			zap.Int("failed_count", alert.FailedCount))
		return
	}

	if err := w.queue.Reenqueue(ctx, &alert); err != nil {
		w.log.Error("reenqueue crisis alert failed",
			zap.String("alert_id", alert.ID),
			zap.Error(err))
		return
	}
	_ = w.queue.AckMessage(ctx, item.DeliveryTag)
	w.log.Info("retryable failure; incremented failed count and requeued",
		zap.String("alert_id", alert.ID),
		zap.Int("failed_count", alert.FailedCount))
}

func (w *Worker) maxRetry() int {
	if w.cfg.Crisis.WorkerMaxRetry <= 0 {
		return 5
	}
	return w.cfg.Crisis.WorkerMaxRetry
}

func (w *Worker) buildEmail(alert *models.CrisisAlert) *requests.EmailPayload {
	body := fmt.Sprintf(constvars.EmailCrisisAlertBodyFormat,
		alert.StudentName,
		alert.StudentEmail,
		alert.QuestionnaireID,
		alert.TotalScore,
		alert.Severity,
		alert.CreatedAt.Format(time.RFC1123),
	)
	return &requests.EmailPayload{
		Subject:  fmt.Sprintf(constvars.EmailCrisisAlertSubjectFormat, alert.StudentName, alert.Severity, alert.QuestionnaireID),
		From:     w.cfg.Mailer.EmailSender,
		To:       []string{w.cfg.Crisis.NotificationEmail},
		HTMLCode: body,
	}
}
