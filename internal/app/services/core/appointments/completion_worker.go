package appointments

import (
	"context"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultCompletionCronSpec = "@every 15m"

// CompletionWorker flips booked appointments to completed once their slot has
// ended, so analytics and the dashboards stop treating them as upcoming.
type CompletionWorker struct {
	log        *zap.Logger
	cfg        *config.InternalConfig
	locker     contracts.LockerService
	repository contracts.AppointmentRepository
	cron       *cron.Cron
	now        func() time.Time
}

func NewCompletionWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, repository contracts.AppointmentRepository) *CompletionWorker {
	return &CompletionWorker{
		log:        log,
		cfg:        cfg,
		locker:     lockerSvc,
		repository: repository,
		now:        time.Now,
	}
}

// Start schedules the job and returns a function that waits for a running
// pass to finish before returning.
func (w *CompletionWorker) Start(ctx context.Context) (stop func()) {
	runCtx, cancel := context.WithCancel(ctx)

	spec := w.cfg.Appointment.CompletionWorkerCronSpec
	c := cron.New()
	if _, err := c.AddFunc(spec, func() { w.runOnce(runCtx) }); err != nil {
		w.log.Warn("appointment completion worker: invalid cron spec, falling back to default",
			zap.String("spec", spec),
			zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc(defaultCompletionCronSpec, func() { w.runOnce(runCtx) })
	}
	c.Start()
	w.cron = c

	w.log.Info("Appointment completion worker started", zap.String("spec", spec))

	return func() {
		cancel()
		<-c.Stop().Done()
	}
}

func (w *CompletionWorker) runOnce(ctx context.Context) {
	acquired, lockValue, err := w.locker.TryLock(ctx, constvars.RedisKeyAppointmentWorkerLock, 2*time.Minute)
	if err != nil {
		w.log.Warn("appointment completion worker: lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Debug("appointment completion worker: lock held by another instance")
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, constvars.RedisKeyAppointmentWorkerLock, lockValue); err != nil {
			w.log.Error("appointment completion worker: unlock failed", zap.Error(err))
		}
	}()

	cutoff := w.now().Add(-w.slotDuration())
	var completed int64
	err = utils.LogOperation(w.log, "appointments.complete_ended", "", func() error {
		completed, err = w.repository.CompleteEndedBefore(ctx, cutoff)
		return err
	})
	if err != nil {
		return
	}
	if completed > 0 {
		w.log.Info("appointment completion worker: appointments completed",
			zap.Int64(constvars.LoggingResultCountKey, completed),
			zap.Time("cutoff", cutoff))
	}
}

func (w *CompletionWorker) slotDuration() time.Duration {
	minutes := w.cfg.Appointment.DurationInMinutes
	if minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}
