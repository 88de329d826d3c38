package appointments

import (
	"context"
	"errors"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/mocks"
	"mindfulness-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestCompletionWorker(now time.Time) (*CompletionWorker, *mocks.MockLockerService, *mocks.MockAppointmentRepository) {
	locker := new(mocks.MockLockerService)
	repository := new(mocks.MockAppointmentRepository)
	cfg := &config.InternalConfig{
		Appointment: config.AppAppointment{DurationInMinutes: 45, CompletionWorkerCronSpec: "@every 1m"},
	}
	worker := NewCompletionWorker(zap.NewNop(), cfg, locker, repository)
	worker.now = func() time.Time { return now }
	return worker, locker, repository
}

func TestCompletionWorker_RunOnce(t *testing.T) {
	now := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("completes slots that ended before the cutoff", func(t *testing.T) {
		worker, locker, repository := newTestCompletionWorker(now)
		locker.On("TryLock", mock.Anything, constvars.RedisKeyAppointmentWorkerLock, mock.Anything).Return(true, "lock-1", nil)
		locker.On("Unlock", mock.Anything, constvars.RedisKeyAppointmentWorkerLock, "lock-1").Return(nil)
		repository.On("CompleteEndedBefore", mock.Anything, now.Add(-45*time.Minute)).Return(int64(3), nil)

		worker.runOnce(context.Background())

		locker.AssertExpectations(t)
		repository.AssertExpectations(t)
	})

	t.Run("skips when another instance holds the lock", func(t *testing.T) {
		worker, locker, repository := newTestCompletionWorker(now)
		locker.On("TryLock", mock.Anything, constvars.RedisKeyAppointmentWorkerLock, mock.Anything).Return(false, "", nil)

		worker.runOnce(context.Background())

		repository.AssertNotCalled(t, "CompleteEndedBefore", mock.Anything, mock.Anything)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unlocks after a failed update", func(t *testing.T) {
		worker, locker, repository := newTestCompletionWorker(now)
		locker.On("TryLock", mock.Anything, constvars.RedisKeyAppointmentWorkerLock, mock.Anything).Return(true, "lock-2", nil)
		locker.On("Unlock", mock.Anything, constvars.RedisKeyAppointmentWorkerLock, "lock-2").Return(nil)
		repository.On("CompleteEndedBefore", mock.Anything, mock.Anything).Return(int64(0), errors.New("mongo down"))

		worker.runOnce(context.Background())

		locker.AssertExpectations(t)
	})
}

func TestCompletionWorker_StartStop(t *testing.T) {
	worker, _, _ := newTestCompletionWorker(time.Now())
	worker.cfg.Appointment.CompletionWorkerCronSpec = "not a cron spec"

	stop := worker.Start(context.Background())
	stop()
}
