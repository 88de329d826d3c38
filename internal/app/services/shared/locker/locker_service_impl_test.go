package locker

import (
	"context"
	"errors"
	"mindfulness-service/internal/app/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testLockKey = "crisis:worker:lock"

func newTestLocker(redisRepository *mocks.MockRedisRepository) *lockerService {
	return &lockerService{RedisRepository: redisRepository, Log: zap.NewNop()}
}

func TestTryLock(t *testing.T) {
	ctx := context.Background()

	t.Run("Acquired", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("TrySetNX", ctx, testLockKey, mock.AnythingOfType("string"), time.Minute).Return(true, nil)

		acquired, owner, err := newTestLocker(redisRepository).TryLock(ctx, testLockKey, time.Minute)

		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, owner, "owner token should be returned for unlock")
	})

	t.Run("Held Elsewhere", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("TrySetNX", ctx, testLockKey, mock.Anything, time.Minute).Return(false, nil)

		acquired, owner, err := newTestLocker(redisRepository).TryLock(ctx, testLockKey, time.Minute)

		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, owner)
	})

	t.Run("Redis Failure", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("TrySetNX", ctx, testLockKey, mock.Anything, time.Minute).Return(false, errors.New("connection refused"))

		acquired, _, err := newTestLocker(redisRepository).TryLock(ctx, testLockKey, time.Minute)

		assert.Error(t, err)
		assert.False(t, acquired)
	})
}

func TestUnlock(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner Releases", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("Get", ctx, testLockKey).Return(`"owner-1"`, nil)
		redisRepository.On("Delete", ctx, testLockKey).Return(nil)

		err := newTestLocker(redisRepository).Unlock(ctx, testLockKey, "owner-1")

		require.NoError(t, err)
		redisRepository.AssertExpectations(t)
	})

	t.Run("Already Expired", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("Get", ctx, testLockKey).Return("", nil)

		err := newTestLocker(redisRepository).Unlock(ctx, testLockKey, "owner-1")

		require.NoError(t, err)
		redisRepository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Different Owner", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		redisRepository.On("Get", ctx, testLockKey).Return(`"owner-2"`, nil)

		err := newTestLocker(redisRepository).Unlock(ctx, testLockKey, "owner-1")

		assert.ErrorIs(t, err, errLockNotOwned)
		redisRepository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
