package session

import (
	"context"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/exceptions"
	"mindfulness-service/internal/app/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSessionService(redisRepository *mocks.MockRedisRepository) *sessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  &config.InternalConfig{JWT: config.AppJWT{ExpTimeInHour: 2}},
		Log:             zap.NewNop(),
	}
}

func TestCreateSession(t *testing.T) {
	redisRepository := new(mocks.MockRedisRepository)
	svc := newTestSessionService(redisRepository)
	user := &models.User{ID: "user-1", Role: "student", Name: "Asha", Email: "asha@example.com"}

	redisRepository.On("Set", mock.Anything, mock.MatchedBy(func(key string) bool {
		return len(key) > len("session:")
	}), mock.AnythingOfType("*models.Session"), 2*time.Hour).Return(nil)

	session, err := svc.CreateSession(context.Background(), user)

	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "student", session.Role)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), session.ExpiresAt, 5*time.Second)
	redisRepository.AssertExpectations(t)
}

func TestGetSessionData(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		svc := newTestSessionService(redisRepository)
		redisRepository.On("Get", mock.Anything, "session:abc").Return(`{"session_id":"abc"}`, nil)

		data, err := svc.GetSessionData(context.Background(), "abc")

		require.NoError(t, err)
		assert.Equal(t, `{"session_id":"abc"}`, data)
	})

	t.Run("Expired", func(t *testing.T) {
		redisRepository := new(mocks.MockRedisRepository)
		svc := newTestSessionService(redisRepository)
		redisRepository.On("Get", mock.Anything, "session:abc").Return("", nil)

		_, err := svc.GetSessionData(context.Background(), "abc")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 401, customErr.StatusCode)
	})
}

func TestParseSessionData(t *testing.T) {
	svc := newTestSessionService(new(mocks.MockRedisRepository))

	session, err := svc.ParseSessionData(context.Background(), `{"session_id":"abc","user_id":"u1","role":"counselor"}`)
	require.NoError(t, err)
	assert.True(t, session.HasRole("admin", "counselor"))

	_, err = svc.ParseSessionData(context.Background(), "not-json")
	assert.Error(t, err)
}
