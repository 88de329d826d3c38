package auth

import (
	"context"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/mocks"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/app/services/shared/jwtmanager"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/exceptions"
	"mindfulness-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authTestDeps struct {
	users    *mocks.MockUserRepository
	redis    *mocks.MockRedisRepository
	sessions *mocks.MockSessionService
	jwt      *jwtmanager.JWTManager
}

func newTestAuthUsecase(t *testing.T) (*authUsecase, *authTestDeps) {
	cfg := &config.InternalConfig{JWT: config.AppJWT{Secret: "test-secret", ExpTimeInHour: 1}}
	jwtManager, err := jwtmanager.NewJWTManager(cfg, zap.NewNop())
	require.NoError(t, err)

	deps := &authTestDeps{
		users:    new(mocks.MockUserRepository),
		redis:    new(mocks.MockRedisRepository),
		sessions: new(mocks.MockSessionService),
		jwt:      jwtManager,
	}
	uc := &authUsecase{
		UserRepository:  deps.users,
		RedisRepository: deps.redis,
		SessionService:  deps.sessions,
		JWTManager:      jwtManager,
		InternalConfig:  cfg,
		Log:             zap.NewNop(),
	}
	return uc, deps
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, status, customErr.StatusCode)
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	newRequest := func(role string) *requests.RegisterUser {
		return &requests.RegisterUser{
			Name:     "Asha",
			Email:    "asha@example.edu",
			Username: "asha",
			Password: "Secret123!",
			Role:     role,
		}
	}

	t.Run("Student Registers", func(t *testing.T) {
		uc, deps := newTestAuthUsecase(t)
		deps.users.On("FindByEmail", ctx, "asha@example.edu").Return(nil, nil)
		deps.users.On("FindByUsername", ctx, "asha").Return(nil, nil)
		deps.users.On("CreateUser", ctx, mock.MatchedBy(func(user *models.User) bool {
			return user.Role == constvars.RoleStudent && utils.CheckPasswordHash("Secret123!", user.Password)
		})).Return("u1", nil)

		result, err := uc.RegisterUser(ctx, newRequest(constvars.RoleStudent))

		require.NoError(t, err)
		assert.Equal(t, "u1", result.UserID)
		assert.Equal(t, constvars.RoleStudent, result.Role)
	})

	t.Run("Email Taken", func(t *testing.T) {
		uc, deps := newTestAuthUsecase(t)
		deps.users.On("FindByEmail", ctx, "asha@example.edu").Return(&models.User{ID: "other"}, nil)

		_, err := uc.RegisterUser(ctx, newRequest(constvars.RoleStudent))

		assertStatus(t, err, constvars.StatusConflict)
		deps.users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("Username Taken", func(t *testing.T) {
		uc, deps := newTestAuthUsecase(t)
		deps.users.On("FindByEmail", ctx, "asha@example.edu").Return(nil, nil)
		deps.users.On("FindByUsername", ctx, "asha").Return(&models.User{ID: "other"}, nil)

		_, err := uc.RegisterUser(ctx, newRequest(constvars.RoleStudent))

		assertStatus(t, err, constvars.StatusConflict)
	})

	t.Run("Admin Without API Key", func(t *testing.T) {
		uc, deps := newTestAuthUsecase(t)

		_, err := uc.RegisterUser(ctx, newRequest(constvars.RoleAdmin))

		assert.ErrorIs(t, err, errAdminRegistrationForbidden)
		deps.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()
	hashed, err := utils.HashPassword("Secret123!")
	require.NoError(t, err)
	user := &models.User{ID: "u1", Name: "Asha", Email: "asha@example.edu", Role: constvars.RoleStudent, Password: hashed}

	t.Run("Success Issues Token For Session", func(t *testing.T) {
		uc, deps := newTestAuthUsecase(t)
		deps.users.On("FindByEmail", ctx, "asha@example.edu").Return(user, nil)
		deps.sessions.On("CreateSession", ctx, user).Return(&models.Session{SessionID: "s1", UserID: "u1"}, nil)
		deps.redis.On("AddToSet", ctx, mock.AnythingOfType("string"), []interface{}{"u1"}).Return(nil)
		deps.redis.On("Expire", ctx, mock.AnythingOfType("string"), activeUsersRetention).Return(nil)

		result, err := uc.LoginUser(ctx, &requests.LoginUser{Email: "asha@example.edu", Password: "Secret123!"})

		require.NoError(t, err)
		assert.Equal(t, "u1", result.User.ID)

		verified, err := deps.jwt.VerifyToken(ctx, &jwtmanager.VerifyTokenInput{Token: result.Token})
		require.NoError(t, err)
		assert.True(t, verified.Valid)
		assert.Equal(t, "s1", verified.SessionID)
	})

	t.Run("Login By Username", func(t *testing.T) {
		uc, deps := newTestAuthUsecase(t)
		deps.users.On("FindByUsername", ctx, "asha").Return(user, nil)
		deps.sessions.On("CreateSession", ctx, user).Return(&models.Session{SessionID: "s2"}, nil)
		deps.redis.On("AddToSet", ctx, mock.Anything, mock.Anything).Return(nil)
		deps.redis.On("Expire", ctx, mock.Anything, mock.Anything).Return(nil)

		_, err := uc.LoginUser(ctx, &requests.LoginUser{Username: "asha", Password: "Secret123!"})

		require.NoError(t, err)
		deps.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		uc, deps := newTestAuthUsecase(t)
		deps.users.On("FindByEmail", ctx, "asha@example.edu").Return(user, nil)

		_, err := uc.LoginUser(ctx, &requests.LoginUser{Email: "asha@example.edu", Password: "nope"})

		assertStatus(t, err, constvars.StatusUnauthorized)
		deps.sessions.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})

	t.Run("Unknown User", func(t *testing.T) {
		uc, deps := newTestAuthUsecase(t)
		deps.users.On("FindByEmail", ctx, "ghost@example.edu").Return(nil, nil)

		_, err := uc.LoginUser(ctx, &requests.LoginUser{Email: "ghost@example.edu", Password: "Secret123!"})

		assertStatus(t, err, constvars.StatusUnauthorized)
	})

	t.Run("Suspended User", func(t *testing.T) {
		uc, deps := newTestAuthUsecase(t)
		suspended := *user
		suspended.Suspended = true
		deps.users.On("FindByEmail", ctx, "asha@example.edu").Return(&suspended, nil)

		_, err := uc.LoginUser(ctx, &requests.LoginUser{Email: "asha@example.edu", Password: "Secret123!"})

		assertStatus(t, err, constvars.StatusForbidden)
	})
}

func TestLogoutUser(t *testing.T) {
	ctx := context.Background()
	uc, deps := newTestAuthUsecase(t)
	deps.sessions.On("ParseSessionData", ctx, "raw").Return(&models.Session{SessionID: "s1"}, nil)
	deps.sessions.On("DeleteSession", ctx, "s1").Return(nil)

	err := uc.LogoutUser(ctx, "raw")

	assert.NoError(t, err)
	deps.sessions.AssertExpectations(t)
}
