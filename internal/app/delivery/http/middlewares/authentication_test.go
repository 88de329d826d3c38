package middlewares

import (
	"context"
	"errors"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/mocks"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/app/services/shared/jwtmanager"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthMiddlewares(t *testing.T) (*Middlewares, *mocks.MockSessionService, *jwtmanager.JWTManager) {
	t.Helper()

	cfg := &config.InternalConfig{
		App: config.App{SuperadminAPIKey: testAPIKey},
		JWT: config.AppJWT{Secret: "middleware-test-secret", ExpTimeInHour: 1},
	}
	jwtManager, err := jwtmanager.NewJWTManager(cfg, zap.NewNop())
	require.NoError(t, err)

	sessionService := new(mocks.MockSessionService)
	return NewMiddlewares(zap.NewNop(), sessionService, jwtManager, cfg), sessionService, jwtManager
}

func issueToken(t *testing.T, jwtManager *jwtmanager.JWTManager, sessionID string) string {
	t.Helper()
	out, err := jwtManager.CreateToken(context.Background(), &jwtmanager.CreateTokenInput{SessionID: sessionID})
	require.NoError(t, err)
	return out.Token
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid token stores session in context", func(t *testing.T) {
		middlewares, sessionService, jwtManager := newAuthMiddlewares(t)
		token := issueToken(t, jwtManager, "session-1")

		session := &models.Session{SessionID: "session-1", UserID: "user-1", Role: constvars.RoleStudent}
		sessionService.On("GetSessionData", mock.Anything, "session-1").Return("raw-session", nil)
		sessionService.On("ParseSessionData", mock.Anything, "raw-session").Return(session, nil)

		var userID, role, sessionData string
		handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, _ = r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
			role, _ = r.Context().Value(constvars.CONTEXT_USER_ROLE_KEY).(string)
			sessionData, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "user-1", userID)
		assert.Equal(t, constvars.RoleStudent, role)
		assert.Equal(t, "raw-session", sessionData)
		sessionService.AssertExpectations(t)
	})

	t.Run("missing token", func(t *testing.T) {
		middlewares, _, _ := newAuthMiddlewares(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		rr := httptest.NewRecorder()
		middlewares.Authenticate(http.NotFoundHandler()).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		middlewares, sessionService, jwtManager := newAuthMiddlewares(t)
		token := issueToken(t, jwtManager, "session-1")

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token+"x")
		rr := httptest.NewRecorder()
		middlewares.Authenticate(http.NotFoundHandler()).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		sessionService.AssertNotCalled(t, "GetSessionData", mock.Anything, mock.Anything)
	})

	t.Run("session revoked", func(t *testing.T) {
		middlewares, sessionService, jwtManager := newAuthMiddlewares(t)
		token := issueToken(t, jwtManager, "session-2")

		sessionService.On("GetSessionData", mock.Anything, "session-2").
			Return("", exceptions.ErrSessionNotFound(errors.New("gone")))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		middlewares.Authenticate(http.NotFoundHandler()).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestOptionalAuthenticate(t *testing.T) {
	middlewares, _, _ := newAuthMiddlewares(t)

	t.Run("guest passes through", func(t *testing.T) {
		var userID string
		handler := middlewares.OptionalAuthenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, _ = r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, userID)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		rr := httptest.NewRecorder()
		middlewares.OptionalAuthenticate(http.NotFoundHandler()).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	middlewares, _, _ := newAuthMiddlewares(t)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name     string
		ctx      context.Context
		roles    []string
		wantCode int
	}{
		{
			name:     "matching role",
			ctx:      context.WithValue(context.Background(), constvars.CONTEXT_USER_ROLE_KEY, constvars.RoleCounselor),
			roles:    []string{constvars.RoleCounselor, constvars.RoleAdmin},
			wantCode: http.StatusOK,
		},
		{
			name:     "student on admin route",
			ctx:      context.WithValue(context.Background(), constvars.CONTEXT_USER_ROLE_KEY, constvars.RoleStudent),
			roles:    []string{constvars.RoleAdmin},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "no session",
			ctx:      context.Background(),
			roles:    []string{constvars.RoleStudent},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "api key counts as admin",
			ctx:      context.WithValue(context.Background(), constvars.CONTEXT_API_KEY_AUTH_KEY, true),
			roles:    []string{constvars.RoleAdmin},
			wantCode: http.StatusOK,
		},
		{
			name:     "api key on student only route",
			ctx:      context.WithValue(context.Background(), constvars.CONTEXT_API_KEY_AUTH_KEY, true),
			roles:    []string{constvars.RoleStudent},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/overview", nil).WithContext(tt.ctx)
			rr := httptest.NewRecorder()
			middlewares.RequireRoles(tt.roles...)(ok).ServeHTTP(rr, req)
			assert.Equal(t, tt.wantCode, rr.Code)
		})
	}
}

func TestAuthenticate_APIKeyWithoutToken(t *testing.T) {
	middlewares, sessionService, _ := newAuthMiddlewares(t)

	handler := middlewares.APIKeyAuth(middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/overview", nil)
	req.Header.Set(constvars.HeaderXAPIKey, testAPIKey)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	sessionService.AssertNotCalled(t, "GetSessionData", mock.Anything, mock.Anything)
}
