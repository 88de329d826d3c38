package middlewares

import (
	"context"
	"errors"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/app/services/shared/jwtmanager"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/exceptions"
	"mindfulness-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

var errRoleNotAllowed = errors.New("role is not allowed on this route")

// Authenticate requires a valid bearer token whose session is still stored.
// The raw session data, user id and role are placed in the request context.
// A request already authorised by APIKeyAuth may omit the token.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := utils.ExtractBearerToken(r.Header.Get(constvars.HeaderAuthorization))
		if token == "" && IsAPIKeyAuthorized(r.Context()) {
			next.ServeHTTP(w, r)
			return
		}
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		ctx, err := m.resolveSession(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate resolves the session when a bearer token is present
// and lets guests through otherwise. An invalid token is still rejected.
func (m *Middlewares) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := utils.ExtractBearerToken(r.Header.Get(constvars.HeaderAuthorization))
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx, err := m.resolveSession(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles must run after Authenticate. Requests authorised with the
// superadmin API key are treated as admin.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IsAPIKeyAuthorized(r.Context()) && containsRole(roles, constvars.RoleAdmin) {
				next.ServeHTTP(w, r)
				return
			}

			role, _ := r.Context().Value(constvars.CONTEXT_USER_ROLE_KEY).(string)
			if !containsRole(roles, role) {
				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				utils.LogSecurityEvent(m.Log, "role_rejected", requestID,
					zap.String(constvars.LoggingRoleKey, role),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(errRoleNotAllowed))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middlewares) resolveSession(ctx context.Context, token string) (context.Context, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	verified, err := m.JWTManager.VerifyToken(ctx, &jwtmanager.VerifyTokenInput{Token: token})
	if err != nil {
		return nil, exceptions.ErrTokenMissing(err)
	}
	if !verified.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	sessionData, err := m.SessionService.GetSessionData(ctx, verified.SessionID)
	if err != nil {
		m.Log.Info("Middlewares.resolveSession session not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	session, err := m.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	return withSession(ctx, sessionData, session), nil
}

func withSession(ctx context.Context, sessionData string, session *models.Session) context.Context {
	ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
	ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ID_KEY, session.UserID)
	ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ROLE_KEY, session.Role)
	return ctx
}

func containsRole(roles []string, role string) bool {
	for _, candidate := range roles {
		if candidate == role {
			return true
		}
	}
	return false
}
