package jwtmanager

import (
	"context"
	"errors"
	"fmt"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const claimSessionID = "session_id"

var (
	ErrEmptySecret    = errors.New("JWT_SECRET is empty")
	ErrEmptySessionID = errors.New("session id is required")
	ErrEmptyToken     = errors.New("token is required")
)

// JWTManager signs and verifies the HS256 tokens handed out at login. The
// token only carries the session id; the session itself lives in redis.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
}

type CreateTokenInput struct {
	SessionID string
	Subject   string
}

type CreateTokenOutput struct {
	Token     string
	ExpiresAt time.Time
}

type VerifyTokenInput struct {
	Token string
}

type VerifyTokenOutput struct {
	Valid     bool
	SessionID string
	Subject   string
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, ErrEmptySecret
	}

	ttl := time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &JWTManager{
		log:    log,
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// TTL is the lifetime of issued tokens and of the sessions they point to.
func (j *JWTManager) TTL() time.Duration {
	return j.ttl
}

func (j *JWTManager) CreateToken(ctx context.Context, in *CreateTokenInput) (*CreateTokenOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Info("JWTManager.CreateToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.SessionID) == "" {
		return nil, ErrEmptySessionID
	}

	now := time.Now().UTC()
	expiresAt := now.Add(j.ttl)
	claims := jwt.MapClaims{
		claimSessionID: in.SessionID,
		"iat":          now.Unix(),
		"nbf":          now.Unix(),
		"exp":          expiresAt.Unix(),
	}
	if in.Subject != "" {
		claims["sub"] = in.Subject
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return nil, err
	}

	j.log.Info("JWTManager.CreateToken succeeded", zap.String(constvars.LoggingRequestIDKey, requestID))
	return &CreateTokenOutput{Token: signed, ExpiresAt: expiresAt}, nil
}

// VerifyToken checks signature, algorithm and expiry. An invalid token is
// reported through Valid rather than an error.
func (j *JWTManager) VerifyToken(ctx context.Context, in *VerifyTokenInput) (*VerifyTokenOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Info("JWTManager.VerifyToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.Token) == "" {
		return &VerifyTokenOutput{Valid: false}, ErrEmptyToken
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, t.Header["alg"])
		}
		return j.secret, nil
	}

	parsed, err := jwt.Parse(in.Token, keyFunc)
	if err != nil || !parsed.Valid {
		j.log.Info("JWTManager.VerifyToken rejected token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &VerifyTokenOutput{Valid: false}, nil
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return &VerifyTokenOutput{Valid: false}, nil
	}

	sessionID, _ := claims[claimSessionID].(string)
	if sessionID == "" {
		return &VerifyTokenOutput{Valid: false}, nil
	}
	subject, _ := claims["sub"].(string)

	return &VerifyTokenOutput{Valid: true, SessionID: sessionID, Subject: subject}, nil
}
