package middlewares

import (
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/app/services/shared/jwtmanager"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	JWTManager     *jwtmanager.JWTManager
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	sessionService contracts.SessionService,
	jwtManager *jwtmanager.JWTManager,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		JWTManager:     jwtManager,
		InternalConfig: internalConfig,
	}
}
