package auth

import (
	"context"
	"errors"
	"fmt"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/app/services/shared/jwtmanager"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"
	"mindfulness-service/internal/pkg/exceptions"
	"mindfulness-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

const activeUsersRetention = 48 * time.Hour

var errAdminRegistrationForbidden = errors.New("admin accounts can only be created with the superadmin api key")

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	SessionService  contracts.SessionService
	JWTManager      *jwtmanager.JWTManager
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userMongoRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	jwtManager *jwtmanager.JWTManager,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:  userMongoRepository,
			RedisRepository: redisRepository,
			SessionService:  sessionService,
			JWTManager:      jwtManager,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	if request.Role == constvars.RoleAdmin && !request.IsAPIKeyAuthorized {
		utils.LogSecurityEvent(uc.Log, "admin_registration_rejected", requestID,
			zap.String("email", request.Email),
		)
		return nil, exceptions.ErrNotMatchRoleType(errAdminRegistrationForbidden)
	}

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	existingUser, err = uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error finding user by username",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	request.HashedPassword, err = utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Username: request.Username,
		Password: request.HashedPassword,
		Role:     request.Role,
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "user_registered", requestID,
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingRoleKey, user.Role),
	)
	return &responses.RegisterUser{UserID: userID, Role: user.Role}, nil
}

// LoginUser accepts either an email or a username. Unknown accounts and wrong
// passwords produce the same error.
func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		user *models.User
		err  error
	)
	if request.Email != "" {
		user, err = uc.UserRepository.FindByEmail(ctx, request.Email)
	} else {
		user, err = uc.UserRepository.FindByUsername(ctx, request.Username)
	}
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error finding user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		utils.LogSecurityEvent(uc.Log, "login_failed", requestID,
			zap.String("email", request.Email),
			zap.String("username", request.Username),
		)
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}
	if user.Suspended {
		utils.LogSecurityEvent(uc.Log, "suspended_login_attempt", requestID,
			zap.String(constvars.LoggingUserIDKey, user.ID),
		)
		return nil, exceptions.ErrUserSuspended(nil)
	}

	session, err := uc.SessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := uc.JWTManager.CreateToken(ctx, &jwtmanager.CreateTokenInput{
		SessionID: session.SessionID,
		Subject:   user.ID,
	})
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error creating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.markActive(ctx, requestID, user.ID)

	uc.Log.Info("authUsecase.LoginUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingRoleKey, user.Role),
	)
	return &responses.LoginUser{
		Token: token.Token,
		User: responses.UserSummary{
			ID:    user.ID,
			Role:  user.Role,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LogoutUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("authUsecase.LogoutUser error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	err = uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.LogoutUser error deleting session from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.LogoutUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// markActive records the user in today's active set for analytics. Failures
// are logged and never block the login.
func (uc *authUsecase) markActive(ctx context.Context, requestID, userID string) {
	key := fmt.Sprintf(constvars.RedisKeyActiveUsersFormat, time.Now().UTC().Format(constvars.AnalyticsDayLayout))
	if err := uc.RedisRepository.AddToSet(ctx, key, userID); err != nil {
		uc.Log.Warn("authUsecase.markActive error adding user to active set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return
	}
	if err := uc.RedisRepository.Expire(ctx, key, activeUsersRetention); err != nil {
		uc.Log.Warn("authUsecase.markActive error setting active set expiry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}
