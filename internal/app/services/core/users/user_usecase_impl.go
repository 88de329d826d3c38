package users

import (
	"context"
	"errors"
	"fmt"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"
	"mindfulness-service/internal/pkg/exceptions"
	"mindfulness-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var errSuspendSelf = errors.New("admin cannot suspend their own account")

type userUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userMongoRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userMongoRepository,
			SessionService: sessionService,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetUserProfileBySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("userUsecase.GetUserProfileBySession error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("userUsecase.GetUserProfileBySession error finding user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	profile := toUserProfile(user)
	uc.Log.Info("userUsecase.GetUserProfileBySession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &profile, nil
}

func (uc *userUsecase) FindAll(ctx context.Context, request *requests.QueryUsers) ([]responses.UserProfile, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, request),
	)

	total, err := uc.UserRepository.CountAll(ctx, request)
	if err != nil {
		uc.Log.Error("userUsecase.FindAll error counting users",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	users, err := uc.UserRepository.FindAll(ctx, request)
	if err != nil {
		uc.Log.Error("userUsecase.FindAll error finding users",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	result := make([]responses.UserProfile, 0, len(users))
	for i := range users {
		result = append(result, toUserProfile(&users[i]))
	}

	baseURL := fmt.Sprintf(constvars.AppResourcePathFormat, uc.InternalConfig.App.EndpointPrefix, uc.InternalConfig.App.Version, constvars.ResourceUsers)
	pagination := utils.BuildPaginationResponse(int(total), request.Page, request.PageSize, baseURL)

	uc.Log.Info("userUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("total", total),
	)
	return result, pagination, nil
}

func (uc *userUsecase) SuspendUser(ctx context.Context, sessionData string, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.SuspendUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	if session.UserID == userID {
		return exceptions.ErrNotMatchRoleType(errSuspendSelf)
	}

	err = uc.UserRepository.UpdateSuspended(ctx, userID, true)
	if err != nil {
		uc.Log.Error("userUsecase.SuspendUser error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	utils.LogSecurityEvent(uc.Log, "user_suspended", requestID,
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String("suspended_by", session.UserID),
	)
	return nil
}

func (uc *userUsecase) UnsuspendUser(ctx context.Context, sessionData string, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UnsuspendUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	err = uc.UserRepository.UpdateSuspended(ctx, userID, false)
	if err != nil {
		uc.Log.Error("userUsecase.UnsuspendUser error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	utils.LogSecurityEvent(uc.Log, "user_unsuspended", requestID,
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String("unsuspended_by", session.UserID),
	)
	return nil
}

func toUserProfile(user *models.User) responses.UserProfile {
	return responses.UserProfile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Username:  user.Username,
		Role:      user.Role,
		Suspended: user.Suspended,
		CreatedAt: user.CreatedAt,
	}
}
