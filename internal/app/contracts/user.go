package contracts

import (
	"context"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.UserProfile, error)
	FindAll(ctx context.Context, request *requests.QueryUsers) ([]responses.UserProfile, *responses.Pagination, error)
	SuspendUser(ctx context.Context, sessionData string, userID string) error
	UnsuspendUser(ctx context.Context, sessionData string, userID string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByIDs(ctx context.Context, userIDs []string) ([]models.User, error)
	FindAll(ctx context.Context, request *requests.QueryUsers) ([]models.User, error)
	CountAll(ctx context.Context, request *requests.QueryUsers) (int64, error)
	UpdateSuspended(ctx context.Context, userID string, suspended bool) error
}
