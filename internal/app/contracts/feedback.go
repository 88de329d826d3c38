package contracts

import (
	"context"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"
)

type FeedbackUsecase interface {
	SubmitFeedback(ctx context.Context, request *requests.SubmitFeedback) (*responses.Feedback, error)
	FindAll(ctx context.Context, request *requests.Pagination) ([]responses.Feedback, *responses.Pagination, error)
}

type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedbackModel *models.Feedback) (feedbackID string, err error)
	FindAll(ctx context.Context, request *requests.Pagination) ([]models.Feedback, error)
	CountAll(ctx context.Context) (int64, error)
	AverageRating(ctx context.Context) (float64, error)
}
