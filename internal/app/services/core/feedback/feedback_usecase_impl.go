package feedback

import (
	"context"
	"fmt"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"
	"mindfulness-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type feedbackUsecase struct {
	FeedbackRepository contracts.FeedbackRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	feedbackUsecaseInstance contracts.FeedbackUsecase
	onceFeedbackUsecase     sync.Once
)

func NewFeedbackUsecase(
	feedbackMongoRepository contracts.FeedbackRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.FeedbackUsecase {
	onceFeedbackUsecase.Do(func() {
		feedbackUsecaseInstance = &feedbackUsecase{
			FeedbackRepository: feedbackMongoRepository,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return feedbackUsecaseInstance
}

func (uc *feedbackUsecase) SubmitFeedback(ctx context.Context, request *requests.SubmitFeedback) (*responses.Feedback, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("feedbackUsecase.SubmitFeedback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("rating", request.Rating),
	)

	category := request.Category
	if category == "" {
		category = constvars.DefaultFeedbackCategory
	}

	feedbackModel := &models.Feedback{
		UserID:   request.UserID,
		Rating:   request.Rating,
		Message:  request.Message,
		Category: category,
	}
	feedbackModel.SetCreatedAtUpdatedAt()

	feedbackID, err := uc.FeedbackRepository.CreateFeedback(ctx, feedbackModel)
	if err != nil {
		uc.Log.Error("feedbackUsecase.SubmitFeedback error creating feedback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	feedbackModel.ID = feedbackID

	uc.Log.Info("feedbackUsecase.SubmitFeedback succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("feedback_id", feedbackID),
	)
	response := toFeedbackResponse(feedbackModel)
	return &response, nil
}

func (uc *feedbackUsecase) FindAll(ctx context.Context, request *requests.Pagination) ([]responses.Feedback, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("feedbackUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, request),
	)

	total, err := uc.FeedbackRepository.CountAll(ctx)
	if err != nil {
		uc.Log.Error("feedbackUsecase.FindAll error counting feedback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	feedback, err := uc.FeedbackRepository.FindAll(ctx, request)
	if err != nil {
		uc.Log.Error("feedbackUsecase.FindAll error finding feedback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	result := make([]responses.Feedback, 0, len(feedback))
	for i := range feedback {
		result = append(result, toFeedbackResponse(&feedback[i]))
	}

	baseURL := fmt.Sprintf(constvars.AppResourcePathFormat, uc.InternalConfig.App.EndpointPrefix, uc.InternalConfig.App.Version, constvars.ResourceFeedback)
	pagination := utils.BuildPaginationResponse(int(total), request.Page, request.PageSize, baseURL)

	uc.Log.Info("feedbackUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("total", total),
	)
	return result, pagination, nil
}

func toFeedbackResponse(feedbackModel *models.Feedback) responses.Feedback {
	return responses.Feedback{
		ID:        feedbackModel.ID,
		UserID:    feedbackModel.UserID,
		Rating:    feedbackModel.Rating,
		Message:   feedbackModel.Message,
		Category:  feedbackModel.Category,
		CreatedAt: feedbackModel.CreatedAt,
	}
}
