package analytics

import (
	"context"
	"fmt"
	"math"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/pkg/assessment"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type analyticsUsecase struct {
	UserRepository        contracts.UserRepository
	AssessmentRepository  contracts.AssessmentRepository
	AppointmentRepository contracts.AppointmentRepository
	FeedbackRepository    contracts.FeedbackRepository
	RedisRepository       contracts.RedisRepository
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	analyticsUsecaseInstance contracts.AnalyticsUsecase
	onceAnalyticsUsecase     sync.Once
)

func NewAnalyticsUsecase(
	userMongoRepository contracts.UserRepository,
	assessmentMongoRepository contracts.AssessmentRepository,
	appointmentMongoRepository contracts.AppointmentRepository,
	feedbackMongoRepository contracts.FeedbackRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AnalyticsUsecase {
	onceAnalyticsUsecase.Do(func() {
		analyticsUsecaseInstance = &analyticsUsecase{
			UserRepository:        userMongoRepository,
			AssessmentRepository:  assessmentMongoRepository,
			AppointmentRepository: appointmentMongoRepository,
			FeedbackRepository:    feedbackMongoRepository,
			RedisRepository:       redisRepository,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return analyticsUsecaseInstance
}

func (uc *analyticsUsecase) GetOverview(ctx context.Context) (*responses.AnalyticsOverview, error) {
	return withCache(ctx, uc, constvars.AnalyticsOverviewKey, uc.buildOverview)
}

func (uc *analyticsUsecase) GetAssessmentAnalytics(ctx context.Context) (*responses.AssessmentAnalytics, error) {
	return withCache(ctx, uc, constvars.AnalyticsAssessmentsKey, uc.buildAssessmentAnalytics)
}

func (uc *analyticsUsecase) GetAppointmentAnalytics(ctx context.Context) (*responses.AppointmentAnalytics, error) {
	return withCache(ctx, uc, constvars.AnalyticsAppointmentsKey, uc.buildAppointmentAnalytics)
}

func (uc *analyticsUsecase) buildOverview(ctx context.Context) (*responses.AnalyticsOverview, error) {
	totalUsers, err := uc.UserRepository.CountAll(ctx, &requests.QueryUsers{})
	if err != nil {
		return nil, err
	}

	totalAssessments, err := uc.AssessmentRepository.CountAll(ctx, &requests.QueryAssessments{})
	if err != nil {
		return nil, err
	}

	appointmentCounts, err := uc.AppointmentRepository.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	var totalAppointments int64
	for _, count := range appointmentCounts {
		totalAppointments += count
	}

	averageRating, err := uc.FeedbackRepository.AverageRating(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Format(constvars.AnalyticsDayLayout)

	activeUsers, err := uc.RedisRepository.CountSetMembers(ctx, fmt.Sprintf(constvars.RedisKeyActiveUsersFormat, today))
	if err != nil {
		return nil, err
	}

	chatCounter, err := uc.RedisRepository.Get(ctx, fmt.Sprintf(constvars.RedisKeyChatCounterFormat, today))
	if err != nil {
		return nil, err
	}
	var totalChatMessages int64
	if chatCounter != "" {
		totalChatMessages, err = strconv.ParseInt(chatCounter, 10, 64)
		if err != nil {
			return nil, err
		}
	}

	return &responses.AnalyticsOverview{
		TotalUsers:        totalUsers,
		ActiveUsers:       activeUsers,
		TotalAssessments:  totalAssessments,
		TotalAppointments: totalAppointments,
		TotalChatMessages: totalChatMessages,
		AverageRating:     roundTo2(averageRating),
	}, nil
}

// buildAssessmentAnalytics lists every builtin questionnaire, including those
// nobody has taken yet, followed by any other stored questionnaire id.
func (uc *analyticsUsecase) buildAssessmentAnalytics(ctx context.Context) (*responses.AssessmentAnalytics, error) {
	stats, err := uc.AssessmentRepository.AggregateSeverityStats(ctx)
	if err != nil {
		return nil, err
	}

	order := make([]string, 0)
	scoreSums := make(map[string]int64)
	byQuestionnaire := make(map[string]*responses.QuestionnaireAnalytics)
	ensure := func(id string) *responses.QuestionnaireAnalytics {
		item, ok := byQuestionnaire[id]
		if !ok {
			item = &responses.QuestionnaireAnalytics{QuestionnaireID: id, SeverityCounts: map[string]int64{}}
			byQuestionnaire[id] = item
			order = append(order, id)
		}
		return item
	}

	for _, definition := range assessment.BuiltinDefinitions() {
		item := ensure(string(definition.ID))
		for _, band := range definition.SeverityBands {
			item.SeverityCounts[band.Label] = 0
		}
	}

	for _, stat := range stats {
		item := ensure(stat.Key.QuestionnaireID)
		item.Count += stat.Count
		item.SeverityCounts[stat.Key.Severity] += stat.Count
		scoreSums[stat.Key.QuestionnaireID] += stat.ScoreSum
	}

	result := &responses.AssessmentAnalytics{Questionnaires: make([]responses.QuestionnaireAnalytics, 0, len(order))}
	for _, id := range order {
		item := byQuestionnaire[id]
		if item.Count > 0 {
			item.AverageScore = roundTo2(float64(scoreSums[id]) / float64(item.Count))
		}
		result.Questionnaires = append(result.Questionnaires, *item)
	}
	return result, nil
}

func (uc *analyticsUsecase) buildAppointmentAnalytics(ctx context.Context) (*responses.AppointmentAnalytics, error) {
	counts, err := uc.AppointmentRepository.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	result := &responses.AppointmentAnalytics{
		Booked:    counts[constvars.AppointmentStatusBooked],
		Cancelled: counts[constvars.AppointmentStatusCancelled],
		Completed: counts[constvars.AppointmentStatusCompleted],
	}
	for _, count := range counts {
		result.Total += count
	}
	return result, nil
}

func (uc *analyticsUsecase) cacheTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Analytics.CacheTTLInSeconds) * time.Second
}

// withCache serves name from redis when present, otherwise builds it and
// stores the result for the configured TTL. A zero TTL disables caching.
func withCache[T any](ctx context.Context, uc *analyticsUsecase, name string, build func(context.Context) (*T, error)) (*T, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("analyticsUsecase called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, name),
	)

	key := fmt.Sprintf(constvars.RedisKeyAnalyticsFormat, name)
	ttl := uc.cacheTTL()

	if ttl > 0 {
		cached, err := uc.RedisRepository.Get(ctx, key)
		if err != nil {
			uc.Log.Warn("analyticsUsecase error reading cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
		if cached != "" {
			var result T
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				uc.Log.Info("analyticsUsecase served from cache",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingOperationKey, name),
				)
				return &result, nil
			}
		}
	}

	result, err := build(ctx)
	if err != nil {
		uc.Log.Error("analyticsUsecase error building analytics",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, name),
			zap.Error(err),
		)
		return nil, err
	}

	if ttl > 0 {
		if err := uc.RedisRepository.Set(ctx, key, result, ttl); err != nil {
			uc.Log.Warn("analyticsUsecase error caching analytics",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("analyticsUsecase succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, name),
	)
	return result, nil
}

func roundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}
