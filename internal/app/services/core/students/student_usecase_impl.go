package students

import (
	"context"
	"fmt"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/assessment"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const latestAssessmentCacheTTL = 7 * 24 * time.Hour

type studentUsecase struct {
	AssessmentRepository  contracts.AssessmentRepository
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	RedisRepository       contracts.RedisRepository
	SessionService        contracts.SessionService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	studentUsecaseInstance contracts.StudentUsecase
	onceStudentUsecase     sync.Once
)

func NewStudentUsecase(
	assessmentMongoRepository contracts.AssessmentRepository,
	appointmentMongoRepository contracts.AppointmentRepository,
	userMongoRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.StudentUsecase {
	onceStudentUsecase.Do(func() {
		studentUsecaseInstance = &studentUsecase{
			AssessmentRepository:  assessmentMongoRepository,
			AppointmentRepository: appointmentMongoRepository,
			UserRepository:        userMongoRepository,
			RedisRepository:       redisRepository,
			SessionService:        sessionService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return studentUsecaseInstance
}

func (uc *studentUsecase) GetDashboardSummary(ctx context.Context, sessionData string) (*responses.DashboardSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("studentUsecase.GetDashboardSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("studentUsecase.GetDashboardSummary error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	lastAssessment, err := uc.latestAssessment(ctx, requestID, session.UserID)
	if err != nil {
		uc.Log.Error("studentUsecase.GetDashboardSummary error finding latest assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	nextAppointment, err := uc.nextAppointment(ctx, requestID, session.UserID)
	if err != nil {
		uc.Log.Error("studentUsecase.GetDashboardSummary error finding next appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	studentName := session.Name
	if studentName == "" {
		studentName = constvars.DefaultStudentName
	}

	uc.Log.Info("studentUsecase.GetDashboardSummary succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.Bool("has_assessment", lastAssessment != nil),
		zap.Bool("has_appointment", nextAppointment != nil),
	)
	return &responses.DashboardSummary{
		StudentName:     studentName,
		LastAssessment:  lastAssessment,
		NextAppointment: nextAppointment,
	}, nil
}

// latestAssessment reads the cached result written on submission and falls
// back to the most recent stored assessment, refilling the cache.
func (uc *studentUsecase) latestAssessment(ctx context.Context, requestID, studentID string) (*responses.Assessment, error) {
	key := fmt.Sprintf(constvars.RedisKeyLatestAssessmentFormat, studentID)

	cached, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("studentUsecase.latestAssessment error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
	if cached != "" {
		var result responses.Assessment
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
		uc.Log.Warn("studentUsecase.latestAssessment discarding malformed cache entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
	}

	assessmentModel, err := uc.AssessmentRepository.FindLatestByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if assessmentModel == nil {
		return nil, nil
	}

	result := toAssessmentResponse(assessmentModel)
	if err := uc.RedisRepository.Set(ctx, key, result, latestAssessmentCacheTTL); err != nil {
		uc.Log.Warn("studentUsecase.latestAssessment error refilling cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
	return result, nil
}

func (uc *studentUsecase) nextAppointment(ctx context.Context, requestID, studentID string) (*responses.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindNextByStudentID(ctx, studentID, time.Now())
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, nil
	}

	result := &responses.Appointment{
		ID:          appointment.ID,
		StudentID:   appointment.StudentID,
		CounselorID: appointment.CounselorID,
		StartsAt:    appointment.StartsAt,
		Status:      appointment.Status,
		Notes:       appointment.Notes,
		CreatedAt:   appointment.CreatedAt,
	}

	counselor, err := uc.UserRepository.FindByID(ctx, appointment.CounselorID)
	if err != nil {
		uc.Log.Warn("studentUsecase.nextAppointment error finding counselor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return result, nil
	}
	if counselor != nil {
		result.Counselor = &responses.PersonSummary{ID: counselor.ID, Name: counselor.Name, Email: counselor.Email}
	}
	return result, nil
}

func toAssessmentResponse(model *models.Assessment) *responses.Assessment {
	result := &responses.Assessment{
		ID:          model.ID,
		StudentID:   model.StudentID,
		Responses:   model.Responses,
		CompletedAt: model.CompletedAt,
		AssessmentResult: responses.AssessmentResult{
			QuestionnaireID: model.QuestionnaireID,
			TotalScore:      model.TotalScore,
			MaxScore:        model.MaxScore,
			Severity:        model.Severity,
			Interpretation:  model.Interpretation,
			WellnessScore:   model.WellnessScore,
			Crisis:          model.Crisis,
		},
	}
	if model.Crisis {
		result.CrisisResources = assessment.CrisisHelplines
	}
	return result
}
