package assessments

import (
	"context"
	"errors"
	"fmt"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/assessment"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"
	"mindfulness-service/internal/pkg/exceptions"
	"mindfulness-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const latestAssessmentCacheTTL = 7 * 24 * time.Hour

var errAssessmentNotOwned = errors.New("assessment belongs to another student")

type assessmentUsecase struct {
	Engine               *assessment.Engine
	AssessmentRepository contracts.AssessmentRepository
	UserRepository       contracts.UserRepository
	RedisRepository      contracts.RedisRepository
	SessionService       contracts.SessionService
	CrisisAlertQueue     contracts.CrisisAlertQueue
	ReportRenderer       contracts.ReportRenderer
	MinioStorage         contracts.Storage
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

var (
	assessmentUsecaseInstance contracts.AssessmentUsecase
	onceAssessmentUsecase     sync.Once
)

func NewAssessmentUsecase(
	assessmentMongoRepository contracts.AssessmentRepository,
	userMongoRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	crisisAlertQueue contracts.CrisisAlertQueue,
	reportRenderer contracts.ReportRenderer,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	onceAssessmentUsecase.Do(func() {
		assessmentUsecaseInstance = &assessmentUsecase{
			Engine:               assessment.DefaultEngine(),
			AssessmentRepository: assessmentMongoRepository,
			UserRepository:       userMongoRepository,
			RedisRepository:      redisRepository,
			SessionService:       sessionService,
			CrisisAlertQueue:     crisisAlertQueue,
			ReportRenderer:       reportRenderer,
			MinioStorage:         minioStorage,
			InternalConfig:       internalConfig,
			Log:                  logger,
		}
	})
	return assessmentUsecaseInstance
}

func (uc *assessmentUsecase) ListQuestionnaires(ctx context.Context) ([]responses.Questionnaire, error) {
	definitions := uc.Engine.Definitions()
	result := make([]responses.Questionnaire, 0, len(definitions))
	for _, definition := range definitions {
		result = append(result, toQuestionnaireResponse(definition))
	}
	return result, nil
}

func (uc *assessmentUsecase) GetQuestionnaire(ctx context.Context, questionnaireID string) (*responses.Questionnaire, error) {
	definition, err := uc.Engine.Definition(assessment.QuestionnaireID(questionnaireID))
	if err != nil {
		return nil, exceptions.ErrNotFound(err)
	}
	questionnaire := toQuestionnaireResponse(definition)
	return &questionnaire, nil
}

// ScoreAssessment classifies a response vector without storing anything.
func (uc *assessmentUsecase) ScoreAssessment(ctx context.Context, request *requests.ScoreAssessment) (*responses.AssessmentResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.ScoreAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, request.QuestionnaireID),
	)

	result, err := uc.Engine.Score(assessment.QuestionnaireID(request.QuestionnaireID), request.Responses)
	if err != nil {
		uc.Log.Error("assessmentUsecase.ScoreAssessment error scoring responses",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrAssessmentScoring(err)
	}

	uc.Log.Info("assessmentUsecase.ScoreAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTotalScoreKey, result.TotalScore),
		zap.String(constvars.LoggingSeverityKey, result.Severity),
	)
	return toAssessmentResult(result), nil
}

// SubmitAssessment scores and stores a student's submission. A crisis result
// is published to the crisis alert queue; a publish failure is logged and
// does not fail the submission.
func (uc *assessmentUsecase) SubmitAssessment(ctx context.Context, sessionData string, request *requests.ScoreAssessment) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.SubmitAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, request.QuestionnaireID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	result, err := uc.Engine.Score(assessment.QuestionnaireID(request.QuestionnaireID), request.Responses)
	if err != nil {
		uc.Log.Error("assessmentUsecase.SubmitAssessment error scoring responses",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrAssessmentScoring(err)
	}

	assessmentModel := &models.Assessment{
		StudentID:       session.UserID,
		QuestionnaireID: string(result.QuestionnaireID),
		Responses:       dereferenceResponses(request.Responses),
		TotalScore:      result.TotalScore,
		MaxScore:        result.MaxScore,
		Severity:        result.Severity,
		Interpretation:  result.Interpretation,
		WellnessScore:   result.WellnessScore,
		Crisis:          result.Crisis,
		CompletedAt:     time.Now().UTC(),
	}

	assessmentModel.ID, err = uc.AssessmentRepository.CreateAssessment(ctx, assessmentModel)
	if err != nil {
		uc.Log.Error("assessmentUsecase.SubmitAssessment error creating assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := toAssessmentResponse(assessmentModel)
	uc.cacheLatest(ctx, requestID, response)

	if assessmentModel.Crisis {
		uc.publishCrisisAlert(ctx, requestID, session, assessmentModel)
	}

	utils.LogBusinessEvent(uc.Log, "assessment_submitted", requestID,
		zap.String(constvars.LoggingAssessmentIDKey, assessmentModel.ID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingSeverityKey, assessmentModel.Severity),
		zap.Bool("crisis", assessmentModel.Crisis),
	)
	return response, nil
}

func (uc *assessmentUsecase) FindAll(ctx context.Context, sessionData string, request *requests.QueryAssessments) ([]responses.Assessment, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, request),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, nil, err
	}
	request.StudentID = session.UserID

	total, err := uc.AssessmentRepository.CountAll(ctx, request)
	if err != nil {
		uc.Log.Error("assessmentUsecase.FindAll error counting assessments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	assessments, err := uc.AssessmentRepository.FindAll(ctx, request)
	if err != nil {
		uc.Log.Error("assessmentUsecase.FindAll error finding assessments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	result := make([]responses.Assessment, 0, len(assessments))
	for i := range assessments {
		result = append(result, *toAssessmentResponse(&assessments[i]))
	}

	baseURL := fmt.Sprintf(constvars.AppResourcePathFormat, uc.InternalConfig.App.EndpointPrefix, uc.InternalConfig.App.Version, constvars.ResourceAssessments)
	pagination := utils.BuildPaginationResponse(int(total), request.Page, request.PageSize, baseURL)

	uc.Log.Info("assessmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("total", total),
	)
	return result, pagination, nil
}

func (uc *assessmentUsecase) FindByID(ctx context.Context, sessionData string, assessmentID string) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	_, assessmentModel, err := uc.findAccessible(ctx, sessionData, assessmentID)
	if err != nil {
		return nil, err
	}
	return toAssessmentResponse(assessmentModel), nil
}

// CreateReport renders the assessment as a PDF, stores it in the report
// bucket and returns a time limited download link.
func (uc *assessmentUsecase) CreateReport(ctx context.Context, sessionData string, assessmentID string) (*responses.AssessmentReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.CreateReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	session, assessmentModel, err := uc.findAccessible(ctx, sessionData, assessmentID)
	if err != nil {
		return nil, err
	}

	definition, err := uc.Engine.Definition(assessment.QuestionnaireID(assessmentModel.QuestionnaireID))
	if err != nil {
		return nil, exceptions.ErrAssessmentScoring(err)
	}

	studentName, studentEmail := session.Name, session.Email
	if session.UserID != assessmentModel.StudentID {
		student, err := uc.UserRepository.FindByID(ctx, assessmentModel.StudentID)
		if err != nil {
			return nil, err
		}
		studentName, studentEmail = constvars.DefaultStudentName, ""
		if student != nil {
			studentName, studentEmail = student.Name, student.Email
		}
	}

	document, err := uc.ReportRenderer.RenderAssessmentReport(ctx, &contracts.RenderAssessmentReportInput{
		StudentName:  studentName,
		StudentEmail: studentEmail,
		Assessment:   assessmentModel,
		Definition:   definition,
		GeneratedAt:  time.Now().UTC(),
	})
	if err != nil {
		uc.Log.Error("assessmentUsecase.CreateReport error rendering report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrRenderReport(err)
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	objectName := utils.GenerateFileName(constvars.ReportObjectFolder, assessmentModel.QuestionnaireID, assessmentModel.ID, constvars.ReportFileExt)
	objectName, err = uc.MinioStorage.UploadObject(ctx, bucketName, objectName, document, constvars.MIMEApplicationPDF)
	if err != nil {
		uc.Log.Error("assessmentUsecase.CreateReport error uploading report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, bucketName),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.AssessmentRepository.UpdateReportObject(ctx, assessmentModel.ID, objectName)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlExpiryTimeInMinutes) * time.Minute
	url, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		uc.Log.Error("assessmentUsecase.CreateReport error presigning report url",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("assessmentUsecase.CreateReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	return &responses.AssessmentReport{
		AssessmentID: assessmentModel.ID,
		ObjectName:   objectName,
		URL:          url,
		ExpiresAt:    time.Now().UTC().Add(expiry),
	}, nil
}

func (uc *assessmentUsecase) GetCrisisResources(ctx context.Context) *responses.CrisisResources {
	return &responses.CrisisResources{
		Message:   constvars.CrisisResourcesMessage,
		Helplines: assessment.CrisisHelplines,
	}
}

// findAccessible loads an assessment visible to the session: students see
// their own, counselors and admins see any.
func (uc *assessmentUsecase) findAccessible(ctx context.Context, sessionData, assessmentID string) (*models.Session, *models.Assessment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, nil, err
	}

	assessmentModel, err := uc.AssessmentRepository.FindByID(ctx, assessmentID)
	if err != nil {
		return nil, nil, err
	}
	if assessmentModel == nil {
		return nil, nil, exceptions.ErrNotFound(nil)
	}

	if assessmentModel.StudentID != session.UserID && !session.HasRole(constvars.RoleCounselor, constvars.RoleAdmin) {
		return nil, nil, exceptions.ErrNotMatchRoleType(errAssessmentNotOwned)
	}
	return session, assessmentModel, nil
}

func (uc *assessmentUsecase) cacheLatest(ctx context.Context, requestID string, response *responses.Assessment) {
	key := fmt.Sprintf(constvars.RedisKeyLatestAssessmentFormat, response.StudentID)
	if err := uc.RedisRepository.Set(ctx, key, response, latestAssessmentCacheTTL); err != nil {
		uc.Log.Warn("assessmentUsecase.cacheLatest error caching latest assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}

func (uc *assessmentUsecase) publishCrisisAlert(ctx context.Context, requestID string, session *models.Session, assessmentModel *models.Assessment) {
	alert := &models.CrisisAlert{
		ID:              uuid.NewString(),
		AssessmentID:    assessmentModel.ID,
		StudentID:       session.UserID,
		StudentName:     session.Name,
		StudentEmail:    session.Email,
		QuestionnaireID: assessmentModel.QuestionnaireID,
		TotalScore:      assessmentModel.TotalScore,
		Severity:        assessmentModel.Severity,
		CreatedAt:       assessmentModel.CompletedAt,
	}

	if err := uc.CrisisAlertQueue.Enqueue(ctx, alert); err != nil {
		uc.Log.Error("assessmentUsecase.publishCrisisAlert error enqueueing crisis alert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentModel.ID),
			zap.Error(err),
		)
		return
	}

	utils.LogSecurityEvent(uc.Log, "crisis_alert_published", requestID,
		zap.String(constvars.LoggingAssessmentIDKey, assessmentModel.ID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
}
