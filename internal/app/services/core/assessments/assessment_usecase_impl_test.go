package assessments

import (
	"context"
	"errors"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/app/mocks"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/assessment"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"
	"mindfulness-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type assessmentTestDeps struct {
	assessments *mocks.MockAssessmentRepository
	users       *mocks.MockUserRepository
	redis       *mocks.MockRedisRepository
	sessions    *mocks.MockSessionService
	queue       *mocks.MockCrisisAlertQueue
	renderer    *mocks.MockReportRenderer
	storage     *mocks.MockStorage
}

func newTestAssessmentUsecase() (*assessmentUsecase, *assessmentTestDeps) {
	deps := &assessmentTestDeps{
		assessments: new(mocks.MockAssessmentRepository),
		users:       new(mocks.MockUserRepository),
		redis:       new(mocks.MockRedisRepository),
		sessions:    new(mocks.MockSessionService),
		queue:       new(mocks.MockCrisisAlertQueue),
		renderer:    new(mocks.MockReportRenderer),
		storage:     new(mocks.MockStorage),
	}
	uc := &assessmentUsecase{
		Engine:               assessment.DefaultEngine(),
		AssessmentRepository: deps.assessments,
		UserRepository:       deps.users,
		RedisRepository:      deps.redis,
		SessionService:       deps.sessions,
		CrisisAlertQueue:     deps.queue,
		ReportRenderer:       deps.renderer,
		MinioStorage:         deps.storage,
		InternalConfig: &config.InternalConfig{
			App:   config.App{EndpointPrefix: "api", Version: "v1"},
			Minio: config.AppMinio{BucketName: "reports", PreSignedUrlExpiryTimeInMinutes: 15},
		},
		Log: zap.NewNop(),
	}
	return uc, deps
}

var studentSession = &models.Session{SessionID: "s1", UserID: "student-1", Role: constvars.RoleStudent, Name: "Asha", Email: "asha@example.edu"}

func TestListQuestionnaires(t *testing.T) {
	uc, _ := newTestAssessmentUsecase()

	questionnaires, err := uc.ListQuestionnaires(context.Background())

	require.NoError(t, err)
	require.Len(t, questionnaires, 3)
	assert.Equal(t, "phq-9", questionnaires[0].ID)
	assert.Len(t, questionnaires[0].Questions, 9)
	assert.Equal(t, 27, questionnaires[0].MaxScore)
	assert.Len(t, questionnaires[0].AnswerOptions, 4)
}

func TestGetQuestionnaire(t *testing.T) {
	uc, _ := newTestAssessmentUsecase()

	t.Run("Known Id", func(t *testing.T) {
		questionnaire, err := uc.GetQuestionnaire(context.Background(), "ghq-12")

		require.NoError(t, err)
		assert.Equal(t, 36, questionnaire.MaxScore)
	})

	t.Run("Unknown Id Is Not Found", func(t *testing.T) {
		_, err := uc.GetQuestionnaire(context.Background(), "phq-2")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.ErrorIs(t, err, assessment.ErrInvalidQuestionnaireID)
	})
}

func TestScoreAssessment(t *testing.T) {
	uc, deps := newTestAssessmentUsecase()

	t.Run("Crisis Result Carries Helplines", func(t *testing.T) {
		result, err := uc.ScoreAssessment(context.Background(), &requests.ScoreAssessment{
			QuestionnaireID: "phq-9",
			Responses:       assessment.Responses(3, 3, 3, 3, 3, 3, 3, 3, 3),
		})

		require.NoError(t, err)
		assert.Equal(t, 27, result.TotalScore)
		assert.True(t, result.Crisis)
		assert.Equal(t, assessment.CrisisHelplines, result.CrisisResources)
		deps.assessments.AssertNotCalled(t, "CreateAssessment", mock.Anything, mock.Anything)
	})

	t.Run("Incomplete Vector Is Bad Request", func(t *testing.T) {
		_, err := uc.ScoreAssessment(context.Background(), &requests.ScoreAssessment{
			QuestionnaireID: "gad-7",
			Responses:       assessment.Responses(1, 1),
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.ErrorIs(t, err, assessment.ErrIncompleteResponses)
	})
}

func TestSubmitAssessment(t *testing.T) {
	ctx := context.Background()

	t.Run("Non Crisis Is Stored And Cached", func(t *testing.T) {
		uc, deps := newTestAssessmentUsecase()
		deps.sessions.On("ParseSessionData", ctx, "raw").Return(studentSession, nil)
		deps.assessments.On("CreateAssessment", ctx, mock.MatchedBy(func(a *models.Assessment) bool {
			return a.StudentID == "student-1" && a.TotalScore == 7 && a.Severity == "mild"
		})).Return("a1", nil)
		deps.redis.On("Set", ctx, "assessment:latest:student-1", mock.AnythingOfType("*responses.Assessment"), latestAssessmentCacheTTL).Return(nil)

		result, err := uc.SubmitAssessment(ctx, "raw", &requests.ScoreAssessment{
			QuestionnaireID: "gad-7",
			Responses:       assessment.Responses(1, 1, 1, 1, 1, 1, 1),
		})

		require.NoError(t, err)
		assert.Equal(t, "a1", result.ID)
		assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1}, result.Responses)
		assert.False(t, result.Crisis)
		deps.queue.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
		deps.redis.AssertExpectations(t)
	})

	t.Run("Crisis Publishes Alert", func(t *testing.T) {
		uc, deps := newTestAssessmentUsecase()
		deps.sessions.On("ParseSessionData", ctx, "raw").Return(studentSession, nil)
		deps.assessments.On("CreateAssessment", ctx, mock.Anything).Return("a2", nil)
		deps.redis.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		deps.queue.On("Enqueue", ctx, mock.MatchedBy(func(alert *models.CrisisAlert) bool {
			return alert.AssessmentID == "a2" && alert.StudentEmail == "asha@example.edu" && alert.Severity == "significant-distress"
		})).Return(nil)

		result, err := uc.SubmitAssessment(ctx, "raw", &requests.ScoreAssessment{
			QuestionnaireID: "ghq-12",
			Responses:       assessment.Responses(3, 3, 3, 3, 3, 3, 3, 0, 0, 0, 0, 0),
		})

		require.NoError(t, err)
		assert.True(t, result.Crisis)
		deps.queue.AssertExpectations(t)
	})

	t.Run("Queue Failure Does Not Fail Submission", func(t *testing.T) {
		uc, deps := newTestAssessmentUsecase()
		deps.sessions.On("ParseSessionData", ctx, "raw").Return(studentSession, nil)
		deps.assessments.On("CreateAssessment", ctx, mock.Anything).Return("a3", nil)
		deps.redis.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))
		deps.queue.On("Enqueue", ctx, mock.Anything).Return(errors.New("broker down"))

		result, err := uc.SubmitAssessment(ctx, "raw", &requests.ScoreAssessment{
			QuestionnaireID: "phq-9",
			Responses:       assessment.Responses(3, 3, 3, 3, 3, 3, 3, 3, 3),
		})

		require.NoError(t, err)
		assert.Equal(t, "a3", result.ID)
	})

	t.Run("Invalid Responses Are Not Stored", func(t *testing.T) {
		uc, deps := newTestAssessmentUsecase()
		deps.sessions.On("ParseSessionData", ctx, "raw").Return(studentSession, nil)

		_, err := uc.SubmitAssessment(ctx, "raw", &requests.ScoreAssessment{
			QuestionnaireID: "phq-9",
			Responses:       assessment.Responses(4, 0, 0, 0, 0, 0, 0, 0, 0),
		})

		assert.ErrorIs(t, err, assessment.ErrResponseOutOfRange)
		deps.assessments.AssertNotCalled(t, "CreateAssessment", mock.Anything, mock.Anything)
	})
}

func TestFindAllAssessments(t *testing.T) {
	ctx := context.Background()
	uc, deps := newTestAssessmentUsecase()
	request := &requests.QueryAssessments{Pagination: requests.Pagination{Page: 2, PageSize: 1}}

	deps.sessions.On("ParseSessionData", ctx, "raw").Return(studentSession, nil)
	deps.assessments.On("CountAll", ctx, request).Return(int64(2), nil)
	deps.assessments.On("FindAll", ctx, request).Return([]models.Assessment{{ID: "a1", StudentID: "student-1"}}, nil)

	result, pagination, err := uc.FindAll(ctx, "raw", request)

	require.NoError(t, err)
	assert.Equal(t, "student-1", request.StudentID, "history is always scoped to the session student")
	assert.Len(t, result, 1)
	assert.Equal(t, "/api/v1/assessments?page=1&page_size=1", pagination.PrevURL)
	assert.Empty(t, pagination.NextURL)
}

func TestFindAssessmentByID(t *testing.T) {
	ctx := context.Background()
	stored := &models.Assessment{ID: "a1", StudentID: "student-1", QuestionnaireID: "phq-9"}

	t.Run("Owner", func(t *testing.T) {
		uc, deps := newTestAssessmentUsecase()
		deps.sessions.On("ParseSessionData", ctx, "raw").Return(studentSession, nil)
		deps.assessments.On("FindByID", ctx, "a1").Return(stored, nil)

		result, err := uc.FindByID(ctx, "raw", "a1")

		require.NoError(t, err)
		assert.Equal(t, "a1", result.ID)
	})

	t.Run("Counselor", func(t *testing.T) {
		uc, deps := newTestAssessmentUsecase()
		deps.sessions.On("ParseSessionData", ctx, "raw").Return(&models.Session{UserID: "c1", Role: constvars.RoleCounselor}, nil)
		deps.assessments.On("FindByID", ctx, "a1").Return(stored, nil)

		_, err := uc.FindByID(ctx, "raw", "a1")

		assert.NoError(t, err)
	})

	t.Run("Other Student", func(t *testing.T) {
		uc, deps := newTestAssessmentUsecase()
		deps.sessions.On("ParseSessionData", ctx, "raw").Return(&models.Session{UserID: "student-2", Role: constvars.RoleStudent}, nil)
		deps.assessments.On("FindByID", ctx, "a1").Return(stored, nil)

		_, err := uc.FindByID(ctx, "raw", "a1")

		assert.ErrorIs(t, err, errAssessmentNotOwned)
	})

	t.Run("Missing", func(t *testing.T) {
		uc, deps := newTestAssessmentUsecase()
		deps.sessions.On("ParseSessionData", ctx, "raw").Return(studentSession, nil)
		deps.assessments.On("FindByID", ctx, "a9").Return(nil, nil)

		_, err := uc.FindByID(ctx, "raw", "a9")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestCreateReport(t *testing.T) {
	ctx := context.Background()
	stored := &models.Assessment{ID: "a1", StudentID: "student-1", QuestionnaireID: "phq-9", CompletedAt: time.Now()}

	t.Run("Owner Gets Presigned Link", func(t *testing.T) {
		uc, deps := newTestAssessmentUsecase()
		deps.sessions.On("ParseSessionData", ctx, "raw").Return(studentSession, nil)
		deps.assessments.On("FindByID", ctx, "a1").Return(stored, nil)
		deps.renderer.On("RenderAssessmentReport", ctx, mock.Anything).Return([]byte("%PDF-1.3"), nil)
		deps.storage.On("UploadObject", ctx, "reports", mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "reports/phq-9_a1_") && strings.HasSuffix(name, ".pdf")
		}), []byte("%PDF-1.3"), constvars.MIMEApplicationPDF).Return("reports/phq-9_a1_x.pdf", nil)
		deps.assessments.On("UpdateReportObject", ctx, "a1", "reports/phq-9_a1_x.pdf").Return(nil)
		deps.storage.On("GetObjectUrlWithExpiryTime", ctx, "reports", "reports/phq-9_a1_x.pdf", 15*time.Minute).Return("https://minio/signed", nil)

		report, err := uc.CreateReport(ctx, "raw", "a1")

		require.NoError(t, err)
		assert.Equal(t, "https://minio/signed", report.URL)
		assert.Equal(t, "reports/phq-9_a1_x.pdf", report.ObjectName)
		deps.users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Counselor Report Uses Student Profile", func(t *testing.T) {
		uc, deps := newTestAssessmentUsecase()
		deps.sessions.On("ParseSessionData", ctx, "raw").Return(&models.Session{UserID: "c1", Role: constvars.RoleCounselor, Name: "Dr. Rao"}, nil)
		deps.assessments.On("FindByID", ctx, "a1").Return(stored, nil)
		deps.users.On("FindByID", ctx, "student-1").Return(&models.User{ID: "student-1", Name: "Asha"}, nil)
		deps.renderer.On("RenderAssessmentReport", ctx, mock.Anything).Return(nil, errors.New("font missing"))

		_, err := uc.CreateReport(ctx, "raw", "a1")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
		call := deps.renderer.Calls[0]
		assert.Equal(t, "Asha", call.Arguments.Get(1).(*contracts.RenderAssessmentReportInput).StudentName)
	})
}

func TestGetCrisisResources(t *testing.T) {
	uc, _ := newTestAssessmentUsecase()

	resources := uc.GetCrisisResources(context.Background())

	assert.Equal(t, &responses.CrisisResources{
		Message:   constvars.CrisisResourcesMessage,
		Helplines: assessment.CrisisHelplines,
	}, resources)
}
