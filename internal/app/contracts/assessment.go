package contracts

import (
	"context"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"
)

type AssessmentUsecase interface {
	ListQuestionnaires(ctx context.Context) ([]responses.Questionnaire, error)
	GetQuestionnaire(ctx context.Context, questionnaireID string) (*responses.Questionnaire, error)
	ScoreAssessment(ctx context.Context, request *requests.ScoreAssessment) (*responses.AssessmentResult, error)
	SubmitAssessment(ctx context.Context, sessionData string, request *requests.ScoreAssessment) (*responses.Assessment, error)
	FindAll(ctx context.Context, sessionData string, request *requests.QueryAssessments) ([]responses.Assessment, *responses.Pagination, error)
	FindByID(ctx context.Context, sessionData string, assessmentID string) (*responses.Assessment, error)
	CreateReport(ctx context.Context, sessionData string, assessmentID string) (*responses.AssessmentReport, error)
	GetCrisisResources(ctx context.Context) *responses.CrisisResources
}

type AssessmentRepository interface {
	CreateAssessment(ctx context.Context, assessmentModel *models.Assessment) (assessmentID string, err error)
	FindByID(ctx context.Context, assessmentID string) (*models.Assessment, error)
	FindAll(ctx context.Context, request *requests.QueryAssessments) ([]models.Assessment, error)
	CountAll(ctx context.Context, request *requests.QueryAssessments) (int64, error)
	FindLatestByStudentID(ctx context.Context, studentID string) (*models.Assessment, error)
	UpdateReportObject(ctx context.Context, assessmentID, objectName string) error
	AggregateSeverityStats(ctx context.Context) ([]models.AssessmentSeverityStat, error)
}
