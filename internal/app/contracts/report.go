package contracts

import (
	"context"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/assessment"
	"time"
)

type RenderAssessmentReportInput struct {
	StudentName  string
	StudentEmail string
	Assessment   *models.Assessment
	Definition   *assessment.QuestionnaireDefinition
	GeneratedAt  time.Time
}

type ReportRenderer interface {
	RenderAssessmentReport(ctx context.Context, in *RenderAssessmentReportInput) ([]byte, error)
}
