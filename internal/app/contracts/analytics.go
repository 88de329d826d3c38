package contracts

import (
	"context"
	"mindfulness-service/internal/pkg/dto/responses"
)

type AnalyticsUsecase interface {
	GetOverview(ctx context.Context) (*responses.AnalyticsOverview, error)
	GetAssessmentAnalytics(ctx context.Context) (*responses.AssessmentAnalytics, error)
	GetAppointmentAnalytics(ctx context.Context) (*responses.AppointmentAnalytics, error)
}
