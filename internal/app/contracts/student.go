package contracts

import (
	"context"
	"mindfulness-service/internal/pkg/dto/responses"
)

type StudentUsecase interface {
	GetDashboardSummary(ctx context.Context, sessionData string) (*responses.DashboardSummary, error)
}
