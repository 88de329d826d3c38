package contracts

import (
	"context"
	"mindfulness-service/internal/app/models"
)

// QueuedCrisisAlert is a fetched, not yet acknowledged delivery.
type QueuedCrisisAlert struct {
	DeliveryTag uint64
	Alert       models.CrisisAlert
}

type CrisisAlertQueue interface {
	Enqueue(ctx context.Context, alert *models.CrisisAlert) error
	Reenqueue(ctx context.Context, alert *models.CrisisAlert) error
	EnqueueToDeadQueue(ctx context.Context, alert *models.CrisisAlert) error
	FetchN(ctx context.Context, max int) ([]QueuedCrisisAlert, error)
	AckMessage(ctx context.Context, deliveryTag uint64) error
}
