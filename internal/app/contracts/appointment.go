package contracts

import (
	"context"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"
	"time"
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, sessionData string, request *requests.BookAppointment) (*responses.Appointment, error)
	FindUpcomingByCounselor(ctx context.Context, sessionData string, counselorID string) ([]responses.Appointment, error)
	FindUpcomingBySession(ctx context.Context, sessionData string) ([]responses.Appointment, error)
	CancelAppointment(ctx context.Context, sessionData string, appointmentID string) (*responses.Appointment, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	ExistsBookedSlot(ctx context.Context, counselorID string, startsAt time.Time) (bool, error)
	FindUpcomingByCounselorID(ctx context.Context, counselorID string, now time.Time) ([]models.Appointment, error)
	FindUpcomingByStudentID(ctx context.Context, studentID string, now time.Time) ([]models.Appointment, error)
	FindNextByStudentID(ctx context.Context, studentID string, now time.Time) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status string) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CompleteEndedBefore(ctx context.Context, before time.Time) (int64, error)
}
