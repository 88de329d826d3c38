package appointments

import (
	"context"
	"errors"
	"fmt"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/app/models"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"
	"mindfulness-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

// slotLockTTL bounds how long a booking may hold the counselor slot lock.
const slotLockTTL = 10 * time.Second

var (
	errStartsAtInPast       = errors.New("appointment must start in the future")
	errAppointmentNotOwned  = errors.New("appointment belongs to another user")
	errCounselorListForeign = errors.New("counselors can only list their own appointments")
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	SessionService        contracts.SessionService
	LockService           contracts.LockerService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentMongoRepository contracts.AppointmentRepository,
	userMongoRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	lockService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentMongoRepository,
			UserRepository:        userMongoRepository,
			SessionService:        sessionService,
			LockService:           lockService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) BookAppointment(ctx context.Context, sessionData string, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	studentID := session.UserID
	if !session.HasRole(constvars.RoleStudent) {
		if request.StudentID == "" {
			return nil, exceptions.ErrAppointmentStudentRequired(nil)
		}
		studentID = request.StudentID
	}

	if !request.StartsAt.After(time.Now()) {
		return nil, exceptions.ErrInputValidation(errStartsAtInPast)
	}

	counselor, err := uc.UserRepository.FindByID(ctx, request.CounselorID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error finding counselor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, request.CounselorID),
			zap.Error(err),
		)
		return nil, err
	}
	if counselor == nil || counselor.Role != constvars.RoleCounselor {
		return nil, exceptions.ErrCounselorNotFound(nil)
	}

	startsAt := request.StartsAt.UTC()
	lockKey := fmt.Sprintf(constvars.RedisKeyAppointmentSlotFormat, counselor.ID, startsAt.Unix())
	acquired, lockToken, err := uc.LockService.TryLock(ctx, lockKey, slotLockTTL)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error acquiring slot lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
			zap.Error(err),
		)
		return nil, err
	}
	if !acquired {
		uc.Log.Info("appointmentUsecase.BookAppointment slot is being booked by another request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
		)
		return nil, exceptions.ErrAppointmentSlotTaken(nil)
	}
	defer func() {
		if unlockErr := uc.LockService.Unlock(ctx, lockKey, lockToken); unlockErr != nil {
			uc.Log.Warn("appointmentUsecase.BookAppointment failed to release slot lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	taken, err := uc.AppointmentRepository.ExistsBookedSlot(ctx, counselor.ID, startsAt)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error checking slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if taken {
		return nil, exceptions.ErrAppointmentSlotTaken(nil)
	}

	appointment := &models.Appointment{
		StudentID:   studentID,
		CounselorID: counselor.ID,
		StartsAt:    startsAt,
		Status:      constvars.AppointmentStatusBooked,
		Notes:       request.Notes,
	}
	appointment.SetCreatedAtUpdatedAt()

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.ID = appointmentID

	response := toAppointmentResponse(appointment)
	response.Counselor = toPersonSummary(counselor)

	uc.Log.Info("appointmentUsecase.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return &response, nil
}

func (uc *appointmentUsecase) FindUpcomingByCounselor(ctx context.Context, sessionData string, counselorID string) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindUpcomingByCounselor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, counselorID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindUpcomingByCounselor error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if !session.HasRole(constvars.RoleAdmin) && session.UserID != counselorID {
		return nil, exceptions.ErrNotMatchRoleType(errCounselorListForeign)
	}

	appointments, err := uc.AppointmentRepository.FindUpcomingByCounselorID(ctx, counselorID, time.Now())
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindUpcomingByCounselor error finding appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	studentIDs := make([]string, 0, len(appointments))
	for _, appointment := range appointments {
		studentIDs = append(studentIDs, appointment.StudentID)
	}
	students, err := uc.lookupPeople(ctx, studentIDs)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindUpcomingByCounselor error finding students",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response := toAppointmentResponse(&appointments[i])
		response.Student = students[appointments[i].StudentID]
		result = append(result, response)
	}

	uc.Log.Info("appointmentUsecase.FindUpcomingByCounselor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(result)),
	)
	return result, nil
}

func (uc *appointmentUsecase) FindUpcomingBySession(ctx context.Context, sessionData string) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindUpcomingBySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindUpcomingBySession error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointments, err := uc.AppointmentRepository.FindUpcomingByStudentID(ctx, session.UserID, time.Now())
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindUpcomingBySession error finding appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	counselorIDs := make([]string, 0, len(appointments))
	for _, appointment := range appointments {
		counselorIDs = append(counselorIDs, appointment.CounselorID)
	}
	counselors, err := uc.lookupPeople(ctx, counselorIDs)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindUpcomingBySession error finding counselors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response := toAppointmentResponse(&appointments[i])
		response.Counselor = counselors[appointments[i].CounselorID]
		result = append(result, response)
	}

	uc.Log.Info("appointmentUsecase.FindUpcomingBySession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.Int("count", len(result)),
	)
	return result, nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, sessionData string, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error finding appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrNotFound(nil)
	}

	if session.UserID != appointment.StudentID && session.UserID != appointment.CounselorID {
		return nil, exceptions.ErrNotMatchRoleType(errAppointmentNotOwned)
	}
	if appointment.Status != constvars.AppointmentStatusBooked {
		return nil, exceptions.ErrAppointmentNotCancellable(nil)
	}

	err = uc.AppointmentRepository.UpdateStatus(ctx, appointment.ID, constvars.AppointmentStatusCancelled)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error updating status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.Status = constvars.AppointmentStatusCancelled
	appointment.SetUpdatedAt()

	response := toAppointmentResponse(appointment)
	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return &response, nil
}

// lookupPeople resolves user ids into summaries keyed by id. Ids without a
// matching user are absent from the map.
func (uc *appointmentUsecase) lookupPeople(ctx context.Context, userIDs []string) (map[string]*responses.PersonSummary, error) {
	people := make(map[string]*responses.PersonSummary, len(userIDs))
	if len(userIDs) == 0 {
		return people, nil
	}

	users, err := uc.UserRepository.FindByIDs(ctx, uniqueIDs(userIDs))
	if err != nil {
		return nil, err
	}
	for i := range users {
		people[users[i].ID] = toPersonSummary(&users[i])
	}
	return people, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func toAppointmentResponse(appointment *models.Appointment) responses.Appointment {
	return responses.Appointment{
		ID:          appointment.ID,
		StudentID:   appointment.StudentID,
		CounselorID: appointment.CounselorID,
		StartsAt:    appointment.StartsAt,
		Status:      appointment.Status,
		Notes:       appointment.Notes,
		CreatedAt:   appointment.CreatedAt,
	}
}

func toPersonSummary(user *models.User) *responses.PersonSummary {
	return &responses.PersonSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
