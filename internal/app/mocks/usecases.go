package mocks

import (
	"context"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.RegisterUser), args.Error(1)
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.LoginUser), args.Error(1)
}

func (m *MockAuthUsecase) LogoutUser(ctx context.Context, sessionData string) error {
	args := m.Called(ctx, sessionData)
	return args.Error(0)
}

type MockAssessmentUsecase struct {
	mock.Mock
}

func (m *MockAssessmentUsecase) ListQuestionnaires(ctx context.Context) ([]responses.Questionnaire, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Questionnaire), args.Error(1)
}

func (m *MockAssessmentUsecase) GetQuestionnaire(ctx context.Context, questionnaireID string) (*responses.Questionnaire, error) {
	args := m.Called(ctx, questionnaireID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Questionnaire), args.Error(1)
}

func (m *MockAssessmentUsecase) ScoreAssessment(ctx context.Context, request *requests.ScoreAssessment) (*responses.AssessmentResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AssessmentResult), args.Error(1)
}

func (m *MockAssessmentUsecase) SubmitAssessment(ctx context.Context, sessionData string, request *requests.ScoreAssessment) (*responses.Assessment, error) {
	args := m.Called(ctx, sessionData, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Assessment), args.Error(1)
}

func (m *MockAssessmentUsecase) FindAll(ctx context.Context, sessionData string, request *requests.QueryAssessments) ([]responses.Assessment, *responses.Pagination, error) {
	args := m.Called(ctx, sessionData, request)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]responses.Assessment), args.Get(1).(*responses.Pagination), args.Error(2)
}

func (m *MockAssessmentUsecase) FindByID(ctx context.Context, sessionData string, assessmentID string) (*responses.Assessment, error) {
	args := m.Called(ctx, sessionData, assessmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Assessment), args.Error(1)
}

func (m *MockAssessmentUsecase) CreateReport(ctx context.Context, sessionData string, assessmentID string) (*responses.AssessmentReport, error) {
	args := m.Called(ctx, sessionData, assessmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AssessmentReport), args.Error(1)
}

func (m *MockAssessmentUsecase) GetCrisisResources(ctx context.Context) *responses.CrisisResources {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*responses.CrisisResources)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) BookAppointment(ctx context.Context, sessionData string, request *requests.BookAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, sessionData, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) FindUpcomingByCounselor(ctx context.Context, sessionData string, counselorID string) ([]responses.Appointment, error) {
	args := m.Called(ctx, sessionData, counselorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) FindUpcomingBySession(ctx context.Context, sessionData string) ([]responses.Appointment, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) CancelAppointment(ctx context.Context, sessionData string, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, sessionData, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

type MockChatUsecase struct {
	mock.Mock
}

func (m *MockChatUsecase) Chat(ctx context.Context, request *requests.Chat) (*responses.ChatReply, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ChatReply), args.Error(1)
}

type MockFeedbackUsecase struct {
	mock.Mock
}

func (m *MockFeedbackUsecase) SubmitFeedback(ctx context.Context, request *requests.SubmitFeedback) (*responses.Feedback, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Feedback), args.Error(1)
}

func (m *MockFeedbackUsecase) FindAll(ctx context.Context, request *requests.Pagination) ([]responses.Feedback, *responses.Pagination, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]responses.Feedback), args.Get(1).(*responses.Pagination), args.Error(2)
}

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.UserProfile, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UserProfile), args.Error(1)
}

func (m *MockUserUsecase) FindAll(ctx context.Context, request *requests.QueryUsers) ([]responses.UserProfile, *responses.Pagination, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]responses.UserProfile), args.Get(1).(*responses.Pagination), args.Error(2)
}

func (m *MockUserUsecase) SuspendUser(ctx context.Context, sessionData string, userID string) error {
	args := m.Called(ctx, sessionData, userID)
	return args.Error(0)
}

func (m *MockUserUsecase) UnsuspendUser(ctx context.Context, sessionData string, userID string) error {
	args := m.Called(ctx, sessionData, userID)
	return args.Error(0)
}
