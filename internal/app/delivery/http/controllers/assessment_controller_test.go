package controllers

import (
	"context"
	"mindfulness-service/internal/app/mocks"
	"mindfulness-service/internal/pkg/assessment"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"
	"mindfulness-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const phq9Body = `{"questionnaire_id":" PHQ-9 ","responses":[1,1,2,0,1,0,1,2,0]}`

func newTestAssessmentController() (*AssessmentController, *mocks.MockAssessmentUsecase) {
	usecase := new(mocks.MockAssessmentUsecase)
	return &AssessmentController{Log: zap.NewNop(), AssessmentUsecase: usecase}, usecase
}

func withSessionContext(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
	ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, `{"user_id":"`+userID+`"}`)
	ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ID_KEY, userID)
	return r.WithContext(ctx)
}

func TestAssessmentController_GetQuestionnaire(t *testing.T) {
	ctrl, usecase := newTestAssessmentController()
	usecase.On("GetQuestionnaire", mock.Anything, "bdi-2").
		Return(nil, exceptions.ErrNotFound(assessment.ErrInvalidQuestionnaireID))

	r := chi.NewRouter()
	r.Get("/assessments/questionnaires/{"+constvars.URLParamQuestionnaireID+"}", ctrl.GetQuestionnaire)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/assessments/questionnaires/bdi-2", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	usecase.AssertExpectations(t)
}

func TestAssessmentController_ScoreAssessment(t *testing.T) {
	t.Run("guest scores normalised questionnaire id", func(t *testing.T) {
		ctrl, usecase := newTestAssessmentController()
		usecase.On("ScoreAssessment", mock.Anything, mock.MatchedBy(func(req *requests.ScoreAssessment) bool {
			return req.QuestionnaireID == "phq-9" && len(req.Responses) == 9
		})).Return(&responses.AssessmentResult{QuestionnaireID: "phq-9", TotalScore: 8, Severity: "mild"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments/score", strings.NewReader(phq9Body))
		rr := httptest.NewRecorder()
		ctrl.ScoreAssessment(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"severity":"mild"`)
		usecase.AssertExpectations(t)
	})

	t.Run("unknown questionnaire is rejected before scoring", func(t *testing.T) {
		ctrl, usecase := newTestAssessmentController()

		body := `{"questionnaire_id":"bdi-2","responses":[1,2]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments/score", strings.NewReader(body))
		rr := httptest.NewRecorder()
		ctrl.ScoreAssessment(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "questionnaire_id must be one of the following")
		usecase.AssertNotCalled(t, "ScoreAssessment", mock.Anything, mock.Anything)
	})

	t.Run("engine rejection surfaces as bad request", func(t *testing.T) {
		ctrl, usecase := newTestAssessmentController()
		usecase.On("ScoreAssessment", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrAssessmentScoring(assessment.ErrResponseOutOfRange))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments/score", strings.NewReader(phq9Body))
		rr := httptest.NewRecorder()
		ctrl.ScoreAssessment(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAssessmentController_SubmitAssessment(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		ctrl, usecase := newTestAssessmentController()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments", strings.NewReader(phq9Body))
		req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1"))
		rr := httptest.NewRecorder()
		ctrl.SubmitAssessment(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		usecase.AssertNotCalled(t, "SubmitAssessment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stores the assessment", func(t *testing.T) {
		ctrl, usecase := newTestAssessmentController()
		usecase.On("SubmitAssessment", mock.Anything, `{"user_id":"student-1"}`, mock.Anything).
			Return(&responses.Assessment{ID: "assessment-1", StudentID: "student-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments", strings.NewReader(phq9Body))
		rr := httptest.NewRecorder()
		ctrl.SubmitAssessment(rr, withSessionContext(req, "student-1"))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), "assessment-1")
		usecase.AssertExpectations(t)
	})
}

func TestAssessmentController_FindAll(t *testing.T) {
	ctrl, usecase := newTestAssessmentController()
	usecase.On("FindAll", mock.Anything, mock.Anything, mock.MatchedBy(func(req *requests.QueryAssessments) bool {
		return req.StudentID == "student-1" && req.QuestionnaireID == "gad-7" && req.Page == 2 && req.PageSize == 5
	})).Return([]responses.Assessment{{ID: "a-1"}}, &responses.Pagination{Total: 6, Page: 2, PageSize: 5}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assessments?questionnaire_id=GAD-7&page=2&page_size=5", nil)
	rr := httptest.NewRecorder()
	ctrl.FindAll(rr, withSessionContext(req, "student-1"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"pagination"`)
	usecase.AssertExpectations(t)
}

func TestAssessmentController_FindByID(t *testing.T) {
	ctrl, usecase := newTestAssessmentController()
	usecase.On("FindByID", mock.Anything, mock.Anything, "assessment-9").
		Return(nil, exceptions.ErrNotFound(nil))

	r := chi.NewRouter()
	r.Get("/assessments/{"+constvars.URLParamAssessmentID+"}", func(w http.ResponseWriter, req *http.Request) {
		ctrl.FindByID(w, withSessionContext(req, "student-1"))
	})

	req := httptest.NewRequest(http.MethodGet, "/assessments/assessment-9", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	usecase.AssertExpectations(t)
}
