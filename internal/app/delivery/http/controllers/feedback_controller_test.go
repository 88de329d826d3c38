package controllers

import (
	"context"
	"mindfulness-service/internal/app/mocks"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestFeedbackController_SubmitFeedback(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		body       string
		wantCode   int
		wantCalled bool
	}{
		{name: "guest", body: `{"rating":4,"message":"helpful"}`, wantCode: http.StatusCreated, wantCalled: true},
		{name: "signed in", userID: "student-1", body: `{"rating":5,"category":"Chat"}`, wantCode: http.StatusCreated, wantCalled: true},
		{name: "rating out of range", body: `{"rating":6}`, wantCode: http.StatusBadRequest},
		{name: "unknown category", body: `{"rating":3,"category":"billing"}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usecase := new(mocks.MockFeedbackUsecase)
			ctrl := &FeedbackController{Log: zap.NewNop(), FeedbackUsecase: usecase}

			usecase.On("SubmitFeedback", mock.Anything, mock.MatchedBy(func(req *requests.SubmitFeedback) bool {
				return req.UserID == tt.userID && req.Category != ""
			})).Return(&responses.Feedback{ID: "feedback-1"}, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback/submit", strings.NewReader(tt.body))
			if tt.userID != "" {
				req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_USER_ID_KEY, tt.userID))
			}
			rr := httptest.NewRecorder()
			ctrl.SubmitFeedback(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			if tt.wantCalled {
				usecase.AssertExpectations(t)
			} else {
				usecase.AssertNotCalled(t, "SubmitFeedback", mock.Anything, mock.Anything)
			}
		})
	}
}
