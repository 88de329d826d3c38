package controllers

import (
	"fmt"
	"mindfulness-service/internal/app/mocks"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/dto/requests"
	"mindfulness-service/internal/pkg/dto/responses"
	"mindfulness-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestAppointmentController_BookAppointment(t *testing.T) {
	bookBody := func(startsAt time.Time) string {
		return fmt.Sprintf(`{"counselor_id":" counselor-1 ","starts_at":%q}`, startsAt.Format(time.RFC3339))
	}

	t.Run("books a future slot", func(t *testing.T) {
		usecase := new(mocks.MockAppointmentUsecase)
		ctrl := &AppointmentController{Log: zap.NewNop(), AppointmentUsecase: usecase}

		usecase.On("BookAppointment", mock.Anything, mock.Anything, mock.MatchedBy(func(req *requests.BookAppointment) bool {
			return req.CounselorID == "counselor-1"
		})).Return(&responses.Appointment{ID: "appt-1", Status: constvars.AppointmentStatusBooked}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/book", strings.NewReader(bookBody(time.Now().Add(48*time.Hour))))
		rr := httptest.NewRecorder()
		ctrl.BookAppointment(rr, withSessionContext(req, "student-1"))

		assert.Equal(t, http.StatusCreated, rr.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("past slot fails validation", func(t *testing.T) {
		usecase := new(mocks.MockAppointmentUsecase)
		ctrl := &AppointmentController{Log: zap.NewNop(), AppointmentUsecase: usecase}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/book", strings.NewReader(bookBody(time.Now().Add(-time.Hour))))
		rr := httptest.NewRecorder()
		ctrl.BookAppointment(rr, withSessionContext(req, "student-1"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecase.AssertNotCalled(t, "BookAppointment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("slot taken", func(t *testing.T) {
		usecase := new(mocks.MockAppointmentUsecase)
		ctrl := &AppointmentController{Log: zap.NewNop(), AppointmentUsecase: usecase}

		usecase.On("BookAppointment", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrAppointmentSlotTaken(nil))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/book", strings.NewReader(bookBody(time.Now().Add(time.Hour))))
		rr := httptest.NewRecorder()
		ctrl.BookAppointment(rr, withSessionContext(req, "student-1"))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestAppointmentController_CancelAppointment(t *testing.T) {
	usecase := new(mocks.MockAppointmentUsecase)
	ctrl := &AppointmentController{Log: zap.NewNop(), AppointmentUsecase: usecase}

	usecase.On("CancelAppointment", mock.Anything, mock.Anything, "appt-7").
		Return(&responses.Appointment{ID: "appt-7", Status: constvars.AppointmentStatusCancelled}, nil)

	r := chi.NewRouter()
	r.Patch("/appointments/{"+constvars.URLParamAppointmentID+"}/cancel", func(w http.ResponseWriter, req *http.Request) {
		ctrl.CancelAppointment(w, withSessionContext(req, "student-1"))
	})

	req := httptest.NewRequest(http.MethodPatch, "/appointments/appt-7/cancel", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.AppointmentStatusCancelled)
	usecase.AssertExpectations(t)
}
