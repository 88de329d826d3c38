package controllers

import (
	"context"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/pkg/constvars"
	"mindfulness-service/internal/pkg/exceptions"
	"mindfulness-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type StudentController struct {
	Log            *zap.Logger
	StudentUsecase contracts.StudentUsecase
}

var (
	studentControllerInstance *StudentController
	onceStudentController     sync.Once
)

func NewStudentController(logger *zap.Logger, studentUsecase contracts.StudentUsecase) *StudentController {
	onceStudentController.Do(func() {
		studentControllerInstance = &StudentController{
			Log:            logger,
			StudentUsecase: studentUsecase,
		}
	})
	return studentControllerInstance
}

func (ctrl *StudentController) GetDashboardSummary(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.StudentUsecase.GetDashboardSummary(ctx, sessionData)
	if err != nil {
		ctrl.Log.Error("StudentController.GetDashboardSummary error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSummarySuccessMessage, result)
}
