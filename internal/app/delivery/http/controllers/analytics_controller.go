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

type AnalyticsController struct {
	Log              *zap.Logger
	AnalyticsUsecase contracts.AnalyticsUsecase
}

var (
	analyticsControllerInstance *AnalyticsController
	onceAnalyticsController     sync.Once
)

func NewAnalyticsController(logger *zap.Logger, analyticsUsecase contracts.AnalyticsUsecase) *AnalyticsController {
	onceAnalyticsController.Do(func() {
		analyticsControllerInstance = &AnalyticsController{
			Log:              logger,
			AnalyticsUsecase: analyticsUsecase,
		}
	})
	return analyticsControllerInstance
}

func (ctrl *AnalyticsController) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AnalyticsUsecase.GetOverview(ctx)
	ctrl.respond(w, r, "GetOverview", result, err)
}

func (ctrl *AnalyticsController) GetAssessmentAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AnalyticsUsecase.GetAssessmentAnalytics(ctx)
	ctrl.respond(w, r, "GetAssessmentAnalytics", result, err)
}

func (ctrl *AnalyticsController) GetAppointmentAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AnalyticsUsecase.GetAppointmentAnalytics(ctx)
	ctrl.respond(w, r, "GetAppointmentAnalytics", result, err)
}

func (ctrl *AnalyticsController) respond(w http.ResponseWriter, r *http.Request, method string, result interface{}, err error) {
	if err != nil {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		ctrl.Log.Error("AnalyticsController."+method+" error from usecase",
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
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAnalyticsSuccessMessage, result)
}
