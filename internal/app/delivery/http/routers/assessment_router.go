package routers

import (
	"fmt"
	"mindfulness-service/internal/app/delivery/http/controllers"
	"mindfulness-service/internal/app/delivery/http/middlewares"
	"mindfulness-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *controllers.AssessmentController) {
	router.Get("/questionnaires", assessmentController.ListQuestionnaires)
	router.Get(fmt.Sprintf("/questionnaires/{%s}", constvars.URLParamQuestionnaireID), assessmentController.GetQuestionnaire)
	router.Get("/crisis-resources", assessmentController.GetCrisisResources)
	router.Post("/score", assessmentController.ScoreAssessment)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)

		r.With(middlewares.RequireRoles(constvars.RoleStudent)).Post("/", assessmentController.SubmitAssessment)
		r.With(middlewares.RequireRoles(constvars.RoleStudent)).Get("/", assessmentController.FindAll)

		r.Get(fmt.Sprintf("/{%s}", constvars.URLParamAssessmentID), assessmentController.FindByID)
		r.Post(fmt.Sprintf("/{%s}/report", constvars.URLParamAssessmentID), assessmentController.CreateReport)
	})
}
