package routers

import (
	"mindfulness-service/internal/app/delivery/http/controllers"
	"mindfulness-service/internal/app/delivery/http/middlewares"
	"mindfulness-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAnalyticsRoutes(router chi.Router, middlewares *middlewares.Middlewares, analyticsController *controllers.AnalyticsController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRoles(constvars.RoleAdmin))

	router.Get("/overview", analyticsController.GetOverview)
	router.Get("/assessments", analyticsController.GetAssessmentAnalytics)
	router.Get("/appointments", analyticsController.GetAppointmentAnalytics)
}
