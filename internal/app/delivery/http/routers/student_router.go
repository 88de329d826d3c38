package routers

import (
	"mindfulness-service/internal/app/delivery/http/controllers"
	"mindfulness-service/internal/app/delivery/http/middlewares"
	"mindfulness-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachStudentRoutes(router chi.Router, middlewares *middlewares.Middlewares, studentController *controllers.StudentController) {
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleStudent)).
		Get("/dashboard-summary", studentController.GetDashboardSummary)
}
