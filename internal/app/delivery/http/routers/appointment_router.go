package routers

import (
	"fmt"
	"mindfulness-service/internal/app/delivery/http/controllers"
	"mindfulness-service/internal/app/delivery/http/middlewares"
	"mindfulness-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RoleStudent, constvars.RoleCounselor, constvars.RoleAdmin)).
		Post("/book", appointmentController.BookAppointment)
	router.With(middlewares.RequireRoles(constvars.RoleStudent)).
		Get("/me", appointmentController.FindUpcomingBySession)
	router.With(middlewares.RequireRoles(constvars.RoleCounselor, constvars.RoleAdmin)).
		Get(fmt.Sprintf("/counselor/{%s}", constvars.URLParamCounselorID), appointmentController.FindUpcomingByCounselor)
	router.With(middlewares.RequireRoles(constvars.RoleStudent, constvars.RoleCounselor)).
		Patch(fmt.Sprintf("/{%s}/cancel", constvars.URLParamAppointmentID), appointmentController.CancelAppointment)
}
