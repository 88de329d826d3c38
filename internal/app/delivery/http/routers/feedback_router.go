package routers

import (
	"mindfulness-service/internal/app/delivery/http/controllers"
	"mindfulness-service/internal/app/delivery/http/middlewares"
	"mindfulness-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachFeedbackRoutes(router chi.Router, middlewares *middlewares.Middlewares, feedbackController *controllers.FeedbackController) {
	router.With(middlewares.OptionalAuthenticate).Post("/submit", feedbackController.SubmitFeedback)
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleAdmin)).Get("/", feedbackController.FindAll)
}
