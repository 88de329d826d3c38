package routers

import (
	"mindfulness-service/internal/app/delivery/http/controllers"
	"mindfulness-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, loginLimiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	router.Post("/register", authController.RegisterUser)
	router.With(middlewares.RequireSuperadminAPIKey).Post("/register/admin", authController.RegisterAdmin)
	router.With(loginLimiter.Limit).Post("/login", authController.LoginUser)
	router.With(middlewares.Authenticate).Post("/logout", authController.LogoutUser)
}
