package routers

import (
	"fmt"
	"mindfulness-service/internal/app/delivery/http/controllers"
	"mindfulness-service/internal/app/delivery/http/middlewares"
	"mindfulness-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.With(middlewares.Authenticate).Get("/me", userController.GetUserProfileBySession)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireRoles(constvars.RoleAdmin))

		r.Get("/", userController.FindAll)
		r.Patch(fmt.Sprintf("/{%s}/suspend", constvars.URLParamUserID), userController.SuspendUser)
		r.Patch(fmt.Sprintf("/{%s}/unsuspend", constvars.URLParamUserID), userController.UnsuspendUser)
	})
}
