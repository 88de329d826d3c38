package routers

import (
	"fmt"
	"io"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/delivery/http/controllers"
	"mindfulness-service/internal/app/delivery/http/middlewares"
	"mindfulness-service/internal/pkg/constvars"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	assessmentController *controllers.AssessmentController,
	appointmentController *controllers.AppointmentController,
	studentController *controllers.StudentController,
	chatController *controllers.ChatController,
	feedbackController *controllers.FeedbackController,
	analyticsController *controllers.AnalyticsController,
) {
	allowedOrigins := []string{"*"}
	if internalConfig.App.FrontendDomain != "" {
		allowedOrigins = []string{internalConfig.App.FrontendDomain}
	}

	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodPatch, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXAPIKey, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{"Link", constvars.HeaderRetryAfter, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	compressor := chiMiddleware.NewCompressor(5, constvars.MIMEApplicationJSON, constvars.MIMEApplicationPDF)
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	router.Use(compressor.Handler)

	if limit := internalConfig.App.RequestBodyLimitInMegabyte; limit > 0 {
		router.Use(chiMiddleware.RequestSize(int64(limit) << 20))
	}

	// API key has to be resolved first so the limiter can pick the larger budget
	router.Use(middlewares.APIKeyAuth)
	normalLimiter, apiKeyLimiter := middlewares.CreateRateLimiters()
	router.Use(middlewares.ConditionalRateLimit(normalLimiter, apiKeyLimiter))

	loginLimiter := middlewares.NewLoginRateLimiter()

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, loginLimiter, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/assessments", func(r chi.Router) {
				attachAssessmentRoutes(r, middlewares, assessmentController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/student", func(r chi.Router) {
				attachStudentRoutes(r, middlewares, studentController)
			})

			r.Route("/ai", func(r chi.Router) {
				attachChatRoutes(r, middlewares, chatController)
			})

			r.Route("/feedback", func(r chi.Router) {
				attachFeedbackRoutes(r, middlewares, feedbackController)
			})

			r.Route("/analytics", func(r chi.Router) {
				attachAnalyticsRoutes(r, middlewares, analyticsController)
			})
		})
	})
}
