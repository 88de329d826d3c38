package main

import (
	"context"
	"log"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/delivery/http/controllers"
	"mindfulness-service/internal/app/delivery/http/middlewares"
	"mindfulness-service/internal/app/delivery/http/routers"
	"mindfulness-service/internal/app/drivers/database"
	"mindfulness-service/internal/app/drivers/logger"
	"mindfulness-service/internal/app/drivers/messaging"
	"mindfulness-service/internal/app/drivers/storage"
	"mindfulness-service/internal/app/services/core/analytics"
	"mindfulness-service/internal/app/services/core/appointments"
	"mindfulness-service/internal/app/services/core/assessments"
	"mindfulness-service/internal/app/services/core/auth"
	"mindfulness-service/internal/app/services/core/chat"
	"mindfulness-service/internal/app/services/core/crisis"
	"mindfulness-service/internal/app/services/core/feedback"
	"mindfulness-service/internal/app/services/core/session"
	"mindfulness-service/internal/app/services/core/students"
	"mindfulness-service/internal/app/services/core/users"
	"mindfulness-service/internal/app/services/shared/crisisqueue"
	"mindfulness-service/internal/app/services/shared/jwtmanager"
	"mindfulness-service/internal/app/services/shared/llm"
	"mindfulness-service/internal/app/services/shared/locker"
	"mindfulness-service/internal/app/services/shared/mailer"
	"mindfulness-service/internal/app/services/shared/ratelimiter"
	"mindfulness-service/internal/app/services/shared/redis"
	"mindfulness-service/internal/app/services/shared/report"
	minioStorage "mindfulness-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig.Minio.BucketName)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:              internalConfig.App.Address + ":" + internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error while closing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	cfg := bootstrap.InternalConfig
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	log := bootstrap.Logger

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, cfg, log)
	lockerService := locker.NewLockerService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	reportRenderer := report.NewPDFReportRenderer(log)
	objectStorage := minioStorage.NewMinioStorage(bootstrap.Minio)
	chatProvider := llm.NewGeminiProvider(cfg, log)

	jwtManager, err := jwtmanager.NewJWTManager(cfg, log)
	if err != nil {
		return err
	}

	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, cfg.RabbitMQ.MailerQueue, log)
	if err != nil {
		return err
	}

	crisisAlertQueue, err := crisisqueue.NewService(bootstrap.RabbitMQ, log, cfg.RabbitMQ.CrisisQueue, cfg.RabbitMQ.Prefetch)
	if err != nil {
		return err
	}

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	assessmentMongoRepository := assessments.NewAssessmentMongoRepository(bootstrap.MongoDB, dbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	feedbackMongoRepository := feedback.NewFeedbackMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, sessionService, jwtManager, cfg, log)
	userUsecase := users.NewUserUsecase(userMongoRepository, sessionService, cfg, log)
	assessmentUsecase := assessments.NewAssessmentUsecase(
		assessmentMongoRepository,
		userMongoRepository,
		redisRepository,
		sessionService,
		crisisAlertQueue,
		reportRenderer,
		objectStorage,
		cfg,
		log,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, userMongoRepository, sessionService, lockerService, cfg, log)
	studentUsecase := students.NewStudentUsecase(assessmentMongoRepository, appointmentMongoRepository, userMongoRepository, redisRepository, sessionService, cfg, log)
	chatUsecase := chat.NewChatUsecase(chatProvider, redisRepository, cfg, log)
	feedbackUsecase := feedback.NewFeedbackUsecase(feedbackMongoRepository, cfg, log)
	analyticsUsecase := analytics.NewAnalyticsUsecase(
		userMongoRepository,
		assessmentMongoRepository,
		appointmentMongoRepository,
		feedbackMongoRepository,
		redisRepository,
		cfg,
		log,
	)

	// Background workers
	crisisWorker := crisis.NewWorker(log, cfg, lockerService, crisisAlertQueue, mailerService)
	stopCrisisWorker := crisisWorker.Start(context.Background())

	completionWorker := appointments.NewCompletionWorker(log, cfg, lockerService, appointmentMongoRepository)
	stopCompletionWorker := completionWorker.Start(context.Background())

	bootstrap.WorkerStop = func() {
		stopCrisisWorker()
		stopCompletionWorker()
	}

	// Delivery
	middlewares := middlewares.NewMiddlewares(log, sessionService, jwtManager, cfg)

	routers.SetupRoutes(
		bootstrap.Router,
		cfg,
		middlewares,
		controllers.NewAuthController(log, authUsecase),
		controllers.NewUserController(log, userUsecase, cfg),
		controllers.NewAssessmentController(log, assessmentUsecase),
		controllers.NewAppointmentController(log, appointmentUsecase),
		controllers.NewStudentController(log, studentUsecase),
		controllers.NewChatController(log, chatUsecase, resourceLimiter, cfg),
		controllers.NewFeedbackController(log, feedbackUsecase),
		controllers.NewAnalyticsController(log, analyticsUsecase),
	)
	return nil
}
