package config

import (
	"mindfulness-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "mindfulness"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			MaxSizeInMegabytes:  utils.GetEnvInt("LOGGER_MAX_SIZE_IN_MEGABYTES", 100),
			MaxBackups:          utils.GetEnvInt("LOGGER_MAX_BACKUPS", 5),
			MaxAgeInDays:        utils.GetEnvInt("LOGGER_MAX_AGE_IN_DAYS", 28),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendDomain:             utils.GetEnvString("APP_FRONTEND_DOMAIN", "*"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
			LoginRateLimitPerMinute:    utils.GetEnvInt("APP_LOGIN_RATE_LIMIT_PER_MINUTE", 10),
			SuperadminAPIKey:           utils.GetEnvString("APP_SUPERADMIN_API_KEY", ""),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Mailer: AppMailer{
			EmailSender: utils.GetEnvString("APP_MAILER_EMAIL_SENDER", "no-reply@mindfulness.local"),
		},
		Minio: AppMinio{
			BucketName:                      utils.GetEnvString("APP_MINIO_REPORT_BUCKET_NAME", "assessment-reports"),
			PreSignedUrlExpiryTimeInMinutes: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_EXPIRY_TIME_IN_MINUTES", 15),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "mailer_queue"),
			CrisisQueue: utils.GetEnvString("APP_RABBITMQ_CRISIS_QUEUE", "crisis_alert_queue"),
			Prefetch:    utils.GetEnvInt("APP_RABBITMQ_PREFETCH", 10),
		},
		Chat: AppChat{
			GeminiAPIKey:          utils.GetEnvString("GEMINI_API_KEY", ""),
			GeminiBaseURL:         utils.GetEnvString("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			GeminiModel:           utils.GetEnvString("GEMINI_MODEL", "gemini-1.5-flash"),
			RequestTimeoutSeconds: utils.GetEnvInt("GEMINI_REQUEST_TIMEOUT_IN_SECONDS", 20),
			Temperature:           utils.GetEnvFloat("GEMINI_TEMPERATURE", 0.7),
			RateLimit:             utils.GetEnvInt("CHAT_RATE_LIMIT", 20),
			RateLimitWindowSecond: utils.GetEnvInt("CHAT_RATE_LIMIT_WINDOW_IN_SECONDS", 60),
		},
		Crisis: AppCrisis{
			NotificationEmail:       utils.GetEnvString("CRISIS_NOTIFICATION_EMAIL", "counseling@mindfulness.local"),
			WorkerIntervalInSeconds: utils.GetEnvInt("CRISIS_WORKER_INTERVAL_IN_SECONDS", 30),
			WorkerBatchSize:         utils.GetEnvInt("CRISIS_WORKER_BATCH_SIZE", 10),
			WorkerMaxRetry:          utils.GetEnvInt("CRISIS_WORKER_MAX_RETRY", 5),
		},
		Analytics: AppAnalytics{
			CacheTTLInSeconds: utils.GetEnvInt("ANALYTICS_CACHE_TTL_IN_SECONDS", 300),
		},
		Appointment: AppAppointment{
			DurationInMinutes:        utils.GetEnvInt("APPOINTMENT_DURATION_IN_MINUTES", 60),
			CompletionWorkerCronSpec: utils.GetEnvString("APPOINTMENT_COMPLETION_WORKER_CRON_SPEC", "@every 15m"),
		},
	}
}
