package config

type InternalConfig struct {
	App         App
	JWT         AppJWT
	Mailer      AppMailer
	Minio       AppMinio
	RabbitMQ    AppRabbitMQ
	Chat        AppChat
	Crisis      AppCrisis
	Analytics   AppAnalytics
	Appointment AppAppointment
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	FrontendDomain             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
	LoginRateLimitPerMinute    int
	SuperadminAPIKey           string
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMailer struct {
	EmailSender string
}

type AppMinio struct {
	BucketName                      string
	PreSignedUrlExpiryTimeInMinutes int
}

type AppRabbitMQ struct {
	MailerQueue string
	CrisisQueue string
	Prefetch    int
}

// AppChat configures the Gemini backed chat companion.
type AppChat struct {
	GeminiAPIKey          string
	GeminiBaseURL         string
	GeminiModel           string
	RequestTimeoutSeconds int
	Temperature           float64

	// RateLimit is the number of chat messages allowed per window for one user or IP.
	RateLimit             int
	RateLimitWindowSecond int
}

// AppCrisis configures the background worker that turns crisis alerts into emails.
type AppCrisis struct {
	NotificationEmail       string
	WorkerIntervalInSeconds int
	WorkerBatchSize         int
	WorkerMaxRetry          int
}

type AppAnalytics struct {
	CacheTTLInSeconds int
}

// AppAppointment drives the job that closes sessions once their slot is over.
type AppAppointment struct {
	DurationInMinutes        int
	CompletionWorkerCronSpec string
}
