package constvars

const (
	RedisKeySessionFormat          = "session:%s"
	RedisKeyLatestAssessmentFormat = "assessment:latest:%s"
	RedisKeyChatCounterFormat      = "chat:messages:%s"
	RedisKeyAnalyticsFormat        = "analytics:%s"
	RedisKeyCrisisWorkerLock       = "crisis:worker:lock"
	RedisKeyAppointmentWorkerLock  = "appointment:completion:lock"
	RedisKeyActiveUsersFormat      = "users:active:%s"
	RedisKeyAppointmentSlotFormat  = "appointment:slot:%s:%d"
)

const (
	LimiterGroupChat = "ai-chat"
)
