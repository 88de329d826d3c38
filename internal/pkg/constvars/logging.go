package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingUserIDKey             = "user_id"
	LoggingRoleKey               = "role"
	LoggingQueryParamsKey        = "query_params"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingOperationKey          = "operation"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingQueueKey              = "queue"
	LoggingQuestionnaireIDKey    = "questionnaire_id"
	LoggingAssessmentIDKey       = "assessment_id"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingSeverityKey           = "severity"
	LoggingTotalScoreKey         = "total_score"
	LoggingBucketKey             = "bucket"
	LoggingObjectKey             = "object"
	LoggingProviderKey           = "provider"
	LoggingResultCountKey        = "result_count"
)
