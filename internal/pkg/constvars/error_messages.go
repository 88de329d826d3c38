package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"required_without": "is required when %s is empty",
	"email":            "must be a valid email",
	"alphanum":         "must contain only alphanumeric characters",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"gte":              "must be greater than or equal to %s",
	"lte":              "must be less than or equal to %s",
	"oneof":            "must be one of the following: %s",
	"eqfield":          "must match %s",
	"password":         "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"user_role":        "must be one of the following: student, counselor, admin",
	"questionnaire_id": "must be one of the following: phq-9, gad-7, ghq-12",
	"not_past_time":    "starts_at cannot be in the past",
}

var TagsWithParams = map[string]bool{
	"min":              true,
	"max":              true,
	"gte":              true,
	"lte":              true,
	"oneof":            true,
	"eqfield":          true,
	"required_without": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientAccountSuspended              = "your account has been suspended, please contact the counseling office"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientResourceNotFound              = "the requested data could not be found"
	ErrClientAppointmentSlotTaken          = "the counselor is not available at the selected time"
	ErrClientAppointmentNotCancellable     = "this appointment can no longer be cancelled"
	ErrClientAppointmentStudentRequired    = "please choose the student for this appointment"
	ErrClientChatUnavailable               = "the chat companion is not configured"
	ErrClientInvalidQuestionnaireID        = "the selected questionnaire does not exist"
	ErrClientIncompleteResponses           = "please answer every question before submitting"
	ErrClientResponseOutOfRange            = "every answer must be between 0 and 3"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevFailedToHashPassword   = "failed to hash password"
	ErrDevInvalidCredentials     = "invalid credentials"
	ErrDevEmailAlreadyExists     = "email already exists"
	ErrDevUsernameAlreadyExists  = "username already exists"
	ErrDevUserNotExists          = "user not exists"
	ErrDevUserSuspended          = "user is suspended"
	ErrDevRoleTypeDoesntMatch    = "role type does not match"
	ErrDevURLParamValidation     = "url param %s is not valid"
	ErrDevMissingRequestID       = "request id missing from context"
	ErrDevMissingSessionData     = "session data missing from context"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerProcess          = "server failed to process the request"
	ErrDevRequestLimitExceeded   = "request limit exceeded"
	ErrDevDocumentNotFound       = "document not found"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSessionNotFound       = "session not found in redis"
	ErrDevInvalidAPIKey             = "invalid api key"

	// Assessment messages
	ErrDevInvalidQuestionnaireID = "questionnaire id is not recognised"
	ErrDevIncompleteResponses    = "response vector is incomplete"
	ErrDevResponseOutOfRange     = "response value is out of range"
	ErrDevAssessmentScoring      = "failed to score assessment"
	ErrDevRenderReport           = "failed to render assessment report"

	// Appointment messages
	ErrDevAppointmentSlotTaken      = "counselor already booked at the requested time"
	ErrDevAppointmentNotCancellable = "appointment is not in booked state"
	ErrDevCounselorNotFound         = "counselor not found or user is not a counselor"
	ErrDevAppointmentStudentMissing = "student_id is required when booking on behalf of a student"

	// Chat messages
	ErrDevChatAPIKeyMissing = "missing GEMINI_API_KEY"
	ErrDevChatProvider      = "chat provider request failed"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToCountDocuments   = "failed to count documents on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBFailedToAggregate        = "failed to run aggregation on database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisGetNoData      = "no data found on redis with key: %s"
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data into redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisIncrementValue = "failed to increment value on redis"
	ErrDevRedisUnlock         = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"
	ErrDevRabbitMQConsumeMessage = "failed to consume message from queue %s"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object on bucket %s"
	ErrDevMinioFailedToPresignURL   = "failed to create presigned url on bucket %s"
)
