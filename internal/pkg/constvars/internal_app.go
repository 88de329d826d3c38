package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
	CONTEXT_USER_ID_KEY              ContextKey = "user_id"
	CONTEXT_USER_ROLE_KEY            ContextKey = "user_role"
)

const (
	REQUEST_ID_PREFIX = "MNDFL_SVC_"
)

const (
	RoleStudent   = "student"
	RoleCounselor = "counselor"
	RoleAdmin     = "admin"
)

const (
	AppointmentStatusBooked    = "booked"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

const (
	AppResourcePathFormat  = "/%s/%s/%s"
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	DefaultPage            = 1
	DefaultPageSize        = 10
	MaxPageSize            = 100
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

const (
	ResourceUsers       = "users"
	ResourceAssessments = "assessments"
	ResourceFeedback    = "feedback"
)

const (
	ReportObjectFolder = "reports"
	ReportFileExt      = ".pdf"
)

const (
	AnalyticsOverviewKey     = "overview"
	AnalyticsAssessmentsKey  = "assessments"
	AnalyticsAppointmentsKey = "appointments"
	AnalyticsDayLayout       = "2006-01-02"
)

const (
	DefaultStudentName      = "Student"
	DefaultFeedbackCategory = "general"
)

const (
	CrisisResourcesMessage = "Your safety matters most. Please contact one of these helplines or a campus counselor right away. You are not alone."
)
