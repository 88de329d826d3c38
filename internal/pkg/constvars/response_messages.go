package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Auth messages
	RegisterSuccessMessage = "user registered successfully"
	LoginSuccessMessage    = "successfully login"
	LogoutSuccessMessage   = "successfully logout"

	// User messages
	GetProfileSuccessMessage    = "get profile successfully"
	GetUsersSuccessMessage      = "get users successfully"
	SuspendUserSuccessMessage   = "user suspended successfully"
	UnsuspendUserSuccessMessage = "user unsuspended successfully"

	// Assessment messages
	GetQuestionnairesSuccessMessage  = "get questionnaires successfully"
	GetQuestionnaireSuccessMessage   = "get questionnaire successfully"
	ScoreAssessmentSuccessMessage    = "assessment scored successfully"
	SubmitAssessmentSuccessMessage   = "assessment submitted successfully"
	GetAssessmentsSuccessMessage     = "get assessments successfully"
	GetAssessmentSuccessMessage      = "get assessment successfully"
	CreateReportSuccessMessage       = "assessment report created successfully"
	GetCrisisResourcesSuccessMessage = "get crisis resources successfully"

	// Appointment messages
	BookAppointmentSuccessMessage   = "appointment booked successfully"
	GetAppointmentsSuccessMessage   = "get appointments successfully"
	CancelAppointmentSuccessMessage = "appointment cancelled successfully"

	// Student messages
	GetDashboardSummarySuccessMessage = "get dashboard summary successfully"

	// Chat messages
	ChatReplySuccessMessage = "chat reply generated"

	// Feedback messages
	SubmitFeedbackSuccessMessage = "feedback submitted successfully"
	GetFeedbackSuccessMessage    = "get feedback successfully"

	// Analytics messages
	GetAnalyticsSuccessMessage = "get analytics successfully"
)
