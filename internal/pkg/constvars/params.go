package constvars

const (
	URLParamUserID          = "user_id"
	URLParamCounselorID     = "counselor_id"
	URLParamAssessmentID    = "assessment_id"
	URLParamAppointmentID   = "appointment_id"
	URLParamQuestionnaireID = "questionnaire_id"
)

const (
	URLQueryParamSearch          = "search"
	URLQueryParamRole            = "role"
	URLQueryParamPage            = "page"
	URLQueryParamPageSize        = "page_size"
	URLQueryParamQuestionnaireID = "questionnaire_id"
)
