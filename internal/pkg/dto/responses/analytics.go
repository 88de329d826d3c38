package responses

type AnalyticsOverview struct {
	TotalUsers        int64   `json:"total_users"`
	ActiveUsers       int64   `json:"active_users"`
	TotalAssessments  int64   `json:"total_assessments"`
	TotalAppointments int64   `json:"total_appointments"`
	TotalChatMessages int64   `json:"total_chat_messages"`
	AverageRating     float64 `json:"average_rating"`
}

type QuestionnaireAnalytics struct {
	QuestionnaireID string           `json:"questionnaire_id"`
	Count           int64            `json:"count"`
	AverageScore    float64          `json:"average_score"`
	SeverityCounts  map[string]int64 `json:"severity_counts"`
}

type AssessmentAnalytics struct {
	Questionnaires []QuestionnaireAnalytics `json:"questionnaires"`
}

type AppointmentAnalytics struct {
	Total     int64 `json:"total"`
	Booked    int64 `json:"booked"`
	Cancelled int64 `json:"cancelled"`
	Completed int64 `json:"completed"`
}
