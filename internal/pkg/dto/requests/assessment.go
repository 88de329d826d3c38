package requests

// ScoreAssessment carries one questionnaire submission. A null entry in
// Responses marks an unanswered item.
type ScoreAssessment struct {
	QuestionnaireID string `json:"questionnaire_id" validate:"required,questionnaire_id"`
	Responses       []*int `json:"responses" validate:"required"`
}

type QueryAssessments struct {
	StudentID       string
	QuestionnaireID string `json:"questionnaire_id" validate:"omitempty,questionnaire_id"`
	Pagination
}
