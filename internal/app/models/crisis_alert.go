package models

import "time"

// CrisisAlert is the queue payload published when a submitted assessment
// lands in the most severe band of its questionnaire.
type CrisisAlert struct {
	ID              string    `json:"id"`
	AssessmentID    string    `json:"assessment_id"`
	StudentID       string    `json:"student_id"`
	StudentName     string    `json:"student_name"`
	StudentEmail    string    `json:"student_email"`
	QuestionnaireID string    `json:"questionnaire_id"`
	TotalScore      int       `json:"total_score"`
	Severity        string    `json:"severity"`
	FailedCount     int       `json:"failed_count"`
	CreatedAt       time.Time `json:"created_at"`
}
