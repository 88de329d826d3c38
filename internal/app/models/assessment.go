package models

import "time"

type Assessment struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	StudentID       string    `json:"student_id" bson:"studentId"`
	QuestionnaireID string    `json:"questionnaire_id" bson:"questionnaireId"`
	Responses       []int     `json:"responses" bson:"responses"`
	TotalScore      int       `json:"total_score" bson:"totalScore"`
	MaxScore        int       `json:"max_score" bson:"maxScore"`
	Severity        string    `json:"severity" bson:"severity"`
	Interpretation  string    `json:"interpretation" bson:"interpretation"`
	WellnessScore   int       `json:"wellness_score" bson:"wellnessScore"`
	Crisis          bool      `json:"crisis" bson:"crisis"`
	ReportObject    string    `json:"report_object,omitempty" bson:"reportObject,omitempty"`
	CompletedAt     time.Time `json:"completed_at" bson:"completedAt"`
}

type AssessmentStatKey struct {
	QuestionnaireID string `bson:"questionnaireId"`
	Severity        string `bson:"severity"`
}

// AssessmentSeverityStat is one row of the per questionnaire and severity
// aggregation used by analytics.
type AssessmentSeverityStat struct {
	Key      AssessmentStatKey `bson:"_id"`
	Count    int64             `bson:"count"`
	ScoreSum int64             `bson:"scoreSum"`
}
