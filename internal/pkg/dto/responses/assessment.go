package responses

import (
	"mindfulness-service/internal/pkg/assessment"
	"time"
)

type Questionnaire struct {
	ID            string                    `json:"id"`
	Title         string                    `json:"title"`
	Description   string                    `json:"description"`
	Questions     []string                  `json:"questions"`
	AnswerOptions []assessment.AnswerOption `json:"answer_options"`
	SeverityBands []assessment.SeverityBand `json:"severity_bands"`
	MaxScore      int                       `json:"max_score"`
}

type AssessmentResult struct {
	QuestionnaireID string                `json:"questionnaire_id"`
	TotalScore      int                   `json:"total_score"`
	MaxScore        int                   `json:"max_score"`
	Severity        string                `json:"severity"`
	Interpretation  string                `json:"interpretation"`
	WellnessScore   int                   `json:"wellness_score"`
	Crisis          bool                  `json:"crisis"`
	CrisisResources []assessment.Helpline `json:"crisis_resources,omitempty"`
}

type Assessment struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	Responses   []int     `json:"responses"`
	CompletedAt time.Time `json:"completed_at"`
	AssessmentResult
}

type AssessmentReport struct {
	AssessmentID string    `json:"assessment_id"`
	ObjectName   string    `json:"object_name"`
	URL          string    `json:"url"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type CrisisResources struct {
	Message   string                `json:"message"`
	Helplines []assessment.Helpline `json:"helplines"`
}
