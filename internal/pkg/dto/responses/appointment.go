package responses

import "time"

type Appointment struct {
	ID          string         `json:"id"`
	StudentID   string         `json:"student_id"`
	CounselorID string         `json:"counselor_id"`
	StartsAt    time.Time      `json:"starts_at"`
	Status      string         `json:"status"`
	Notes       string         `json:"notes,omitempty"`
	Student     *PersonSummary `json:"student,omitempty"`
	Counselor   *PersonSummary `json:"counselor,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

type PersonSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
