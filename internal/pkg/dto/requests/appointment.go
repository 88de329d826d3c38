package requests

import "time"

type BookAppointment struct {
	CounselorID string    `json:"counselor_id" validate:"required"`
	StudentID   string    `json:"student_id"`
	StartsAt    time.Time `json:"starts_at" validate:"required,not_past_time"`
	Notes       string    `json:"notes" validate:"max=500"`
}
