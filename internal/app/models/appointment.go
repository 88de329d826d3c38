package models

import "time"

type Appointment struct {
	ID          string    `bson:"_id,omitempty"`
	StudentID   string    `bson:"studentId"`
	CounselorID string    `bson:"counselorId"`
	StartsAt    time.Time `bson:"startsAt"`
	Status      string    `bson:"status"`
	Notes       string    `bson:"notes,omitempty"`
	TimeModel   `bson:",inline"`
}
