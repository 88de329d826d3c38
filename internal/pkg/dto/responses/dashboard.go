package responses

type DashboardSummary struct {
	StudentName     string       `json:"student_name"`
	LastAssessment  *Assessment  `json:"last_assessment"`
	NextAppointment *Appointment `json:"next_appointment"`
}
