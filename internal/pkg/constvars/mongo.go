package constvars

const (
	MongoCollectionUsers        = "users"
	MongoCollectionAssessments  = "assessments"
	MongoCollectionAppointments = "appointments"
	MongoCollectionFeedback     = "feedback"
)
