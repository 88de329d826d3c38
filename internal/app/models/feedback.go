package models

type Feedback struct {
	ID        string `bson:"_id,omitempty"`
	UserID    string `bson:"userId,omitempty"`
	Rating    int    `bson:"rating"`
	Message   string `bson:"message"`
	Category  string `bson:"category"`
	TimeModel `bson:",inline"`
}
