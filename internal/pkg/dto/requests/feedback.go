package requests

type SubmitFeedback struct {
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Message  string `json:"message" validate:"max=2000"`
	Category string `json:"category" validate:"omitempty,oneof=general assessment appointment chat bug"`
	UserID   string `json:"-"`
}
