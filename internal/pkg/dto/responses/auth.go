package responses

type RegisterUser struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type LoginUser struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

type UserSummary struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
