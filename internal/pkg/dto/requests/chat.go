package requests

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant model"`
	Content string `json:"content" validate:"required,max=4000"`
}

type Chat struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,max=50,dive"`
	Lang     string        `json:"lang" validate:"omitempty,oneof=en hi"`

	// Resolved from the session or the client IP, used to throttle the caller.
	ClientKey string `json:"-"`
}
