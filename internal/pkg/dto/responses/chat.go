package responses

type ChatReply struct {
	Reply    string `json:"reply"`
	Degraded bool   `json:"degraded,omitempty"`
}
