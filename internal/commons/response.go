package commons

// MessageResponse is the body shape of every failed request:
// {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

func Message(text string) MessageResponse {
	return MessageResponse{Message: text}
}
