package dto

// MessageResponse is the standard body for plain success and error
// responses: a JSON object with a single message field.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse creates a message response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
