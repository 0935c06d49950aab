package response

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}
