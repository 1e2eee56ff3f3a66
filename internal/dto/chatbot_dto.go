package dto

type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"sessionId,omitempty" validate:"max=128"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type HealthResponse struct {
	Ok       bool   `json:"ok"`
	Products int    `json:"products"`
	Faq      bool   `json:"faq"`
	Time     string `json:"time"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
