package dto

// StatusResponse is the envelope every endpoint returns.
type StatusResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is rendered by the error middleware.
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message"`
}

// DataResponse wraps list and object payloads.
type DataResponse[T any] struct {
	Status string `json:"status" example:"success"`
	Data   T      `json:"data"`
}

// Success builds a success envelope.
func Success(message string) StatusResponse {
	return StatusResponse{Status: "success", Message: message}
}

// WithData builds a success envelope around data.
func WithData[T any](data T) DataResponse[T] {
	return DataResponse[T]{Status: "success", Data: data}
}
