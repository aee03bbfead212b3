// Package payload defines the JSON wire structures of the HTTP surface and
// the request validation helper.
package payload

// Response is the envelope shared by most endpoints.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail wraps a message in a failed envelope.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// HealthResponse is the body of the liveness endpoint.
type HealthResponse struct {
	OK bool `json:"ok"`
}
