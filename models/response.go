package models

import "time"

// Response is the uniform JSON envelope returned by every endpoint.
//
// Successful responses set Success=true and populate Message, Data or Time as
// appropriate; failures set Success=false and carry a human-readable Error.
// Internal details (stack traces, SQL state, secrets) never appear here; they
// are logged server-side only.
type Response struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Error   string     `json:"error,omitempty"`
	Data    any        `json:"data,omitempty"`
	Time    *time.Time `json:"time,omitempty"`
}

// OK returns a success envelope with an informational message.
func OK(message string) Response {
	return Response{Success: true, Message: message}
}

// OKData returns a success envelope carrying a payload.
func OKData(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail returns a failure envelope with a human-readable message.
func Fail(message string) Response {
	return Response{Success: false, Error: message}
}
