package errors

import "net/http"

// AppError carries the HTTP status a response should use. Handlers and
// workflow code attach one with c.Error; the error middleware writes the
// last attached AppError as the JSON response.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Forbidden signals a failed role or ownership check.
func Forbidden(msg string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: msg}
}
