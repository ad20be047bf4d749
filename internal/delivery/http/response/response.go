// Package response defines the JSON envelope every endpoint returns.
package response

import (
	"net/http"

	deliverycontext "museum/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Meta carries request-scoped metadata alongside every payload.
type Meta struct {
	RequestID string `json:"request_id,omitempty"`
}

// ErrorInfo describes a failed request.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Envelope is the single response shape: data on success, error on failure.
type Envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorInfo `json:"error,omitempty"`
	Meta  Meta       `json:"meta"`
}

func meta(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes a successful envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Data: data,
		Meta: meta(c),
	})
}

// Error writes a failure envelope.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Envelope{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BindingError reports a request body that could not be decoded.
func BindingError(c echo.Context, details string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body", details)
}
