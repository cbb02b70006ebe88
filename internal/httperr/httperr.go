// Package httperr carries domain failures from handlers to a single echo
// error handler that renders them as {"status":"error","message":...}.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ad-board/internal/api"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Error is a domain failure with an HTTP status. Message is either a plain
// string or a list of FieldError descriptors.
type Error struct {
	Status  int
	Message any
}

func (e *Error) Error() string {
	return fmt.Sprintf("http %d: %v", e.Status, e.Message)
}

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// Validation converts a validator error into a 400 carrying one descriptor
// per failed field. Non-validator errors fall back to a plain message.
func Validation(err error) *Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return BadRequest(err.Error())
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
		})
	}
	return &Error{Status: http.StatusBadRequest, Message: fields}
}

// Handler is installed as echo's HTTPErrorHandler. Every non-2xx response in
// the service goes through here, so the error body shape is defined once.
func Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var message any = "internal server error"

	var domainErr *Error
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &domainErr):
		status = domainErr.Status
		message = domainErr.Message
	case errors.As(err, &echoErr):
		status = echoErr.Code
		message = echoErr.Message
	default:
		c.Logger().Error(err)
	}

	if writeErr := c.JSON(status, api.ErrorResponse{Status: "error", Message: message}); writeErr != nil {
		c.Logger().Error(writeErr)
	}
}
