package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"privatemsg/pkg/logger"
)

type ErrorCode string

const (
	ErrNotFound             ErrorCode = "NOT_FOUND"
	ErrForbidden            ErrorCode = "FORBIDDEN"
	ErrValidation           ErrorCode = "VALIDATION"
	ErrResourceRegistration ErrorCode = "RESOURCE_REGISTRATION"
)

var log = logger.Named("errors")

type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

type ErrorResponse struct {
	Error string    `json:"error"`
	Code  ErrorCode `json:"code"`
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	switch e.Code {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrForbidden:
		return http.StatusForbidden
	case ErrValidation:
		return http.StatusBadRequest
	case ErrResourceRegistration:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ResourceRegistrationError reports that a stylesheet could not be handed to
// the asset registry. Rendering is not affected by it.
type ResourceRegistrationError struct {
	Path string
	Err  error
}

func (e *ResourceRegistrationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("register resource %q: registry unavailable", e.Path)
	}
	return fmt.Sprintf("register resource %q: %v", e.Path, e.Err)
}

func (e *ResourceRegistrationError) Unwrap() error {
	return e.Err
}

// IsResourceRegistration reports whether err carries a ResourceRegistrationError.
func IsResourceRegistration(err error) bool {
	var regErr *ResourceRegistrationError
	return errors.As(err, &regErr)
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func HandleError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		WriteJSON(w, appErr.StatusCode(), ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		})
		return
	}

	log.Errorf("Internal error: %v", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
