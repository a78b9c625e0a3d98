package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user record is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrMissingCredentials is returned when email or password is absent.
	ErrMissingCredentials = errors.New("email and password required")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Unknown email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrModelNotLoaded is returned when prediction artifacts failed to load at startup.
	ErrModelNotLoaded = errors.New("model not loaded")
	// ErrDatabaseUnavailable is returned when the database cannot be reached.
	ErrDatabaseUnavailable = errors.New("database not connected")
)

// MissingFeatureError reports the first required feature absent from a
// prediction request.
type MissingFeatureError struct {
	Feature string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("missing feature: %s", e.Feature)
}

// InvalidFeatureError reports a feature whose value could not be read as a
// number.
type InvalidFeatureError struct {
	Feature string
}

func (e *InvalidFeatureError) Error() string {
	return fmt.Sprintf("invalid value for feature: %s", e.Feature)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var missing *MissingFeatureError
	if errors.As(err, &missing) {
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FEATURE")
	}
	var invalid *InvalidFeatureError
	if errors.As(err, &invalid) {
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_FEATURE")
	}

	switch {
	case errors.Is(err, ErrMissingCredentials):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_CREDENTIALS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrModelNotLoaded):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "MODEL_NOT_LOADED")
	case errors.Is(err, ErrDatabaseUnavailable):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "DATABASE_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
