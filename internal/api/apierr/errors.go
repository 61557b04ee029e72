package apierr

import (
	"errors"
	"net/http"

	"github.com/mcoot/wordcoach/internal/api/response"
	"github.com/mcoot/wordcoach/internal/model"
	"github.com/mcoot/wordcoach/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Error codes
const (
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeInvalidInput          = "INVALID_INPUT"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodePlayerNotFound        = "PLAYER_NOT_FOUND"
	CodeSessionNotFound       = "SESSION_NOT_FOUND"
	CodeNotSessionOwner       = "NOT_SESSION_OWNER"
	CodeValidationInFlight    = "VALIDATION_IN_FLIGHT"
	CodeValidationUnavailable = "VALIDATION_UNAVAILABLE"
	CodeStaleResult           = "STALE_RESULT"
	CodeGenerationUnavailable = "GENERATION_UNAVAILABLE"
	CodeCoachUnavailable      = "COACH_UNAVAILABLE"
	CodeUsernameExists        = "USERNAME_EXISTS"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeInternalError         = "INTERNAL_ERROR"
)

// MessageValidationUnavailable is shown to the player whenever the judge fails
const MessageValidationUnavailable = "Could not validate your word. Please try again."

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	response.JSON(w, he.status, ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status WriteError would use for err
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Session errors
	case errors.Is(err, model.ErrInvalidRequest):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Please provide both a word and a sentence."}}
	case errors.Is(err, model.ErrValidationUnavailable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeValidationUnavailable, MessageValidationUnavailable}}
	case errors.Is(err, model.ErrValidationInFlight):
		return &httpError{http.StatusConflict, APIError{CodeValidationInFlight, "A validation is already in progress"}}
	case errors.Is(err, model.ErrStaleResult):
		return &httpError{http.StatusConflict, APIError{CodeStaleResult, "The game was reset before the result arrived"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrNotSessionOwner):
		return &httpError{http.StatusForbidden, APIError{CodeNotSessionOwner, "Session belongs to another player"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}

	// Coaching errors carry a useful message of their own
	case errors.Is(err, model.ErrInvalidInput):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidInput, err.Error()}}
	case errors.Is(err, model.ErrGenerationUnavailable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeGenerationUnavailable, "Could not generate content. Please try again."}}

	// Auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired login"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}
	case errors.Is(err, auth.ErrMissingFields):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, err.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewCoachUnavailableError is returned when no language model is configured
func NewCoachUnavailableError() error {
	return &httpError{http.StatusServiceUnavailable, APIError{CodeCoachUnavailable, "Coaching games need a language model; none is configured"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
