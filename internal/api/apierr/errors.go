package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/services/generator"
	"github.com/Rishivarshney100/kuchbhi/internal/services/hanoi"
	"github.com/Rishivarshney100/kuchbhi/internal/services/player"
	"github.com/Rishivarshney100/kuchbhi/internal/services/quiz"
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

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodePlayerNotFound       = "PLAYER_NOT_FOUND"
	CodeInvalidRegistration  = "INVALID_REGISTRATION"
	CodeUnknownGame          = "UNKNOWN_GAME"
	CodeSessionNotFound      = "SESSION_NOT_FOUND"
	CodeSessionComplete      = "SESSION_COMPLETE"
	CodeSessionNotInProgress = "SESSION_NOT_IN_PROGRESS"
	CodeMissingTopic         = "MISSING_TOPIC"
	CodeInvalidDifficulty    = "INVALID_DIFFICULTY"
	CodeInvalidOption        = "INVALID_OPTION"
	CodeInvalidMove          = "INVALID_MOVE"
	CodeInvalidRod           = "INVALID_ROD"
	CodeInvalidDiskCount     = "INVALID_DISK_COUNT"
	CodeInvalidPolicy        = "INVALID_POLICY"
	CodeEmptyGuess           = "EMPTY_GUESS"
	CodeInternalError        = "INTERNAL_ERROR"
)

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
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Model errors
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrUnknownGame):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownGame, "Unknown game"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrSessionComplete):
		return &httpError{http.StatusConflict, APIError{CodeSessionComplete, "Session is already complete"}}
	case errors.Is(err, model.ErrSessionNotInProgress):
		return &httpError{http.StatusConflict, APIError{CodeSessionNotInProgress, "Session is not in progress"}}
	case errors.Is(err, model.ErrInvalidOption):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidOption, "Answer option out of range"}}
	case errors.Is(err, model.ErrInvalidMove):
		return &httpError{http.StatusConflict, APIError{CodeInvalidMove, "Move is not legal"}}
	case errors.Is(err, model.ErrInvalidRod):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRod, "Rod index out of range"}}
	case errors.Is(err, model.ErrInvalidDiskCount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDiskCount, "Disk count out of range"}}
	case errors.Is(err, model.ErrEmptyGuess):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyGuess, "Guess must not be empty"}}

	// Registration errors
	case errors.Is(err, player.ErrInvalidName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRegistration, "Name must not be empty"}}
	case errors.Is(err, player.ErrInvalidEmail):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRegistration, "Email address is not valid"}}
	case errors.Is(err, player.ErrInvalidMobile):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRegistration, "Mobile number must be 10 digits"}}
	case errors.Is(err, player.ErrInvalidAge):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRegistration, "Age is not plausible"}}

	// Session configuration errors
	case errors.Is(err, quiz.ErrMissingTopic):
		return &httpError{http.StatusBadRequest, APIError{CodeMissingTopic, "A quiz topic is required"}}
	case errors.Is(err, generator.ErrInvalidDifficulty):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDifficulty, "Difficulty must be easy, medium or hard"}}
	case errors.Is(err, hanoi.ErrPolicyRequiresThreeDisks):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPolicy, "Penalty scoring only applies to the three-disk puzzle"}}

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
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "A registered player identity is required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
