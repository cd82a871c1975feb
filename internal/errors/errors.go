package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthorized is returned when the caller lacks a session or the
	// required role for an action.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is returned on any authentication failure.
	// Inactive accounts and wrong passwords are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailInUse is returned when an email is already registered.
	ErrEmailInUse = errors.New("email already in use")
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateName is returned when a unique-name constraint would be violated.
	ErrDuplicateName = errors.New("a record with this name already exists")
	// ErrDefaultRecord is returned when deleting a seeded default catalog entry.
	ErrDefaultRecord = errors.New("cannot delete a default record")
	// ErrRecordInUse is returned when deleting a record other records reference.
	ErrRecordInUse = errors.New("record is referenced and cannot be deleted")
	// ErrLeadFinalized is returned when converting or discarding a lead
	// already in a terminal state.
	ErrLeadFinalized = errors.New("lead has already been converted or lost")
	// ErrAlreadyCheckedIn is returned on a second check-in the same day.
	ErrAlreadyCheckedIn = errors.New("already checked in today")
	// ErrPlanHasMemberships is returned when deleting a plan with active memberships.
	ErrPlanHasMemberships = errors.New("plan has active memberships; deactivate it instead")
	// ErrMemberInactive is returned on quick check-in for a non-active member.
	ErrMemberInactive = errors.New("member is not active")
)

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

// MapErrorToHTTP maps domain errors to HTTP errors. Unexpected errors are
// collapsed into a generic 500 so storage detail never reaches the caller.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrEmailInUse):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_IN_USE")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrDuplicateName):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_NAME")
	case errors.Is(err, ErrDefaultRecord):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DEFAULT_RECORD")
	case errors.Is(err, ErrRecordInUse):
		return NewHTTPError(http.StatusConflict, err.Error(), "RECORD_IN_USE")
	case errors.Is(err, ErrLeadFinalized):
		return NewHTTPError(http.StatusConflict, err.Error(), "LEAD_FINALIZED")
	case errors.Is(err, ErrAlreadyCheckedIn):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_CHECKED_IN")
	case errors.Is(err, ErrPlanHasMemberships):
		return NewHTTPError(http.StatusConflict, err.Error(), "PLAN_HAS_MEMBERSHIPS")
	case errors.Is(err, ErrMemberInactive):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MEMBER_INACTIVE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
